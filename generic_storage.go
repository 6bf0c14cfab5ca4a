/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/docstore/repository"
)

// TypedStorage provides type-safe repository management for a specific type T
type TypedStorage[T any] struct {
	mu    sync.RWMutex
	repos map[string]repository.Repository[T]
}

// NewTypedStorage creates a new TypedStorage for type T
func NewTypedStorage[T any]() *TypedStorage[T] {
	return &TypedStorage[T]{
		repos: make(map[string]repository.Repository[T]),
	}
}

// Register adds a repository with the given key
func (ts *TypedStorage[T]) Register(key string, repo repository.Repository[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.repos[key]; exists {
		return fmt.Errorf("repository with key %q already registered", key)
	}

	ts.repos[key] = repo
	return nil
}

// Get retrieves a repository by key
func (ts *TypedStorage[T]) Get(key string) (repository.Repository[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	repo, exists := ts.repos[key]
	if !exists {
		return nil, fmt.Errorf("repository with key %q not found", key)
	}

	return repo, nil
}

// Remove deletes a repository by key
func (ts *TypedStorage[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.repos[key]; !exists {
		return fmt.Errorf("repository with key %q not found", key)
	}

	delete(ts.repos, key)
	return nil
}

// List returns all registered repository keys
func (ts *TypedStorage[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.repos))
	for k := range ts.repos {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeStorage manages TypedStorage instances for different types
type MultiTypeStorage struct {
	mu       sync.RWMutex
	storages map[reflect.Type]interface{}
}

// NewMultiTypeStorage creates a new MultiTypeStorage
func NewMultiTypeStorage() *MultiTypeStorage {
	return &MultiTypeStorage{
		storages: make(map[reflect.Type]interface{}),
	}
}

// GetTypedStorage returns a TypedStorage for the specified type, creating it if necessary
func GetTypedStorage[T any](mts *MultiTypeStorage) *TypedStorage[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if storage, exists := mts.storages[typ]; exists {
		return storage.(*TypedStorage[T])
	}

	newStorage := NewTypedStorage[T]()
	mts.storages[typ] = newStorage
	return newStorage
}

// RegisterRepository is a convenience function to register a repository for type T
func RegisterRepository[T any](mts *MultiTypeStorage, key string, repo repository.Repository[T]) error {
	storage := GetTypedStorage[T](mts)
	return storage.Register(key, repo)
}

// GetRepository is a convenience function to get a repository for type T
func GetRepository[T any](mts *MultiTypeStorage, key string) (repository.Repository[T], error) {
	storage := GetTypedStorage[T](mts)
	return storage.Get(key)
}

// RemoveRepository is a convenience function to remove a repository for type T
func RemoveRepository[T any](mts *MultiTypeStorage, key string) error {
	storage := GetTypedStorage[T](mts)
	return storage.Remove(key)
}

// ListRepositories is a convenience function to list all repositories for type T
func ListRepositories[T any](mts *MultiTypeStorage) []string {
	storage := GetTypedStorage[T](mts)
	return storage.List()
}
