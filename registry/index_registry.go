/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// IndexRegistry is a registry for Go types and their MongoDB index
// definitions, including the uniqueness constraints a repository's create
// paths report conflicts against.

// IndexKey is one key of a compound index. Order is 1 for ascending, -1
// for descending; 0 defaults to ascending.
type IndexKey struct {
	Field string `yaml:"field"`
	Order int    `yaml:"order"`
}

// IndexSpec declares a single index on an entity's collection.
type IndexSpec struct {
	Name   string     `yaml:"name"`
	Keys   []IndexKey `yaml:"keys"`
	Unique bool       `yaml:"unique"`
	Sparse bool       `yaml:"sparse"`
}

var (
	indexRegistry = make(map[reflect.Type][]IndexSpec)
	mu            sync.RWMutex
)

// RegisterIndexes associates a Go type T with its index definitions.
func RegisterIndexes[T any](specs []IndexSpec) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	indexRegistry[t] = specs
}

// GetIndexes retrieves the index definitions for type T, if any.
func GetIndexes[T any]() ([]IndexSpec, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	specs, ok := indexRegistry[t]
	return specs, ok
}
