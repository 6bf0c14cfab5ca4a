/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the repository
// contract for testing.
package mock

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/repository"
	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is an in-memory implementation of repository.Repository[T]
// for testing. Filters match by field equality only; sorting supports
// string and numeric fields. Fields are addressed by their bson tag names,
// the same names a real backend would see.
type Repository[T any] struct {
	mu          sync.RWMutex
	entityName  string
	data        []T
	createError error
	queryError  error
	updateError error
	deleteError error
}

// New creates a new mock Repository.
func New[T any](entityName string) *Repository[T] {
	return &Repository[T]{entityName: entityName}
}

// WithCreateError makes CreatePlain return an error.
func (m *Repository[T]) WithCreateError(err error) *Repository[T] {
	m.createError = err
	return m
}

// WithQueryError makes read operations return an error.
func (m *Repository[T]) WithQueryError(err error) *Repository[T] {
	m.queryError = err
	return m
}

// WithUpdateError makes UpdateMany return an error.
func (m *Repository[T]) WithUpdateError(err error) *Repository[T] {
	m.updateError = err
	return m
}

// WithDeleteError makes DeleteMany return an error.
func (m *Repository[T]) WithDeleteError(err error) *Repository[T] {
	m.deleteError = err
	return m
}

// CreatePlain stores a copy of the entity. An absent identity field is
// assigned a fresh ObjectID when the field can hold one; a duplicate
// identity is reported as a conflict.
func (m *Repository[T]) CreatePlain(ctx context.Context, data *T) (*T, error) {
	if m.createError != nil {
		return nil, m.createError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := repository.IDOf(data); !ok {
		repository.SetID(data, primitive.NewObjectID())
	}
	if id, ok := repository.IDOf(data); ok {
		for i := range m.data {
			if existing, ok := repository.IDOf(&m.data[i]); ok && reflect.DeepEqual(existing, id) {
				return nil, dserrors.NewConflictError(m.entityName, "_id")
			}
		}
	}

	m.data = append(m.data, *data)
	stored := *data
	return &stored, nil
}

// FindByIDLean retrieves an entity by identity, or (nil, nil) when absent.
func (m *Repository[T]) FindByIDLean(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error) {
	q := storagemodels.BuildQueryOptions(opts...)
	q.Filter = storagemodels.Filter{"_id": id}
	return m.findOne(q)
}

// FindByIDLeanOrFail is FindByIDLean with absence turned into a typed
// not-found error.
func (m *Repository[T]) FindByIDLeanOrFail(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error) {
	doc, err := m.FindByIDLean(ctx, id, opts...)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, dserrors.NewNotFoundError(m.entityName, formatID(id))
	}
	return doc, nil
}

// FindOneLean retrieves the first matching entity, or (nil, nil).
func (m *Repository[T]) FindOneLean(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error) {
	return m.findOne(storagemodels.BuildQueryOptions(opts...))
}

// FindOneLeanOrFail is FindOneLean with absence turned into a typed
// not-found error.
func (m *Repository[T]) FindOneLeanOrFail(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error) {
	doc, err := m.FindOneLean(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, dserrors.NewNotFoundErrorForEntity(m.entityName)
	}
	return doc, nil
}

// FindLean retrieves every matching entity with sort, skip, and limit
// applied.
func (m *Repository[T]) FindLean(ctx context.Context, opts ...storagemodels.QueryOption) ([]T, error) {
	return m.find(storagemodels.BuildQueryOptions(opts...))
}

// Paginate returns one 1-based page of results with the envelope
// arithmetic a real backend would produce.
func (m *Repository[T]) Paginate(ctx context.Context, req storagemodels.PageRequest, opts ...storagemodels.QueryOption) (*storagemodels.Page[T], error) {
	if req.Page < 1 {
		return nil, dserrors.NewValidationError("page", "must be >= 1")
	}
	if req.Limit < 1 {
		return nil, dserrors.NewValidationError("limit", "must be >= 1")
	}

	q := storagemodels.BuildQueryOptions(opts...)
	total, err := m.Count(ctx, q.Filter)
	if err != nil {
		return nil, err
	}

	skip := (req.Page - 1) * req.Limit
	q.Skip = &skip
	q.Limit = &req.Limit
	data, err := m.find(q)
	if err != nil {
		return nil, err
	}
	return storagemodels.NewPage(data, total, req.Page, req.Limit), nil
}

// UpdateMany applies a {"$set": {...}} document to every matching entity.
func (m *Repository[T]) UpdateMany(ctx context.Context, filter storagemodels.Filter, update interface{}) (*storagemodels.UpdateResult, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}

	set, ok := setDocument(update)
	if !ok {
		return nil, dserrors.NewValidationError("update", "mock supports $set documents only")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	res := &storagemodels.UpdateResult{Acknowledged: true}
	for i := range m.data {
		if !matches(&m.data[i], filter) {
			continue
		}
		res.MatchedCount++
		if applySet(&m.data[i], set) {
			res.ModifiedCount++
		}
	}
	return res, nil
}

// DeleteMany removes every matching entity.
func (m *Repository[T]) DeleteMany(ctx context.Context, filter storagemodels.Filter) (*storagemodels.DeleteResult, error) {
	if m.deleteError != nil {
		return nil, m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.data[:0]
	var deleted int64
	for i := range m.data {
		if matches(&m.data[i], filter) {
			deleted++
			continue
		}
		kept = append(kept, m.data[i])
	}
	m.data = kept
	return &storagemodels.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// Count returns the number of matching entities.
func (m *Repository[T]) Count(ctx context.Context, filter storagemodels.Filter) (int64, error) {
	if m.queryError != nil {
		return 0, m.queryError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for i := range m.data {
		if matches(&m.data[i], filter) {
			n++
		}
	}
	return n, nil
}

// Exists reports whether any entity matches the filter.
func (m *Repository[T]) Exists(ctx context.Context, filter storagemodels.Filter) (bool, error) {
	n, err := m.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Helper methods for testing

// SetData replaces the stored entities.
func (m *Repository[T]) SetData(data []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]T(nil), data...)
}

// GetData returns a copy of the stored entities.
func (m *Repository[T]) GetData() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]T(nil), m.data...)
}

// Clear removes all stored entities.
func (m *Repository[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
}

func (m *Repository[T]) findOne(q storagemodels.QueryOptions) (*T, error) {
	one := int64(1)
	q.Limit = &one
	docs, err := m.find(q)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func (m *Repository[T]) find(q storagemodels.QueryOptions) ([]T, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}

	m.mu.RLock()
	results := []T{}
	for i := range m.data {
		if matches(&m.data[i], q.Filter) {
			results = append(results, m.data[i])
		}
	}
	m.mu.RUnlock()

	if len(q.Sort) > 0 {
		sortEntities(results, q.Sort)
	}
	if q.Skip != nil {
		if *q.Skip >= int64(len(results)) {
			results = []T{}
		} else {
			results = results[*q.Skip:]
		}
	}
	if q.Limit != nil && *q.Limit < int64(len(results)) {
		results = results[:*q.Limit]
	}
	return results, nil
}

var _ repository.Repository[struct{}] = (*Repository[struct{}])(nil)

// matches reports whether every filter entry equals the entity's field of
// the same bson name. A nil or empty filter matches everything.
func matches[T any](entity *T, filter storagemodels.Filter) bool {
	for name, want := range filter {
		got, ok := fieldByBSONName(reflect.ValueOf(entity).Elem(), name)
		if !ok {
			return false
		}
		if !looselyEqual(got.Interface(), want) {
			return false
		}
	}
	return true
}

func looselyEqual(a, b interface{}) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return false
	}
	if bv.Type().ConvertibleTo(av.Type()) {
		return reflect.DeepEqual(a, bv.Convert(av.Type()).Interface())
	}
	return false
}

func fieldByBSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("bson")
		if tag == "" {
			continue
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func sortEntities[T any](entities []T, sorts []storagemodels.Sort) {
	sort.SliceStable(entities, func(i, j int) bool {
		for _, s := range sorts {
			a, aok := fieldByBSONName(reflect.ValueOf(&entities[i]).Elem(), s.Field)
			b, bok := fieldByBSONName(reflect.ValueOf(&entities[j]).Elem(), s.Field)
			if !aok || !bok {
				continue
			}
			c := compareValues(a, b)
			if c == 0 {
				continue
			}
			if s.Order == storagemodels.SortDesc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareValues(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch {
		case a.Int() < b.Int():
			return -1
		case a.Int() > b.Int():
			return 1
		}
	case reflect.Float32, reflect.Float64:
		switch {
		case a.Float() < b.Float():
			return -1
		case a.Float() > b.Float():
			return 1
		}
	}
	return 0
}

func setDocument(update interface{}) (map[string]interface{}, bool) {
	doc, ok := update.(map[string]interface{})
	if !ok {
		if f, isFilter := update.(storagemodels.Filter); isFilter {
			doc = f
		} else {
			return nil, false
		}
	}
	set, ok := doc["$set"]
	if !ok {
		return nil, false
	}
	switch s := set.(type) {
	case map[string]interface{}:
		return s, true
	case storagemodels.Filter:
		return s, true
	default:
		return nil, false
	}
}

func applySet[T any](entity *T, set map[string]interface{}) bool {
	modified := false
	v := reflect.ValueOf(entity).Elem()
	for name, value := range set {
		f, ok := fieldByBSONName(v, name)
		if !ok || !f.CanSet() {
			continue
		}
		nv := reflect.ValueOf(value)
		if !nv.IsValid() || !nv.Type().ConvertibleTo(f.Type()) {
			continue
		}
		converted := nv.Convert(f.Type())
		if !reflect.DeepEqual(f.Interface(), converted.Interface()) {
			f.Set(converted)
			modified = true
		}
	}
	return modified
}

func formatID(id interface{}) string {
	return fmt.Sprintf("%v", id)
}
