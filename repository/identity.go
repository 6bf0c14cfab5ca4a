/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"reflect"
	"strings"
)

// idFieldIndex locates the struct field carrying the document identity,
// i.e. the field whose bson tag names "_id". Returns false when the type
// has no such field.
func idFieldIndex(t reflect.Type) (int, bool) {
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("bson")
		if tag == "" {
			continue
		}
		name := tag
		if idx := strings.Index(tag, ","); idx >= 0 {
			name = tag[:idx]
		}
		if name == "_id" {
			return i, true
		}
	}
	return 0, false
}

// IDOf extracts the identity value from an entity (a struct or a pointer
// to one). The second return is false when the entity has no identity
// field or the field holds its zero value.
func IDOf(entity interface{}) (interface{}, bool) {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	i, ok := idFieldIndex(v.Type())
	if !ok {
		return nil, false
	}
	f := v.Field(i)
	if f.IsZero() {
		return nil, false
	}
	return f.Interface(), true
}

// SetID assigns a database-generated identity onto an entity pointer.
// The assignment is skipped (returning false) when the entity has no
// identity field, the field already holds a value, or the generated value
// is not assignable to the field's type.
func SetID(entity interface{}, id interface{}) bool {
	if id == nil {
		return false
	}
	v := reflect.ValueOf(entity)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return false
	}
	i, ok := idFieldIndex(v.Type())
	if !ok {
		return false
	}
	f := v.Field(i)
	if !f.CanSet() || !f.IsZero() {
		return false
	}
	idv := reflect.ValueOf(id)
	if !idv.Type().AssignableTo(f.Type()) {
		return false
	}
	f.Set(idv)
	return true
}
