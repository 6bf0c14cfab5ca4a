/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"context"

	"github.com/suparena/docstore/storagemodels"
)

// Repository is the backend-neutral contract for typed document access.
// It covers the plain-record (lean) operation surface, which every backend
// (including the in-memory mock) can honor. Backend packages expose richer
// operations on their concrete types.
//
// Read operations that can miss return (nil, nil) on no match; the OrFail
// variants perform the identical lookup and turn absence into a typed
// not-found error.
type Repository[T any] interface {
	// CreatePlain persists a new entity and returns its stored plain form.
	CreatePlain(ctx context.Context, data *T) (*T, error)

	FindByIDLean(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error)
	FindByIDLeanOrFail(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error)

	FindOneLean(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error)
	FindOneLeanOrFail(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error)

	FindLean(ctx context.Context, opts ...storagemodels.QueryOption) ([]T, error)

	// Paginate returns one 1-based page of lean results together with the
	// total match count and derived page arithmetic.
	Paginate(ctx context.Context, req storagemodels.PageRequest, opts ...storagemodels.QueryOption) (*storagemodels.Page[T], error)

	UpdateMany(ctx context.Context, filter storagemodels.Filter, update interface{}) (*storagemodels.UpdateResult, error)
	DeleteMany(ctx context.Context, filter storagemodels.Filter) (*storagemodels.DeleteResult, error)

	Count(ctx context.Context, filter storagemodels.Filter) (int64, error)
	Exists(ctx context.Context, filter storagemodels.Filter) (bool, error)
}
