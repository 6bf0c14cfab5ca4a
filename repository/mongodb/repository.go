/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"fmt"

	"github.com/suparena/docstore/repository"
	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository implements typed document access for one MongoDB collection.
// An instance binds to exactly one collection handle and one human-readable
// entity name at construction; both are immutable thereafter. The facade
// itself is stateless: every operation is an independent call against the
// database, and concurrent use is safe as long as callers do not share a
// session context across concurrently-running operations.
type Repository[T any] struct {
	coll       *mongo.Collection
	entityName string
	translate  DuplicateKeyTranslator
}

// Option configures a Repository at construction time.
type Option[T any] func(*Repository[T])

// WithDuplicateKeyTranslator replaces the built-in duplicate-key
// translation on the create paths. Custom translators typically delegate to
// DefaultDuplicateKeyTranslator and decorate its result.
func WithDuplicateKeyTranslator[T any](fn DuplicateKeyTranslator) Option[T] {
	return func(r *Repository[T]) {
		if fn != nil {
			r.translate = fn
		}
	}
}

// New constructs a Repository for type T bound to the given collection.
// entityName is used in diagnostics and error messages.
func New[T any](coll *mongo.Collection, entityName string, opts ...Option[T]) *Repository[T] {
	r := &Repository[T]{
		coll:       coll,
		entityName: entityName,
		translate:  DefaultDuplicateKeyTranslator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EntityName returns the human-readable entity name the repository was
// constructed with.
func (r *Repository[T]) EntityName() string {
	return r.entityName
}

// Collection returns the underlying driver collection handle unmodified,
// for operations the facade does not cover.
func (r *Repository[T]) Collection() *mongo.Collection {
	return r.coll
}

// Create persists a new entity and returns the stored rich record. A
// database-generated identity is assigned back onto data. Duplicate-key
// failures are translated into a conflict error; every other error passes
// through from the driver.
func (r *Repository[T]) Create(ctx context.Context, data *T, opts ...*options.InsertOneOptions) (*Record[T], error) {
	res, err := r.coll.InsertOne(ctx, data, opts...)
	if err != nil {
		return nil, r.translateCreateError(err)
	}
	repository.SetID(data, res.InsertedID)
	return newRecord(data, r), nil
}

// CreatePlain persists a new entity and returns its plain form.
func (r *Repository[T]) CreatePlain(ctx context.Context, data *T) (*T, error) {
	rec, err := r.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	return rec.ToPlain(), nil
}

// CreateMany performs a bulk insert and returns the stored rich records.
// Failures are routed through the same duplicate-key translation as Create.
func (r *Repository[T]) CreateMany(ctx context.Context, data []*T, opts ...*options.InsertManyOptions) ([]*Record[T], error) {
	if len(data) == 0 {
		return []*Record[T]{}, nil
	}
	docs := make([]interface{}, len(data))
	for i, d := range data {
		docs[i] = d
	}

	res, err := r.coll.InsertMany(ctx, docs, opts...)
	if err != nil {
		return nil, r.translateCreateError(err)
	}

	records := make([]*Record[T], len(data))
	for i, d := range data {
		if i < len(res.InsertedIDs) {
			repository.SetID(d, res.InsertedIDs[i])
		}
		records[i] = newRecord(d, r)
	}
	return records, nil
}

func (r *Repository[T]) translateCreateError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return r.translate(r.entityName, duplicateKeyField(err), err)
}

// Compile-time check that the MongoDB backend satisfies the shared
// repository contract.
var _ repository.Repository[struct{}] = (*Repository[struct{}])(nil)

// filterOrEmpty normalizes a nil filter into the match-all document the
// driver requires.
func filterOrEmpty(f storagemodels.Filter) interface{} {
	if f == nil {
		return bson.D{}
	}
	return f
}

// formatID renders an identity value for error messages.
func formatID(id interface{}) string {
	return fmt.Sprintf("%v", id)
}
