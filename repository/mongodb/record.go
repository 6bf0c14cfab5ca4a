/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"errors"
	"fmt"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Record is the rich form of a persisted entity: the decoded document plus
// persistence behaviors bound to the repository it came from. The caller
// owns the record after it is returned; the repository retains no
// reference to it.
type Record[T any] struct {
	doc  *T
	repo *Repository[T]
}

func newRecord[T any](doc *T, repo *Repository[T]) *Record[T] {
	return &Record[T]{doc: doc, repo: repo}
}

// Doc returns the underlying entity. Mutations are visible to a subsequent
// Save.
func (r *Record[T]) Doc() *T {
	return r.doc
}

// ID returns the entity's identity value, or nil when the entity carries
// none.
func (r *Record[T]) ID() interface{} {
	id, ok := repository.IDOf(r.doc)
	if !ok {
		return nil
	}
	return id
}

// ToPlain strips the record down to a plain entity value, detached from
// any persistence behavior.
func (r *Record[T]) ToPlain() *T {
	c := *r.doc
	return &c
}

// Save writes the record's current state back to the collection, replacing
// the stored document.
func (r *Record[T]) Save(ctx context.Context) error {
	id, ok := repository.IDOf(r.doc)
	if !ok {
		return dserrors.NewValidationError("_id", "record has no identity value")
	}
	_, err := r.repo.coll.ReplaceOne(ctx, bson.M{"_id": id}, r.doc)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", r.repo.entityName, err)
	}
	return nil
}

// Refresh reloads the record's state from the collection.
func (r *Record[T]) Refresh(ctx context.Context) error {
	id, ok := repository.IDOf(r.doc)
	if !ok {
		return dserrors.NewValidationError("_id", "record has no identity value")
	}
	err := r.repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(r.doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return dserrors.NewNotFoundError(r.repo.entityName, formatID(id))
	}
	return err
}

// Delete removes the record's document from the collection.
func (r *Record[T]) Delete(ctx context.Context) error {
	id, ok := repository.IDOf(r.doc)
	if !ok {
		return dserrors.NewValidationError("_id", "record has no identity value")
	}
	_, err := r.repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.repo.entityName, err)
	}
	return nil
}
