/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByIDAndUpdate applies update to the document matched by identity and
// returns the post-update rich record, or the pre-update state when the
// caller passes ReturnOriginal(). Returns (nil, nil) when nothing matches.
func (r *Repository[T]) FindByIDAndUpdate(ctx context.Context, id interface{}, update interface{}, opts ...storagemodels.UpdateOption) (*Record[T], error) {
	doc, err := r.FindByIDAndUpdateLean(ctx, id, update, opts...)
	return r.wrap(doc, err)
}

// FindByIDAndUpdateLean is the plain-entity form of FindByIDAndUpdate.
func (r *Repository[T]) FindByIDAndUpdateLean(ctx context.Context, id interface{}, update interface{}, opts ...storagemodels.UpdateOption) (*T, error) {
	u := storagemodels.BuildUpdateOpts(opts...)
	return r.findOneAndUpdateLean(ctx, storagemodels.Filter{"_id": id}, update, u, false)
}

// FindOneAndUpdate applies update to the first document matching the
// filter and returns the post-update rich record (pre-update with
// ReturnOriginal()). Returns (nil, nil) when nothing matches.
func (r *Repository[T]) FindOneAndUpdate(ctx context.Context, filter storagemodels.Filter, update interface{}, opts ...storagemodels.UpdateOption) (*Record[T], error) {
	doc, err := r.FindOneAndUpdateLean(ctx, filter, update, opts...)
	return r.wrap(doc, err)
}

// FindOneAndUpdateLean is the plain-entity form of FindOneAndUpdate.
func (r *Repository[T]) FindOneAndUpdateLean(ctx context.Context, filter storagemodels.Filter, update interface{}, opts ...storagemodels.UpdateOption) (*T, error) {
	u := storagemodels.BuildUpdateOpts(opts...)
	return r.findOneAndUpdateLean(ctx, filter, update, u, false)
}

// Upsert applies update to the first document matching the filter,
// inserting a new document when nothing matches. Insert-on-no-match and
// post-update return are forced over caller options, so the result is
// never absent.
func (r *Repository[T]) Upsert(ctx context.Context, filter storagemodels.Filter, update interface{}, opts ...storagemodels.UpdateOption) (*Record[T], error) {
	doc, err := r.UpsertLean(ctx, filter, update, opts...)
	return r.wrap(doc, err)
}

// UpsertLean is the plain-entity form of Upsert.
func (r *Repository[T]) UpsertLean(ctx context.Context, filter storagemodels.Filter, update interface{}, opts ...storagemodels.UpdateOption) (*T, error) {
	u := storagemodels.BuildUpdateOpts(opts...)
	u.ReturnOriginal = false
	return r.findOneAndUpdateLean(ctx, filter, update, u, true)
}

func (r *Repository[T]) findOneAndUpdateLean(ctx context.Context, filter storagemodels.Filter, update interface{}, u storagemodels.UpdateOpts, upsert bool) (*T, error) {
	fo := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if u.ReturnOriginal {
		fo.SetReturnDocument(options.Before)
	}
	if upsert {
		fo.SetUpsert(true)
	}
	if len(u.Sort) > 0 {
		fo.SetSort(sortDoc(u.Sort))
	}
	if len(u.Projection) > 0 {
		fo.SetProjection(projectionDoc(u.Projection))
	}

	out := new(T)
	err := r.coll.FindOneAndUpdate(ctx, filterOrEmpty(filter), update, fo).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", r.entityName, err)
	}
	return out, nil
}

// UpdateMany applies update to every document matching the filter. Unlike
// the create paths, duplicate-key errors are not translated here; the raw
// driver error is surfaced so callers keep its per-operation detail.
func (r *Repository[T]) UpdateMany(ctx context.Context, filter storagemodels.Filter, update interface{}) (*storagemodels.UpdateResult, error) {
	res, err := r.coll.UpdateMany(ctx, filterOrEmpty(filter), update)
	if err != nil {
		return nil, err
	}
	return &storagemodels.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}
