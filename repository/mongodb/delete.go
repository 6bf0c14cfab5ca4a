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
)

// FindByIDAndDelete atomically removes the document matched by identity
// and returns its last state as a rich record, or (nil, nil) when nothing
// matches.
func (r *Repository[T]) FindByIDAndDelete(ctx context.Context, id interface{}) (*Record[T], error) {
	return r.findOneAndDelete(ctx, storagemodels.Filter{"_id": id})
}

// FindOneAndDelete atomically removes the first document matching the
// filter and returns its last state, or (nil, nil) when nothing matches.
func (r *Repository[T]) FindOneAndDelete(ctx context.Context, filter storagemodels.Filter) (*Record[T], error) {
	return r.findOneAndDelete(ctx, filter)
}

func (r *Repository[T]) findOneAndDelete(ctx context.Context, filter storagemodels.Filter) (*Record[T], error) {
	out := new(T)
	err := r.coll.FindOneAndDelete(ctx, filterOrEmpty(filter)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", r.entityName, err)
	}
	return newRecord(out, r), nil
}

// DeleteMany removes every document matching the filter.
func (r *Repository[T]) DeleteMany(ctx context.Context, filter storagemodels.Filter) (*storagemodels.DeleteResult, error) {
	res, err := r.coll.DeleteMany(ctx, filterOrEmpty(filter))
	if err != nil {
		return nil, err
	}
	return &storagemodels.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}
