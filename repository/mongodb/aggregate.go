/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Aggregate executes a caller-supplied pipeline verbatim and returns the
// raw result documents. Use AggregateAs to decode into a typed shape.
func (r *Repository[T]) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) ([]bson.M, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", r.entityName, err)
	}

	results := []bson.M{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %s aggregation: %w", r.entityName, err)
	}
	return results, nil
}

// AggregateAs executes a caller-supplied pipeline verbatim, decoding the
// results into R. The result shape is caller-asserted, not validated.
func AggregateAs[T any, R any](ctx context.Context, r *Repository[T], pipeline interface{}, opts ...*options.AggregateOptions) ([]R, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", r.entityName, err)
	}

	results := []R{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %s aggregation: %w", r.entityName, err)
	}
	return results, nil
}

// Count returns the exact number of documents matching the filter. A nil
// filter counts the whole collection.
func (r *Repository[T]) Count(ctx context.Context, filter storagemodels.Filter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filterOrEmpty(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.entityName, err)
	}
	return n, nil
}

// EstimatedCount returns the approximate collection size from collection
// metadata. It takes no filter and trades accuracy for speed; use Count
// when pagination correctness matters.
func (r *Repository[T]) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate %s count: %w", r.entityName, err)
	}
	return n, nil
}

// Exists reports whether at least one document matches the filter. It is
// an existence probe projecting only the identity, not a count.
func (r *Repository[T]) Exists(ctx context.Context, filter storagemodels.Filter) (bool, error) {
	res := r.coll.FindOne(ctx, filterOrEmpty(filter), options.FindOne().SetProjection(bson.M{"_id": 1}))
	err := res.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to probe %s: %w", r.entityName, err)
	}
	return true, nil
}

// Distinct returns the unique values of field across documents matching
// the filter. Use DistinctAs for a typed result.
func (r *Repository[T]) Distinct(ctx context.Context, field string, filter storagemodels.Filter) ([]interface{}, error) {
	values, err := r.coll.Distinct(ctx, field, filterOrEmpty(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to read distinct %s.%s: %w", r.entityName, field, err)
	}
	return values, nil
}

// DistinctAs returns the unique values of field as R. Values of another
// type produce an error rather than being silently dropped.
func DistinctAs[T any, R any](ctx context.Context, r *Repository[T], field string, filter storagemodels.Filter) ([]R, error) {
	values, err := r.Distinct(ctx, field, filter)
	if err != nil {
		return nil, err
	}

	out := make([]R, 0, len(values))
	for _, v := range values {
		rv, ok := v.(R)
		if !ok {
			return nil, fmt.Errorf("distinct %s.%s: unexpected value type %T", r.entityName, field, v)
		}
		out = append(out, rv)
	}
	return out, nil
}

// BulkWrite executes heterogeneous write operations as one driver-level
// batch. Errors, including partial failures, surface raw from the driver;
// the conflict translation of the create paths does not apply here.
func (r *Repository[T]) BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*storagemodels.BulkWriteResult, error) {
	res, err := r.coll.BulkWrite(ctx, models, opts...)
	if err != nil {
		return nil, err
	}
	return &storagemodels.BulkWriteResult{
		InsertedCount: res.InsertedCount,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		DeletedCount:  res.DeletedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}
