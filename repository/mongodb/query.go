/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"errors"
	"fmt"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindByID retrieves the rich record matched by identity, or (nil, nil)
// when no document matches.
func (r *Repository[T]) FindByID(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*Record[T], error) {
	doc, err := r.FindByIDLean(ctx, id, opts...)
	return r.wrap(doc, err)
}

// FindByIDLean retrieves the plain entity matched by identity, or
// (nil, nil) when no document matches.
func (r *Repository[T]) FindByIDLean(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error) {
	q := storagemodels.BuildQueryOptions(opts...)
	q.Filter = storagemodels.Filter{"_id": id}
	return r.findOneLean(ctx, q)
}

// FindByIDOrFail is FindByID with absence turned into a typed not-found
// error carrying the identity value.
func (r *Repository[T]) FindByIDOrFail(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*Record[T], error) {
	rec, err := r.FindByID(ctx, id, opts...)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, dserrors.NewNotFoundError(r.entityName, formatID(id))
	}
	return rec, nil
}

// FindByIDLeanOrFail is FindByIDLean with absence turned into a typed
// not-found error carrying the identity value.
func (r *Repository[T]) FindByIDLeanOrFail(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error) {
	doc, err := r.FindByIDLean(ctx, id, opts...)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, dserrors.NewNotFoundError(r.entityName, formatID(id))
	}
	return doc, nil
}

// FindOne retrieves the first rich record matching the filter, in
// database-native order unless a sort is given. Returns (nil, nil) when
// nothing matches.
func (r *Repository[T]) FindOne(ctx context.Context, opts ...storagemodels.QueryOption) (*Record[T], error) {
	doc, err := r.FindOneLean(ctx, opts...)
	return r.wrap(doc, err)
}

// FindOneLean is the plain-entity form of FindOne.
func (r *Repository[T]) FindOneLean(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error) {
	q := storagemodels.BuildQueryOptions(opts...)
	return r.findOneLean(ctx, q)
}

// FindOneOrFail is FindOne with absence turned into a typed not-found
// error.
func (r *Repository[T]) FindOneOrFail(ctx context.Context, opts ...storagemodels.QueryOption) (*Record[T], error) {
	rec, err := r.FindOne(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, dserrors.NewNotFoundErrorForEntity(r.entityName)
	}
	return rec, nil
}

// FindOneLeanOrFail is FindOneLean with absence turned into a typed
// not-found error.
func (r *Repository[T]) FindOneLeanOrFail(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error) {
	doc, err := r.FindOneLean(ctx, opts...)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, dserrors.NewNotFoundErrorForEntity(r.entityName)
	}
	return doc, nil
}

// Find retrieves every rich record matching the query options, applied in
// the order: filter, sort, skip, limit, projection/populate.
func (r *Repository[T]) Find(ctx context.Context, opts ...storagemodels.QueryOption) ([]*Record[T], error) {
	docs, err := r.FindLean(ctx, opts...)
	if err != nil {
		return nil, err
	}
	records := make([]*Record[T], len(docs))
	for i := range docs {
		records[i] = newRecord(&docs[i], r)
	}
	return records, nil
}

// FindLean retrieves every plain entity matching the query options.
func (r *Repository[T]) FindLean(ctx context.Context, opts ...storagemodels.QueryOption) ([]T, error) {
	q := storagemodels.BuildQueryOptions(opts...)
	return r.findLean(ctx, q)
}

func (r *Repository[T]) wrap(doc *T, err error) (*Record[T], error) {
	if err != nil || doc == nil {
		return nil, err
	}
	return newRecord(doc, r), nil
}

func (r *Repository[T]) findOneLean(ctx context.Context, q storagemodels.QueryOptions) (*T, error) {
	if len(q.Populate) > 0 {
		one := int64(1)
		q.Limit = &one
		docs, err := r.findViaPipeline(ctx, q)
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, nil
		}
		return &docs[0], nil
	}

	fo := options.FindOne()
	if len(q.Sort) > 0 {
		fo.SetSort(sortDoc(q.Sort))
	}
	if q.Skip != nil {
		fo.SetSkip(*q.Skip)
	}
	if len(q.Projection) > 0 {
		fo.SetProjection(projectionDoc(q.Projection))
	}

	out := new(T)
	err := r.coll.FindOne(ctx, filterOrEmpty(q.Filter), fo).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.entityName, err)
	}
	return out, nil
}

func (r *Repository[T]) findLean(ctx context.Context, q storagemodels.QueryOptions) ([]T, error) {
	if len(q.Populate) > 0 {
		return r.findViaPipeline(ctx, q)
	}

	fo := options.Find()
	if len(q.Sort) > 0 {
		fo.SetSort(sortDoc(q.Sort))
	}
	if q.Skip != nil {
		fo.SetSkip(*q.Skip)
	}
	if q.Limit != nil {
		fo.SetLimit(*q.Limit)
	}
	if len(q.Projection) > 0 {
		fo.SetProjection(projectionDoc(q.Projection))
	}

	cur, err := r.coll.Find(ctx, filterOrEmpty(q.Filter), fo)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.entityName, err)
	}

	results := []T{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %s results: %w", r.entityName, err)
	}
	return results, nil
}

// findViaPipeline runs the query as an aggregation so that relation
// expansions can be expressed as $lookup stages. Stage order matches the
// plain find path: match, sort, skip, limit, then lookups and projection.
func (r *Repository[T]) findViaPipeline(ctx context.Context, q storagemodels.QueryOptions) ([]T, error) {
	pipeline := buildFindPipeline(q)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.entityName, err)
	}

	results := []T{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode %s results: %w", r.entityName, err)
	}
	return results, nil
}

func buildFindPipeline(q storagemodels.QueryOptions) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if len(q.Filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: q.Filter}})
	}
	if len(q.Sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sortDoc(q.Sort)}})
	}
	if q.Skip != nil {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: *q.Skip}})
	}
	if q.Limit != nil {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: *q.Limit}})
	}
	for _, p := range q.Populate {
		foreignField := p.ForeignField
		if foreignField == "" {
			foreignField = "_id"
		}
		as := p.As
		if as == "" {
			as = p.Path
		}
		pipeline = append(pipeline, bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: p.From},
			{Key: "localField", Value: p.Path},
			{Key: "foreignField", Value: foreignField},
			{Key: "as", Value: as},
		}}})
	}
	if len(q.Projection) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: projectionDoc(q.Projection)}})
	}
	return pipeline
}

func sortDoc(sorts []storagemodels.Sort) bson.D {
	doc := make(bson.D, 0, len(sorts))
	for _, s := range sorts {
		order := 1
		if s.Order == storagemodels.SortDesc {
			order = -1
		}
		doc = append(doc, bson.E{Key: s.Field, Value: order})
	}
	return doc
}

func projectionDoc(p storagemodels.Projection) bson.M {
	doc := make(bson.M, len(p))
	for field, include := range p {
		doc[field] = include
	}
	return doc
}
