/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"fmt"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/registry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the index definitions registered for T on the
// repository's collection. Uniqueness constraints enforced by those
// indexes are what the create paths translate into conflict errors.
// Returns ErrNoIndexes when nothing is registered for T.
func (r *Repository[T]) EnsureIndexes(ctx context.Context) error {
	specs, ok := registry.GetIndexes[T]()
	if !ok {
		return dserrors.ErrNoIndexes
	}

	models := IndexModels(specs)
	if len(models) == 0 {
		return nil
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to ensure %s indexes: %w", r.entityName, err)
	}
	return nil
}

// IndexModels converts declarative index specs into driver index models.
func IndexModels(specs []registry.IndexSpec) []mongo.IndexModel {
	models := make([]mongo.IndexModel, 0, len(specs))
	for _, spec := range specs {
		keys := make(bson.D, 0, len(spec.Keys))
		for _, k := range spec.Keys {
			order := k.Order
			if order == 0 {
				order = 1
			}
			keys = append(keys, bson.E{Key: k.Field, Value: order})
		}

		opts := options.Index()
		if spec.Name != "" {
			opts.SetName(spec.Name)
		}
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}

		models = append(models, mongo.IndexModel{Keys: keys, Options: opts})
	}
	return models
}
