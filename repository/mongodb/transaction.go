/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WithTransaction opens a session on the repository's client and runs fn
// inside a transaction. The callback must thread its session context into
// every repository call that should join the transaction. Commit on normal
// return, abort on error, and retry of transient transaction errors are
// all handled by the driver's transaction primitive; no retry logic is
// added here. The session is ended unconditionally, whether the
// transaction committed, aborted, or fn panicked, and fn's result is
// returned only after the session is released.
func (r *Repository[T]) WithTransaction(ctx context.Context, fn func(sessCtx mongo.SessionContext) (interface{}, error), opts ...*options.TransactionOptions) (interface{}, error) {
	session, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn, opts...)
}

// WithTransactionResult is WithTransaction with a typed callback result.
func WithTransactionResult[T any, R any](ctx context.Context, r *Repository[T], fn func(sessCtx mongo.SessionContext) (R, error), opts ...*options.TransactionOptions) (R, error) {
	out, err := r.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return fn(sessCtx)
	}, opts...)
	if err != nil {
		var zero R
		return zero, err
	}
	res, _ := out.(R)
	return res, nil
}
