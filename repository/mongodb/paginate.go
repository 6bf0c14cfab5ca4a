/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"context"
	"sync"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/storagemodels"
)

// Paginate returns one 1-based page of lean results plus the derived page
// arithmetic. The page query and the total count run concurrently: the
// page query applies the caller's filter, sort, and projection with
// skip/limit computed from req; the count sees only the filter. Requests
// with page or limit below 1 are rejected with a validation error. A page
// beyond the end yields empty data with a correct total.
func (r *Repository[T]) Paginate(ctx context.Context, req storagemodels.PageRequest, opts ...storagemodels.QueryOption) (*storagemodels.Page[T], error) {
	if req.Page < 1 {
		return nil, dserrors.NewValidationError("page", "must be at least 1")
	}
	if req.Limit < 1 {
		return nil, dserrors.NewValidationError("limit", "must be at least 1")
	}

	q := storagemodels.BuildQueryOptions(opts...)
	skip := (req.Page - 1) * req.Limit
	limit := req.Limit
	q.Skip = &skip
	q.Limit = &limit

	var (
		wg    sync.WaitGroup
		data  []T
		total int64
		dErr  error
		tErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data, dErr = r.findLean(ctx, q)
	}()
	go func() {
		defer wg.Done()
		total, tErr = r.Count(ctx, q.Filter)
	}()
	wg.Wait()

	if dErr != nil {
		return nil, dErr
	}
	if tErr != nil {
		return nil, tErr
	}

	return storagemodels.NewPage(data, total, req.Page, req.Limit), nil
}
