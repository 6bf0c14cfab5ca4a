/*
Package storagemodels defines the data structures shared across docstore.

Key Types:

QueryOptions:
Read-side options built with functional options:

	opts := []QueryOption{
	    WithFilter(Filter{"isActive": true}),
	    WithSort("createdAt", SortDesc),
	    WithSkip(20),
	    WithLimit(10),
	    WithProjection(Projection{"name": 1, "email": 1}),
	    WithPopulate(Populate{Path: "teamId", From: "teams"}),
	}

Multi-result reads apply them in the order: filter, sort, skip, limit,
projection/populate. Filters and projections pass through to the database
driver verbatim; no validation happens at this layer.

Page:
The pagination envelope produced by Paginate:

	type Page[T any] struct {
	    Data        []T
	    Total       int64
	    Page        int64
	    Limit       int64
	    TotalPages  int64
	    HasNextPage bool
	    HasPrevPage bool
	}

UpdateResult, DeleteResult, BulkWriteResult:
Driver-neutral result shapes for the multi-document write operations, so
consumers (and the in-memory mock) do not depend on driver types.

These types provide a consistent interface across repository implementations.
*/
package storagemodels
