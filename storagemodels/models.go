/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Filter represents field-based filtering criteria for document queries.
// It is passed through to the driver verbatim; any operator the database
// understands (e.g. {"age": {"$gt": 21}}) is legal.
type Filter map[string]interface{}

// Projection selects the fields returned by a read operation.
// A value of 1 includes the field, 0 excludes it.
type Projection map[string]int

// SortOrder defines the direction of sorting.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort specifies field and direction for sorting results.
type Sort struct {
	Field string
	Order SortOrder
}

// Populate describes a relation expansion: the referenced documents from
// another collection are joined into the result under As.
type Populate struct {
	// Path is the local field holding the reference value.
	Path string
	// From is the foreign collection name.
	From string
	// ForeignField is the referenced field in the foreign collection.
	// Defaults to "_id" when empty.
	ForeignField string
	// As is the output field for the joined documents. Defaults to Path.
	As string
}

// QueryOptions encapsulates filtering, projection, sorting, paging, and
// relation expansion for read operations. Multi-result reads apply them in
// the order: filter, sort, skip, limit, projection/populate.
type QueryOptions struct {
	Filter     Filter
	Projection Projection
	Sort       []Sort
	Skip       *int64
	Limit      *int64
	Populate   []Populate
}

// QueryOption is a functional option for configuring a read operation.
type QueryOption func(*QueryOptions)

// BuildQueryOptions folds a list of options into a QueryOptions value.
func BuildQueryOptions(opts ...QueryOption) QueryOptions {
	var q QueryOptions
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// WithFilter sets the query filter.
func WithFilter(f Filter) QueryOption {
	return func(q *QueryOptions) {
		q.Filter = f
	}
}

// WithProjection sets the field selection.
func WithProjection(p Projection) QueryOption {
	return func(q *QueryOptions) {
		q.Projection = p
	}
}

// WithSort appends a sort key. Multiple calls sort by each key in turn.
func WithSort(field string, order SortOrder) QueryOption {
	return func(q *QueryOptions) {
		q.Sort = append(q.Sort, Sort{Field: field, Order: order})
	}
}

// WithSkip sets the number of matching documents to skip.
func WithSkip(n int64) QueryOption {
	return func(q *QueryOptions) {
		q.Skip = &n
	}
}

// WithLimit caps the number of documents returned.
func WithLimit(n int64) QueryOption {
	return func(q *QueryOptions) {
		q.Limit = &n
	}
}

// WithPopulate appends relation expansions to the query.
func WithPopulate(p ...Populate) QueryOption {
	return func(q *QueryOptions) {
		q.Populate = append(q.Populate, p...)
	}
}

// UpdateOpts configures the single-document update operations.
type UpdateOpts struct {
	// ReturnOriginal returns the pre-update document instead of the
	// post-update state.
	ReturnOriginal bool
	Projection     Projection
	Sort           []Sort
}

// UpdateOption is a functional option for configuring an update operation.
type UpdateOption func(*UpdateOpts)

// BuildUpdateOpts folds a list of options into an UpdateOpts value.
func BuildUpdateOpts(opts ...UpdateOption) UpdateOpts {
	var u UpdateOpts
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// ReturnOriginal requests the pre-update document from an update operation.
func ReturnOriginal() UpdateOption {
	return func(u *UpdateOpts) {
		u.ReturnOriginal = true
	}
}

// WithUpdateProjection sets the field selection on the returned document.
func WithUpdateProjection(p Projection) UpdateOption {
	return func(u *UpdateOpts) {
		u.Projection = p
	}
}

// WithUpdateSort sets the selection order when the filter matches several
// documents; the first document in this order is updated.
func WithUpdateSort(field string, order SortOrder) UpdateOption {
	return func(u *UpdateOpts) {
		u.Sort = append(u.Sort, Sort{Field: field, Order: order})
	}
}

// PageRequest selects one page of a paginated query. Page is 1-based.
type PageRequest struct {
	Page  int64
	Limit int64
}

// Page is the pagination envelope returned by Paginate.
type Page[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	Page        int64 `json:"page"`
	Limit       int64 `json:"limit"`
	TotalPages  int64 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPage builds the pagination envelope from one page of data and the
// total match count. Callers must guarantee limit >= 1 and page >= 1.
func NewPage[T any](data []T, total, page, limit int64) *Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := (total + limit - 1) / limit
	return &Page[T]{
		Data:        data,
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// UpdateResult reports the outcome of a multi-document update.
type UpdateResult struct {
	Acknowledged  bool
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	UpsertedID    interface{}
}

// DeleteResult reports the outcome of a multi-document delete.
type DeleteResult struct {
	Acknowledged bool
	DeletedCount int64
}

// BulkWriteResult reports the outcome of a heterogeneous write batch.
type BulkWriteResult struct {
	InsertedCount int64
	MatchedCount  int64
	ModifiedCount int64
	DeletedCount  int64
	UpsertedCount int64
}
