/*
Package repository defines the core contract for docstore's typed
document-access layer.

The main interface is Repository[T], the lean operation surface shared by
every backend:

	type Repository[T any] interface {
	    CreatePlain(ctx context.Context, data *T) (*T, error)
	    FindByIDLean(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error)
	    FindByIDLeanOrFail(ctx context.Context, id interface{}, opts ...storagemodels.QueryOption) (*T, error)
	    FindOneLean(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error)
	    FindOneLeanOrFail(ctx context.Context, opts ...storagemodels.QueryOption) (*T, error)
	    FindLean(ctx context.Context, opts ...storagemodels.QueryOption) ([]T, error)
	    Paginate(ctx context.Context, req storagemodels.PageRequest, opts ...storagemodels.QueryOption) (*storagemodels.Page[T], error)
	    UpdateMany(ctx context.Context, filter storagemodels.Filter, update interface{}) (*storagemodels.UpdateResult, error)
	    DeleteMany(ctx context.Context, filter storagemodels.Filter) (*storagemodels.DeleteResult, error)
	    Count(ctx context.Context, filter storagemodels.Filter) (int64, error)
	    Exists(ctx context.Context, filter storagemodels.Filter) (bool, error)
	}

Implementations:
  - mongodb: MongoDB implementation, which additionally exposes rich records,
    OrFail variants of every single-result read, atomic update/delete
    returns, upserts, aggregation, distinct, bulk writes, and a transaction
    helper
  - mock: in-memory implementation for testing consumers

The package also provides the reflection helpers IDOf and SetID, which
resolve the entity field tagged bson:"_id" so that backends share one
notion of document identity.
*/
package repository
