/*
Package docstore provides a typed repository facade over MongoDB for Go
applications, offering type-safe document access with rich and lean read
models, semantic errors, and thread-safe repository management.

Key Features:
  - Type-safe operations using Go generics
  - Rich records carrying Save/Refresh/Delete behaviors, and lean plain reads
  - OrFail read variants with typed not-found errors
  - Duplicate-key conflicts translated into semantic conflict errors
  - Pagination envelope with page arithmetic computed server-side
  - Aggregation, distinct, bulk write, and transaction helpers
  - Declarative index management with a YAML-driven CLI
  - In-memory mock implementation for testing

Basic Usage:

	// Create a storage manager
	mts := docstore.NewMultiTypeStorage()

	// Register a typed repository
	coll := client.Database("app").Collection("players")
	players := mongodb.New[Player](coll, "Player")
	docstore.RegisterRepository[Player](mts, "players", players)

	// Retrieve and use the repository
	repo, _ := docstore.GetRepository[Player](mts, "players")
	p, err := repo.FindByIDLeanOrFail(ctx, id)

For more information, see the documentation at https://github.com/suparena/docstore
*/
package docstore
