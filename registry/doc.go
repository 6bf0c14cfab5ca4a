/*
Package registry associates Go entity types with their MongoDB index
definitions.

Index definitions registered here are the source of the uniqueness
constraints that the repository create paths translate into conflict
errors:

	registry.RegisterIndexes[User]([]registry.IndexSpec{
	    {
	        Name:   "email_unique",
	        Unique: true,
	        Keys:   []registry.IndexKey{{Field: "email", Order: 1}},
	    },
	})

	repo := mongodb.New[User](coll, "User")
	if err := repo.EnsureIndexes(ctx); err != nil { ... }

The same specs can be declared in a YAML file and applied with the
ensureindexes CLI; LoadIndexConfig parses and validates that file.
*/
package registry
