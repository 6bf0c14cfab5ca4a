/*
Package mongodb is the MongoDB backend of the typed repository facade.

A Repository[T] binds one Go type to one collection handle and exposes
the full operation surface: creates with duplicate-key translation,
rich and lean reads with OrFail variants, find-and-modify updates,
upserts, deletes, pagination, aggregation, counting, distinct values,
bulk writes, a transaction helper, and index management.

Typical usage:

	client, _ := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	coll := client.Database("app").Collection("players")
	players := mongodb.New[Player](coll, "Player")

	rec, err := players.Create(ctx, &Player{Email: "a@x.com"})
	if err != nil { ... }
	rec.Doc().Rating = 1800
	_ = rec.Save(ctx)

Reads come in two forms. Rich reads return *Record[T] values carrying
Save, Refresh, and Delete behaviors; lean reads return plain *T values
with no persistence attached. Both report absence as (nil, nil); the
OrFail variants turn absence into a typed not-found error instead.

Operations the facade does not cover are reachable through
Collection(), which returns the underlying driver handle unmodified.
*/
package mongodb
