/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"errors"
	"testing"

	dserrors "github.com/suparena/docstore/errors"
	"github.com/suparena/docstore/repository/testmodels"
	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedPlayers(t *testing.T, m *Repository[testmodels.Player]) []testmodels.Player {
	t.Helper()
	players := []testmodels.Player{
		{ID: primitive.NewObjectID(), Email: "a@x.com", Name: "Anna", Rating: 1900, IsActive: true},
		{ID: primitive.NewObjectID(), Email: "b@x.com", Name: "Ben", Rating: 1500, IsActive: false},
		{ID: primitive.NewObjectID(), Email: "c@x.com", Name: "Cam", Rating: 1700, IsActive: true},
	}
	m.SetData(players)
	return players
}

func TestCreatePlain(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")

	stored, err := m.CreatePlain(ctx, &testmodels.Player{Email: "a@x.com", Name: "Anna"})
	if err != nil {
		t.Fatalf("CreatePlain failed: %v", err)
	}
	if stored.ID.IsZero() {
		t.Error("expected a generated identity")
	}

	t.Run("duplicate identity conflicts", func(t *testing.T) {
		_, err := m.CreatePlain(ctx, &testmodels.Player{ID: stored.ID, Email: "b@x.com"})
		if !dserrors.IsConflict(err) {
			t.Errorf("expected a conflict error, got %v", err)
		}
	})

	t.Run("injected error", func(t *testing.T) {
		boom := errors.New("boom")
		failing := New[testmodels.Player]("Player").WithCreateError(boom)
		if _, err := failing.CreatePlain(ctx, &testmodels.Player{Email: "x@x.com"}); !errors.Is(err, boom) {
			t.Errorf("expected injected error, got %v", err)
		}
	})
}

func TestFindByIDLean(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	players := seedPlayers(t, m)

	got, err := m.FindByIDLean(ctx, players[1].ID)
	if err != nil {
		t.Fatalf("FindByIDLean failed: %v", err)
	}
	if got == nil || got.Email != "b@x.com" {
		t.Errorf("unexpected result: %+v", got)
	}

	t.Run("absent is nil nil", func(t *testing.T) {
		got, err := m.FindByIDLean(ctx, primitive.NewObjectID())
		if err != nil || got != nil {
			t.Errorf("expected (nil, nil), got (%v, %v)", got, err)
		}
	})

	t.Run("or fail", func(t *testing.T) {
		_, err := m.FindByIDLeanOrFail(ctx, primitive.NewObjectID())
		if !dserrors.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})
}

func TestFindLean(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	seedPlayers(t, m)

	t.Run("equality filter", func(t *testing.T) {
		got, err := m.FindLean(ctx, storagemodels.WithFilter(storagemodels.Filter{"isActive": true}))
		if err != nil {
			t.Fatalf("FindLean failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 active players, got %d", len(got))
		}
	})

	t.Run("sort skip limit", func(t *testing.T) {
		got, err := m.FindLean(ctx,
			storagemodels.WithSort("rating", storagemodels.SortDesc),
			storagemodels.WithSkip(1),
			storagemodels.WithLimit(1),
		)
		if err != nil {
			t.Fatalf("FindLean failed: %v", err)
		}
		if len(got) != 1 || got[0].Rating != 1700 {
			t.Errorf("expected the middle rating, got %+v", got)
		}
	})

	t.Run("no match is empty slice", func(t *testing.T) {
		got, err := m.FindLean(ctx, storagemodels.WithFilter(storagemodels.Filter{"email": "missing@x.com"}))
		if err != nil {
			t.Fatalf("FindLean failed: %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected an empty slice, got %v", got)
		}
	})
}

func TestFindOneLean(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	seedPlayers(t, m)

	got, err := m.FindOneLean(ctx,
		storagemodels.WithFilter(storagemodels.Filter{"isActive": true}),
		storagemodels.WithSort("rating", storagemodels.SortAsc),
	)
	if err != nil {
		t.Fatalf("FindOneLean failed: %v", err)
	}
	if got == nil || got.Name != "Cam" {
		t.Errorf("expected the lowest-rated active player, got %+v", got)
	}

	t.Run("or fail", func(t *testing.T) {
		_, err := m.FindOneLeanOrFail(ctx, storagemodels.WithFilter(storagemodels.Filter{"email": "missing@x.com"}))
		if !dserrors.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	seedPlayers(t, m)

	page, err := m.Paginate(ctx, storagemodels.PageRequest{Page: 2, Limit: 2},
		storagemodels.WithSort("name", storagemodels.SortAsc))
	if err != nil {
		t.Fatalf("Paginate failed: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 {
		t.Errorf("unexpected envelope: %+v", page)
	}
	if len(page.Data) != 1 || page.Data[0].Name != "Cam" {
		t.Errorf("unexpected page data: %+v", page.Data)
	}
	if page.HasNextPage || !page.HasPrevPage {
		t.Errorf("unexpected page flags: %+v", page)
	}

	t.Run("invalid page", func(t *testing.T) {
		if _, err := m.Paginate(ctx, storagemodels.PageRequest{Page: 0, Limit: 10}); !dserrors.IsValidationError(err) {
			t.Errorf("expected a validation error, got %v", err)
		}
	})
}

func TestUpdateMany(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	seedPlayers(t, m)

	res, err := m.UpdateMany(ctx,
		storagemodels.Filter{"isActive": true},
		map[string]interface{}{"$set": map[string]interface{}{"rating": 2000}},
	)
	if err != nil {
		t.Fatalf("UpdateMany failed: %v", err)
	}
	if res.MatchedCount != 2 || res.ModifiedCount != 2 {
		t.Errorf("unexpected result: %+v", res)
	}

	n, err := m.Count(ctx, storagemodels.Filter{"rating": 2000})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 updated players, got %d", n)
	}

	t.Run("non-set update rejected", func(t *testing.T) {
		if _, err := m.UpdateMany(ctx, nil, map[string]interface{}{"$inc": map[string]interface{}{"rating": 1}}); !dserrors.IsValidationError(err) {
			t.Errorf("expected a validation error, got %v", err)
		}
	})
}

func TestDeleteMany(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	seedPlayers(t, m)

	res, err := m.DeleteMany(ctx, storagemodels.Filter{"isActive": false})
	if err != nil {
		t.Fatalf("DeleteMany failed: %v", err)
	}
	if res.DeletedCount != 1 {
		t.Errorf("expected 1 deleted, got %d", res.DeletedCount)
	}
	if got := m.GetData(); len(got) != 2 {
		t.Errorf("expected 2 remaining, got %d", len(got))
	}
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	m := New[testmodels.Player]("Player")
	seedPlayers(t, m)

	ok, err := m.Exists(ctx, storagemodels.Filter{"email": "a@x.com"})
	if err != nil || !ok {
		t.Errorf("expected a@x.com to exist, got (%v, %v)", ok, err)
	}
	ok, err = m.Exists(ctx, storagemodels.Filter{"email": "missing@x.com"})
	if err != nil || ok {
		t.Errorf("expected missing@x.com to be absent, got (%v, %v)", ok, err)
	}
}
