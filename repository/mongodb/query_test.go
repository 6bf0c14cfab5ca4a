/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"reflect"
	"testing"

	"github.com/suparena/docstore/storagemodels"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFindPipeline(t *testing.T) {
	skip := int64(10)
	limit := int64(5)
	q := storagemodels.BuildQueryOptions(
		storagemodels.WithFilter(storagemodels.Filter{"isActive": true}),
		storagemodels.WithSort("rating", storagemodels.SortDesc),
		storagemodels.WithSkip(skip),
		storagemodels.WithLimit(limit),
		storagemodels.WithPopulate(storagemodels.Populate{Path: "teamId", From: "teams"}),
		storagemodels.WithProjection(storagemodels.Projection{"email": 1}),
	)

	pipeline := buildFindPipeline(q)
	if len(pipeline) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(pipeline))
	}

	stages := make([]string, len(pipeline))
	for i, s := range pipeline {
		stages[i] = s[0].Key
	}
	want := []string{"$match", "$sort", "$skip", "$limit", "$lookup", "$project"}
	if !reflect.DeepEqual(stages, want) {
		t.Errorf("stage order %v, want %v", stages, want)
	}

	lookup, ok := pipeline[4][0].Value.(bson.D)
	if !ok {
		t.Fatalf("lookup stage has unexpected value type %T", pipeline[4][0].Value)
	}
	got := map[string]interface{}{}
	for _, e := range lookup {
		got[e.Key] = e.Value
	}
	if got["from"] != "teams" || got["localField"] != "teamId" {
		t.Errorf("unexpected lookup: %v", got)
	}
	// ForeignField and As default to _id and the local path.
	if got["foreignField"] != "_id" || got["as"] != "teamId" {
		t.Errorf("lookup defaults not applied: %v", got)
	}
}

func TestBuildFindPipelineEmpty(t *testing.T) {
	pipeline := buildFindPipeline(storagemodels.QueryOptions{})
	if len(pipeline) != 0 {
		t.Errorf("expected no stages, got %d", len(pipeline))
	}
}

func TestSortDoc(t *testing.T) {
	doc := sortDoc([]storagemodels.Sort{
		{Field: "rating", Order: storagemodels.SortDesc},
		{Field: "name", Order: storagemodels.SortAsc},
	})
	want := bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("sortDoc = %v, want %v", doc, want)
	}
}

func TestProjectionDoc(t *testing.T) {
	doc := projectionDoc(storagemodels.Projection{"email": 1, "secret": 0})
	if doc["email"] != 1 || doc["secret"] != 0 {
		t.Errorf("unexpected projection doc: %v", doc)
	}
}
