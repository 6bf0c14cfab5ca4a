/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"os"
	"path/filepath"
	"testing"
)

type registryUser struct {
	ID    string `bson:"_id"`
	Email string `bson:"email"`
}

type registryOrder struct {
	ID string `bson:"_id"`
}

func TestRegisterAndGetIndexes(t *testing.T) {
	specs := []IndexSpec{
		{
			Name:   "email_unique",
			Unique: true,
			Keys:   []IndexKey{{Field: "email", Order: 1}},
		},
	}
	RegisterIndexes[registryUser](specs)

	got, ok := GetIndexes[registryUser]()
	if !ok {
		t.Fatal("expected index specs for registryUser")
	}
	if len(got) != 1 || got[0].Name != "email_unique" || !got[0].Unique {
		t.Errorf("unexpected specs: %+v", got)
	}

	if _, ok := GetIndexes[registryOrder](); ok {
		t.Error("registryOrder should have no specs registered")
	}
}

func TestLoadIndexConfig(t *testing.T) {
	content := `
entities:
  - name: Player
    collection: players
    indexes:
      - name: email_unique
        unique: true
        keys:
          - field: email
            order: 1
      - name: team_rating
        keys:
          - field: teamId
            order: 1
          - field: rating
            order: -1
`
	path := filepath.Join(t.TempDir(), "indexes.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIndexConfig(path)
	if err != nil {
		t.Fatalf("LoadIndexConfig failed: %v", err)
	}

	if len(cfg.Entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(cfg.Entities))
	}
	e := cfg.Entities[0]
	if e.Name != "Player" || e.Collection != "players" {
		t.Errorf("unexpected entity: %+v", e)
	}
	if len(e.Indexes) != 2 {
		t.Fatalf("expected 2 indexes, got %d", len(e.Indexes))
	}
	if !e.Indexes[0].Unique || e.Indexes[0].Keys[0].Field != "email" {
		t.Errorf("unexpected unique index: %+v", e.Indexes[0])
	}
	if len(e.Indexes[1].Keys) != 2 || e.Indexes[1].Keys[1].Order != -1 {
		t.Errorf("unexpected compound index: %+v", e.Indexes[1])
	}
}

func TestLoadIndexConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no entities",
			content: "entities: []",
		},
		{
			name: "missing collection",
			content: `
entities:
  - name: Player
`,
		},
		{
			name: "index without keys",
			content: `
entities:
  - name: Player
    collection: players
    indexes:
      - name: broken
`,
		},
		{
			name: "invalid order",
			content: `
entities:
  - name: Player
    collection: players
    indexes:
      - keys:
          - field: email
            order: 2
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "indexes.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadIndexConfig(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
