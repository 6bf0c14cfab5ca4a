/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IndexConfig is the YAML shape consumed by the ensureindexes CLI:
//
//	entities:
//	  - name: Player
//	    collection: players
//	    indexes:
//	      - name: email_unique
//	        unique: true
//	        keys:
//	          - field: email
//	            order: 1
type IndexConfig struct {
	Entities []EntityIndexes `yaml:"entities"`
}

// EntityIndexes binds one entity's collection name to its index
// definitions.
type EntityIndexes struct {
	Name       string      `yaml:"name"`
	Collection string      `yaml:"collection"`
	Indexes    []IndexSpec `yaml:"indexes"`
}

// LoadIndexConfig reads and validates an index configuration file.
func LoadIndexConfig(path string) (*IndexConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index config: %w", err)
	}

	var cfg IndexConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse index config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the structural requirements of the configuration.
func (c *IndexConfig) Validate() error {
	if len(c.Entities) == 0 {
		return fmt.Errorf("index config declares no entities")
	}
	for _, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity with empty name in index config")
		}
		if e.Collection == "" {
			return fmt.Errorf("entity %q has no collection", e.Name)
		}
		for _, idx := range e.Indexes {
			if len(idx.Keys) == 0 {
				return fmt.Errorf("entity %q has an index with no keys", e.Name)
			}
			for _, k := range idx.Keys {
				if k.Field == "" {
					return fmt.Errorf("entity %q has an index key with no field", e.Name)
				}
				if k.Order != 0 && k.Order != 1 && k.Order != -1 {
					return fmt.Errorf("entity %q index key %q has invalid order %d", e.Name, k.Field, k.Order)
				}
			}
		}
	}
	return nil
}
