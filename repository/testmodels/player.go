/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds the entity types used by repository tests.
package testmodels

import (
	"github.com/go-openapi/strfmt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Player struct {

	// Unique identifier, assigned by the database on insert.
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Email address. Unique across players.
	// Required: true
	Email string `json:"email" bson:"email"`

	// Display name of the player.
	// Required: true
	Name string `json:"name" bson:"name"`

	// Current rating of the player.
	Rating int `json:"rating" bson:"rating"`

	// Whether the player is active.
	IsActive bool `json:"isActive" bson:"isActive"`

	// Reference to the player's team.
	TeamID primitive.ObjectID `json:"teamId,omitempty" bson:"teamId,omitempty"`

	// Timestamp when the player was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty" bson:"createdAt,omitempty"`

	// Timestamp when the player was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
