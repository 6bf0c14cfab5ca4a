/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

type Team struct {

	// Unique identifier, assigned by the database on insert.
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Name of the team. Unique across teams.
	// Required: true
	Name string `json:"name" bson:"name"`

	// Home city of the team.
	City string `json:"city,omitempty" bson:"city,omitempty"`
}
