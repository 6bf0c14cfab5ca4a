/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("User", "123")

	// Test error message
	expected := `User with id "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestNotFoundErrorForEntity(t *testing.T) {
	err := NewNotFoundErrorForEntity("User")

	expected := "User not found"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for filter-based NotFoundError")
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("User", "email")

	// Test error message
	expected := `User already exists: duplicate value for field "email"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrConflict) {
		t.Error("ConflictError should match ErrConflict")
	}

	// Test helper function
	if !IsConflict(err) {
		t.Error("IsConflict should return true for ConflictError")
	}
}

func TestConflictErrorUnknownField(t *testing.T) {
	err := NewConflictError("User", "")

	expected := `User already exists: duplicate value for field "unknown"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "limit",
			message:  "must be at least 1",
			expected: `validation failed for field "limit": must be at least 1`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	base := NewNotFoundError("Player", "p-1")
	wrapped := fmt.Errorf("loading profile: %w", base)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through wrapping")
	}

	var nf *NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("errors.As should recover the NotFoundError")
	}
	if nf.Entity != "Player" || nf.ID != "p-1" {
		t.Errorf("Unexpected fields: %+v", nf)
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if IsConflict(NewNotFoundError("User", "1")) {
		t.Error("NotFoundError must not match ErrConflict")
	}
	if IsNotFound(NewConflictError("User", "email")) {
		t.Error("ConflictError must not match ErrNotFound")
	}
}
