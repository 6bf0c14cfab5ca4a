/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"errors"
	"regexp"

	dserrors "github.com/suparena/docstore/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyTranslator turns a duplicate-key driver error into the error
// surfaced to the caller. entityName is the repository's entity name and
// field the violating field extracted from the driver error ("unknown"
// when unavailable).
type DuplicateKeyTranslator func(entityName, field string, err error) error

// DefaultDuplicateKeyTranslator is the built-in translation: a typed
// conflict error naming the entity and the violating field.
func DefaultDuplicateKeyTranslator(entityName, field string, _ error) error {
	return dserrors.NewConflictError(entityName, field)
}

// "index: email_1 dup key" or "index: users.$email_1 dup key"
var indexNamePattern = regexp.MustCompile(`index: (?:[^\s]+\$)?([^\s]+?)_(?:-?1|text|2d|2dsphere|hashed)\b`)

// "dup key: { email: \"a@x.com\" }"
var dupKeyPattern = regexp.MustCompile(`dup key: \{ ([^:{}]+):`)

// duplicateKeyField extracts the violating field from a duplicate-key
// error. It prefers the keyPattern metadata the server attaches to the
// write error and falls back to parsing the error message; when neither is
// available it reports "unknown".
func duplicateKeyField(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if f := fieldFromWriteError(e); f != "" {
				return f
			}
		}
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			if f := fieldFromWriteError(e.WriteError); f != "" {
				return f
			}
		}
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		if f := fieldFromMessage(ce.Message); f != "" {
			return f
		}
	}

	return "unknown"
}

func fieldFromWriteError(e mongo.WriteError) string {
	if f := fieldFromKeyPattern(e.Details); f != "" {
		return f
	}
	return fieldFromMessage(e.Message)
}

// fieldFromKeyPattern reads the first key of the keyPattern document the
// server reports alongside duplicate-key write errors.
func fieldFromKeyPattern(details bson.Raw) string {
	if len(details) == 0 {
		return ""
	}
	pattern, err := details.LookupErr("keyPattern")
	if err != nil {
		return ""
	}
	doc, ok := pattern.DocumentOK()
	if !ok {
		return ""
	}
	elems, err := doc.Elements()
	if err != nil || len(elems) == 0 {
		return ""
	}
	return elems[0].Key()
}

func fieldFromMessage(msg string) string {
	if m := dupKeyPattern.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := indexNamePattern.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}
