/*
Package errors provides semantic error types for the docstore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("entity not found")
	    ErrConflict     = errors.New("entity conflict")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrNoIndexes    = errors.New("no index definitions registered for type")
	)

Usage:

	// Check error type
	user, err := repo.FindByIDOrFail(ctx, id)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("user %v does not exist", id)
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("User", "123")
	err := errors.NewConflictError("User", "email")
	err := errors.NewValidationError("limit", "must be at least 1")

ConflictError is raised only by create paths when the database reports a
duplicate-key violation; NotFoundError only by the OrFail read operations.
Every other driver error passes through to the caller unmodified.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
