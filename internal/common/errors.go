// Package common defines shared sentinel errors used across the sync engine.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Orchestrator-level errors.
	ErrUnsupportedFlow = errors.New("unsupported sync flow")
	ErrNoCourses       = errors.New("no courses supplied for resource sync")

	// Fetch-level errors.
	ErrNoTerms   = errors.New("term list is empty")
	ErrBadStatus = errors.New("unexpected response status")

	// Credential-level errors.
	ErrNotSignedIn = errors.New("no stored credentials")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
