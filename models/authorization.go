// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Intent is the kind of access a caller requests on a single note.
type Intent string

const (
	IntentRead   Intent = "access"
	IntentUpdate Intent = "update"
	IntentDelete Intent = "delete"
)

// AccessOutcome is the terminal result of an ownership check.
type AccessOutcome int

const (
	// AccessPermitted means the note exists and belongs to the caller.
	AccessPermitted AccessOutcome = iota + 1
	// AccessNotFound means no note has the requested id.
	AccessNotFound
	// AccessForbidden means the note exists and belongs to someone else.
	AccessForbidden
)

// String returns the lower-case name of the outcome.
func (o AccessOutcome) String() string {
	switch o {
	case AccessPermitted:
		return "permitted"
	case AccessNotFound:
		return "not_found"
	case AccessForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Decision is what the ownership authorizer concluded for one request.
//
// Note is set whenever the note exists, i.e. for AccessPermitted and
// AccessForbidden.
type Decision struct {
	Outcome AccessOutcome
	Intent  Intent
	Note    Note
}

// Permitted reports whether the caller may proceed.
func (d Decision) Permitted() bool {
	return d.Outcome == AccessPermitted
}
