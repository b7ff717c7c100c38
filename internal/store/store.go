// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists local application state: settings, per-course
// checklist state, archived syllabi, and cram plan history. Consumers
// depend on the Store interface so tests can swap in the in-memory
// implementation.
package store

import (
	"errors"
	"strings"

	"github.com/pdiddy/phantasm/pkg/types"
)

// ErrNotFound is returned when no record exists for the requested key.
var ErrNotFound = errors.New("not found")

// Store is the local persistence contract.
type Store interface {
	// Setting returns the value for key, or ErrNotFound.
	Setting(key string) (string, error)

	// SetSetting stores the value for key, replacing any prior value.
	SetSetting(key, value string) error

	// Checklist returns the set of checked item texts for the course.
	// A course with no saved state yields an empty map, not an error.
	Checklist(courseCode string) (map[string]bool, error)

	// SaveChecklist replaces the checklist state for the course.
	SaveChecklist(courseCode string, checked map[string]bool) error

	// SaveSyllabus archives a generation result as the latest syllabus
	// for its course, replacing any prior archive.
	SaveSyllabus(data types.SyllabusData) error

	// LatestSyllabus returns the archived syllabus for the course, or
	// ErrNotFound.
	LatestSyllabus(courseCode string) (types.SyllabusData, error)

	// SavePlan appends a cram plan to the course's local history and
	// returns its assigned id.
	SavePlan(courseCode string, plan types.CramPlan) (int64, error)

	// Plans returns the course's local plan history, newest first.
	Plans(courseCode string) ([]types.CramPlan, error)

	// Close releases underlying resources.
	Close() error
}

// CourseKey sanitizes a course code for use as a storage key: every
// non-alphanumeric rune becomes an underscore. "CS 101" and "CS-101"
// therefore share state.
func CourseKey(courseCode string) string {
	var sb strings.Builder
	for _, r := range courseCode {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
