// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProfessorRating is the result of a rating lookup. When Found is false
// the numeric fields are meaningless placeholders; consumers must branch
// on Found before reading scores.
type ProfessorRating struct {
	// Found reports whether a verifiable profile with numeric scores exists.
	Found bool `json:"found" yaml:"found"`

	// Name is the corrected full name of the professor as found, or the
	// input name when no profile was found.
	Name string `json:"name" yaml:"name"`

	// Quality is the overall quality score as a string (e.g. "4.2").
	Quality string `json:"quality" yaml:"quality"`

	// Difficulty is the difficulty score as a string (e.g. "3.5").
	Difficulty string `json:"difficulty" yaml:"difficulty"`

	// TakeAgain is the would-take-again percentage (e.g. "80%").
	TakeAgain string `json:"takeAgain" yaml:"take_again"`

	// Summary is a one-sentence summary of the reviews.
	Summary string `json:"summary" yaml:"summary"`
}
