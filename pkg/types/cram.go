// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// VideoSuggestion points at an external video resource for one timeblock.
type VideoSuggestion struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// CramItem is a single timeblock in a cram plan schedule.
type CramItem struct {
	// Timeblock labels the slot (e.g. "Hour 1").
	Timeblock string `json:"timeblock" yaml:"timeblock"`

	// Action is the exact topic or task for the slot.
	Action string `json:"action" yaml:"action"`

	// Priority is "CRITICAL" or free text supplied by the model.
	Priority string `json:"priority" yaml:"priority"`

	// Notes explains why the slot matters.
	Notes string `json:"notes" yaml:"notes"`

	// VideoSuggestion is an optional pointer to a video for the topic.
	VideoSuggestion *VideoSuggestion `json:"videoSuggestion,omitempty" yaml:"video_suggestion,omitempty"`
}

// CramPlan is a structured, AI-generated exam-preparation schedule. It is
// produced wholesale by the AI collaborator and stored/displayed as an
// opaque value; it owns no derived state.
type CramPlan struct {
	// ID is assigned by the ledger when the plan is persisted there; zero
	// for a freshly generated plan.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// ExamType names the exam (e.g. "Midterm", "Final").
	ExamType string `json:"examType" yaml:"exam_type"`

	// TotalHours is the time available, as free text (e.g. "6 hours").
	TotalHours string `json:"totalHours" yaml:"total_hours"`

	// Strategy is the overall survival advice.
	Strategy string `json:"strategy" yaml:"strategy"`

	// Schedule is the ordered list of timeblocks.
	Schedule []CramItem `json:"schedule" yaml:"schedule"`

	// CreatedTs is the ledger creation timestamp in Unix seconds; zero for
	// a freshly generated plan.
	CreatedTs int64 `json:"createdTs,omitempty" yaml:"created_ts,omitempty"`
}
