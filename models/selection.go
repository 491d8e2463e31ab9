package models

// ViewMode is the listing layout preference.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether m is a known layout.
func (m ViewMode) Valid() bool {
	return m == ViewGrid || m == ViewList
}

// MaxComparison is the hard cap on the comparison set.
const MaxComparison = 3

type OutcomeKind string

const (
	OutcomeAdded    OutcomeKind = "added"
	OutcomeRemoved  OutcomeKind = "removed"
	OutcomeRejected OutcomeKind = "rejected"
)

type Subject string

const (
	SubjectFavorite   Subject = "favorite"
	SubjectComparison Subject = "comparison"
)

// ReasonMaxReached is set on a rejected comparison toggle.
const ReasonMaxReached = "max_reached"

// Outcome is the result of one selection mutation. The notification layer
// turns it into a user-facing message.
type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	Subject    Subject     `json:"subject"`
	PropertyID int         `json:"property_id"`
	Reason     string      `json:"reason,omitempty"`
	Count      int         `json:"count"`
	// Warning is non-empty when the change could not be persisted.
	Warning string `json:"warning,omitempty"`
}

// Snapshot is a read-only copy of a session's selection state.
type Snapshot struct {
	Favorites  []int    `json:"favorites"`
	Comparison []int    `json:"comparison"`
	ViewMode   ViewMode `json:"view_mode"`
	Degraded   bool     `json:"degraded"`
}
