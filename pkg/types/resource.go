package types

import "time"

// Resource types. A resource is the top-level grouping that owns a content
// hierarchy.
const (
	ResourceTypeTextbook   = "TEXTBOOK"
	ResourceTypePastPaper  = "PAST_PAPER"
	ResourceTypeStudyGuide = "STUDY_GUIDE"
)

// Resource statuses.
const (
	ResourceStatusDraft = "DRAFT"
	ResourceStatusLive  = "LIVE"
)

// validResourceTypes is the set of recognized resource type values.
var validResourceTypes = map[string]bool{
	ResourceTypeTextbook:   true,
	ResourceTypePastPaper:  true,
	ResourceTypeStudyGuide: true,
}

// validResourceStatuses is the set of recognized resource status values.
var validResourceStatuses = map[string]bool{
	ResourceStatusDraft: true,
	ResourceStatusLive:  true,
}

// Resource represents an educational resource (a textbook, a past paper, or
// a study guide) that owns a tree of content nodes.
type Resource struct {
	ResourceID string    `json:"resource_id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Subject    string    `json:"subject,omitempty"`
	Grade      string    `json:"grade,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidResourceType reports whether t is a recognized resource type.
func ValidResourceType(t string) bool {
	return validResourceTypes[t]
}

// Publish marks the resource as live. Idempotent.
func (r *Resource) Publish() error {
	r.Status = ResourceStatusLive
	r.UpdatedAt = time.Now()
	return nil
}

// SetStatus sets the resource status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
func (r *Resource) SetStatus(status string) error {
	if !validResourceStatuses[status] {
		return ErrInvalidStatus
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}
