package types

import "time"

// Content node types. The type denotes the depth level a node is typically
// used at, not a strict type-per-depth: a past paper's top level may use
// SECTION-typed nodes directly.
const (
	ContentTypeChapter  = "CHAPTER"
	ContentTypeSection  = "SECTION"
	ContentTypePage     = "PAGE"
	ContentTypeExercise = "EXERCISE"
)

// validContentTypes is the set of recognized content type values.
var validContentTypes = map[string]bool{
	ContentTypeChapter:  true,
	ContentTypeSection:  true,
	ContentTypePage:     true,
	ContentTypeExercise: true,
}

// Content represents one node of a resource's content hierarchy. ParentID is
// a lookup key, not an embedded reference: children are always derived by a
// keyed store query, never held as a pointer list. Order defines the
// sibling sequence among nodes sharing the same parent (or, for top-level
// nodes, the same resource with no parent); all navigation and display rely
// on that sequence being strictly ascending.
type Content struct {
	ContentID   string    `json:"content_id"`
	ResourceID  string    `json:"resource_id"`
	ParentID    string    `json:"parent_id,omitempty"` // empty for top-level nodes
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Number      string    `json:"number,omitempty"`
	PageNumber  *int      `json:"page_number,omitempty"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidContentType reports whether t is a recognized content type.
func ValidContentType(t string) bool {
	return validContentTypes[t]
}

// TopLevel reports whether the node sits at depth 0 of its resource.
func (c *Content) TopLevel() bool {
	return c.ParentID == ""
}

// SetType sets the content type to the given value.
// Returns ErrInvalidType if the type is not recognized.
func (c *Content) SetType(t string) error {
	if !validContentTypes[t] {
		return ErrInvalidType
	}
	c.Type = t
	c.UpdatedAt = time.Now()
	return nil
}

// Retitle changes the display title. Returns ErrInvalidTitle when the new
// title is empty.
func (c *Content) Retitle(title string) error {
	if title == "" {
		return ErrInvalidTitle
	}
	c.Title = title
	c.UpdatedAt = time.Now()
	return nil
}
