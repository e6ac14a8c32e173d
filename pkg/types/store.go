package types

import "errors"

// Store defines the interface for backend-agnostic catalog storage.
// Callers attach to a backend, access typed entity stores, and detach when
// done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, accessor calls return ErrStoreDetached.
	Detach() error

	// Resources returns the resource store accessor.
	Resources() (ResourceStore, error)

	// Contents returns the content store accessor.
	Contents() (ContentStore, error)

	// Questions returns the question store accessor.
	Questions() (QuestionStore, error)
}

// ResourceStore persists Resource entities.
type ResourceStore interface {
	// FindByID retrieves the resource with the given ID.
	// Returns ErrNotFound if no resource exists with that ID.
	FindByID(id string) (*Resource, error)

	// FindAll returns every resource, newest first.
	FindAll() ([]*Resource, error)

	// Save creates or updates a resource. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Save(id string, r *Resource) (string, error)

	// Delete removes the resource with the given ID. Returns
	// ErrReferentialIntegrity while content nodes still reference it.
	Delete(id string) error
}

// ContentStore persists Content nodes and answers the ordered sibling
// queries the catalog's traversal logic is built on. Every ordered query
// sorts ascending by sibling order with the node ID as deterministic
// tie-break.
type ContentStore interface {
	// FindByID retrieves the content node with the given ID.
	// Returns ErrNotFound if no node exists with that ID.
	FindByID(id string) (*Content, error)

	// FindChildren returns the direct children of parentID in sibling order.
	FindChildren(parentID string) ([]*Content, error)

	// FindTopLevel returns the resource's top-level nodes in sibling order.
	FindTopLevel(resourceID string) ([]*Content, error)

	// FindSiblingAfter returns the first child of parentID whose order is
	// strictly greater than order. Returns ErrNotFound when none exists.
	FindSiblingAfter(parentID string, order int) (*Content, error)

	// FindSiblingBefore returns the last child of parentID whose order is
	// strictly less than order. Returns ErrNotFound when none exists.
	FindSiblingBefore(parentID string, order int) (*Content, error)

	// FindTopLevelAfter is FindSiblingAfter for top-level nodes of a resource.
	FindTopLevelAfter(resourceID string, order int) (*Content, error)

	// FindTopLevelBefore is FindSiblingBefore for top-level nodes of a resource.
	FindTopLevelBefore(resourceID string, order int) (*Content, error)

	// MaxOrder returns the highest sibling order among children of parentID,
	// or 0 when the parent has no children.
	MaxOrder(parentID string) (int, error)

	// MaxTopLevelOrder is MaxOrder for top-level nodes of a resource.
	MaxTopLevelOrder(resourceID string) (int, error)

	// CountChildren returns the number of direct children of contentID.
	CountChildren(contentID string) (int, error)

	// CountQuestions returns the number of questions attached to contentID.
	CountQuestions(contentID string) (int, error)

	// Save creates or updates a content node. When id is empty a new UUID v7
	// is generated. Returns the actual ID used (generated or provided).
	Save(id string, c *Content) (string, error)

	// Delete removes a single content node and its attached questions.
	// Returns ErrReferentialIntegrity while child content nodes still
	// reference it; recursive removal is the caller's responsibility.
	Delete(id string) error
}

// QuestionStore persists Question entities and answers the ordered queries
// question navigation is built on.
type QuestionStore interface {
	// FindByID retrieves the question with the given ID.
	// Returns ErrNotFound if no question exists with that ID.
	FindByID(id string) (*Question, error)

	// FindByContent returns the questions attached to contentID in sibling
	// order.
	FindByContent(contentID string) ([]*Question, error)

	// FirstByContent returns the lowest-order question attached to
	// contentID. Returns ErrNotFound when the node has no questions.
	FirstByContent(contentID string) (*Question, error)

	// LastByContent returns the highest-order question attached to
	// contentID. Returns ErrNotFound when the node has no questions.
	LastByContent(contentID string) (*Question, error)

	// NextByContent returns the first question under contentID whose order
	// is strictly greater than order. Returns ErrNotFound when none exists.
	NextByContent(contentID string, order int) (*Question, error)

	// PreviousByContent returns the last question under contentID whose
	// order is strictly less than order. Returns ErrNotFound when none
	// exists.
	PreviousByContent(contentID string, order int) (*Question, error)

	// MaxOrder returns the highest sibling order among questions attached
	// to contentID, or 0 when the node has none.
	MaxOrder(contentID string) (int, error)

	// Save creates or updates a question. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Save(id string, q *Question) (string, error)

	// Delete removes the question with the given ID.
	// Returns ErrNotFound if no question exists with that ID.
	Delete(id string) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
