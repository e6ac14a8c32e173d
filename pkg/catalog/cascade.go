package catalog

import (
	"errors"
	"fmt"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// errSubtreeTooDeep aborts a cascade that descends past the traversal
// guard, which only happens on a corrupted (cyclic) tree.
var errSubtreeTooDeep = errors.New("subtree exceeds maximum depth")

// DeleteError reports which node a cascade deletion failed on. Deletion is
// children-first, so everything below the failing node is already gone and
// the failing node and its ancestors are untouched.
type DeleteError struct {
	ContentID string
	Err       error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("deleting subtree at %s: %v", e.ContentID, e.Err)
}

func (e *DeleteError) Unwrap() error {
	return e.Err
}

// DeleteSubtree deletes a content node and every descendant, post-order:
// children first, then the node itself. The recursion does not rely on the
// store cascading child nodes; it removes each one explicitly. A failure
// at any depth aborts immediately without touching the ancestors of the
// failing node, so no surviving descendant is orphaned, and the returned
// DeleteError names the node that failed. Question rows attached to each
// deleted node are the store's responsibility; if the store rejects a
// node that still has dependents, that rejection surfaces here.
func (s *Service) DeleteSubtree(id string) error {
	contents, err := s.store.Contents()
	if err != nil {
		return err
	}

	if _, err := contents.FindByID(id); err != nil {
		return err
	}

	return s.deleteRecursive(contents, id, 0)
}

func (s *Service) deleteRecursive(contents types.ContentStore, id string, depth int) error {
	if depth >= maxTreeDepth {
		return &DeleteError{ContentID: id, Err: errSubtreeTooDeep}
	}

	children, err := contents.FindChildren(id)
	if err != nil {
		return &DeleteError{ContentID: id, Err: err}
	}
	for _, child := range children {
		if err := s.deleteRecursive(contents, child.ContentID, depth+1); err != nil {
			return err
		}
	}

	if err := contents.Delete(id); err != nil {
		return &DeleteError{ContentID: id, Err: err}
	}
	return nil
}

// DeleteResource deletes a resource together with its entire content tree:
// each top-level node goes through DeleteSubtree, then the resource row
// itself is removed.
func (s *Service) DeleteResource(resourceID string) error {
	resources, err := s.store.Resources()
	if err != nil {
		return err
	}
	contents, err := s.store.Contents()
	if err != nil {
		return err
	}

	if _, err := resources.FindByID(resourceID); err != nil {
		return err
	}

	topLevel, err := contents.FindTopLevel(resourceID)
	if err != nil {
		return err
	}
	for _, node := range topLevel {
		if err := s.deleteRecursive(contents, node.ContentID, 0); err != nil {
			return err
		}
	}

	return resources.Delete(resourceID)
}
