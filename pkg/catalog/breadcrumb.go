package catalog

import (
	"errors"
	"slices"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Breadcrumb resolves the ancestor path of a content node, root-first,
// ending with the node itself. A dangling parent reference does not fail
// the call: the walk stops there, logs a corrupt-tree warning, and returns
// the partial path, since trees may be edited while a reader is browsing.
// The walk is additionally capped at maxTreeDepth so a corrupted store
// cannot make it spin.
func (s *Service) Breadcrumb(id string) ([]*types.Content, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}

	node, err := contents.FindByID(id)
	if err != nil {
		return nil, err
	}

	path := []*types.Content{node}
	for depth := 0; node.ParentID != ""; depth++ {
		if depth >= maxTreeDepth {
			s.warnTreeTooDeep("breadcrumb", node.ContentID, node.ParentID)
			break
		}
		parent, err := contents.FindByID(node.ParentID)
		if errors.Is(err, types.ErrNotFound) {
			s.warnCorruptTree("breadcrumb", node.ContentID, node.ParentID)
			break
		}
		if err != nil {
			return nil, err
		}
		path = append(path, parent)
		node = parent
	}

	slices.Reverse(path)
	return path, nil
}
