package catalog

import (
	"errors"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Authoring operations. Creation and moves run through the order allocator
// before hitting the store, so sibling sequences stay strictly ascending
// without the caller tracking positions.

// CreateResource persists a new resource and returns its generated ID.
func (s *Service) CreateResource(r *types.Resource) (string, error) {
	resources, err := s.store.Resources()
	if err != nil {
		return "", err
	}
	return resources.Save("", r)
}

// CreateContent persists a new content node under c.ParentID (or at the
// top level of c.ResourceID when ParentID is empty), allocating its
// sibling order. Returns the generated ID.
func (s *Service) CreateContent(c *types.Content) (string, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return "", err
	}

	if c.ParentID != "" {
		// The parent must resolve; a node cannot be authored under a
		// dangling reference.
		if _, err := contents.FindByID(c.ParentID); err != nil {
			return "", err
		}
		c.Order, err = s.NextOrder(c.ParentID)
	} else {
		c.Order, err = s.NextTopLevelOrder(c.ResourceID)
	}
	if err != nil {
		return "", err
	}

	return contents.Save("", c)
}

// UpdateContent persists edits to an existing node's display fields.
// Placement (resource, parent, order) is not touched here; use
// MoveContent to re-parent.
func (s *Service) UpdateContent(c *types.Content) error {
	contents, err := s.store.Contents()
	if err != nil {
		return err
	}
	current, err := contents.FindByID(c.ContentID)
	if err != nil {
		return err
	}
	c.ResourceID = current.ResourceID
	c.ParentID = current.ParentID
	c.Order = current.Order
	c.CreatedAt = current.CreatedAt
	_, err = contents.Save(c.ContentID, c)
	return err
}

// MoveContent re-parents a node. The node keeps its subtree; it is
// appended to the new parent's children with a freshly allocated order.
// An empty newParentID moves the node to the resource's top level.
// Moving a node under itself or under one of its own descendants would
// close a parent cycle, so it is rejected with ErrInvalidData.
func (s *Service) MoveContent(id, newParentID string) error {
	contents, err := s.store.Contents()
	if err != nil {
		return err
	}
	node, err := contents.FindByID(id)
	if err != nil {
		return err
	}

	if newParentID != "" {
		parent, err := contents.FindByID(newParentID)
		if err != nil {
			return err
		}
		if parent.ResourceID != node.ResourceID {
			return types.ErrInvalidData
		}
		if err := s.checkNoCycle(contents, id, parent); err != nil {
			return err
		}
		node.Order, err = s.NextOrder(newParentID)
		if err != nil {
			return err
		}
	} else {
		node.Order, err = s.NextTopLevelOrder(node.ResourceID)
		if err != nil {
			return err
		}
	}

	node.ParentID = newParentID
	_, err = contents.Save(id, node)
	return err
}

// checkNoCycle walks newParent's ancestor chain and returns
// ErrInvalidData if it passes through id: the candidate parent sits
// inside id's own subtree and re-parenting would close a cycle. The walk
// is bounded like Breadcrumb's; a dangling ancestor ends it at what is
// effectively a root.
func (s *Service) checkNoCycle(contents types.ContentStore, id string, newParent *types.Content) error {
	ancestor := newParent
	for depth := 0; depth < maxTreeDepth; depth++ {
		if ancestor.ContentID == id {
			return types.ErrInvalidData
		}
		if ancestor.ParentID == "" {
			return nil
		}
		next, err := contents.FindByID(ancestor.ParentID)
		if errors.Is(err, types.ErrNotFound) {
			s.warnCorruptTree("move", ancestor.ContentID, ancestor.ParentID)
			return nil
		}
		if err != nil {
			return err
		}
		ancestor = next
	}
	return types.ErrInvalidData
}

// CreateQuestion persists a new question under q.ContentID, allocating its
// order among the node's questions. Returns the generated ID.
func (s *Service) CreateQuestion(q *types.Question) (string, error) {
	questions, err := s.store.Questions()
	if err != nil {
		return "", err
	}

	q.Order, err = s.NextQuestionOrder(q.ContentID)
	if err != nil {
		return "", err
	}
	return questions.Save("", q)
}

// PublishQuestion moves a draft question to live.
func (s *Service) PublishQuestion(id string) error {
	questions, err := s.store.Questions()
	if err != nil {
		return err
	}
	q, err := questions.FindByID(id)
	if err != nil {
		return err
	}
	if err := q.Publish(); err != nil {
		return err
	}
	_, err = questions.Save(id, q)
	return err
}

// UnpublishQuestion moves a live question back to draft.
func (s *Service) UnpublishQuestion(id string) error {
	questions, err := s.store.Questions()
	if err != nil {
		return err
	}
	q, err := questions.FindByID(id)
	if err != nil {
		return err
	}
	if err := q.Unpublish(); err != nil {
		return err
	}
	_, err = questions.Save(id, q)
	return err
}

// DeleteQuestion removes a question by ID.
func (s *Service) DeleteQuestion(id string) error {
	questions, err := s.store.Questions()
	if err != nil {
		return err
	}
	return questions.Delete(id)
}
