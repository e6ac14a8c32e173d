package catalog

import (
	"errors"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Reading-order navigation. Linear order is: within a parent, siblings
// ascending by order; across parents, the parent's own position in its
// parent's sibling order, applied recursively up to the root. Next and
// Previous are deliberately asymmetric: Next skips over an exhausted
// parent to the parent's next sibling (the parent was already visited on
// the way down), while Previous steps up onto the parent itself (the
// parent precedes its first child in depth-first reading order).
//
// Navigation functions return (nil, nil) when traversal legitimately
// terminates; that is the "end of content" outcome and is distinct from an
// error. An unknown starting id is ErrNotFound, and store failures
// propagate unchanged.

// NextContent computes the node a reader should see after the given one.
func (s *Service) NextContent(id string) (*types.Content, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	node, err := contents.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.nextFrom(contents, node, 0)
}

// nextFrom finds the immediate next sibling of node, climbing to the
// parent's level whenever the current level is exhausted. The climb
// continues until a sibling is found at some ancestor level or the top
// level runs out; it is bounded only by tree depth, never by a fixed
// number of levels.
func (s *Service) nextFrom(contents types.ContentStore, node *types.Content, depth int) (*types.Content, error) {
	if depth >= maxTreeDepth {
		s.warnTreeTooDeep("next", node.ContentID, node.ParentID)
		return nil, nil
	}

	var sibling *types.Content
	var err error
	if node.TopLevel() {
		sibling, err = contents.FindTopLevelAfter(node.ResourceID, node.Order)
	} else {
		sibling, err = contents.FindSiblingAfter(node.ParentID, node.Order)
	}
	if err == nil {
		return sibling, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	if node.TopLevel() {
		// Top level exhausted: no next content.
		return nil, nil
	}

	parent, err := contents.FindByID(node.ParentID)
	if errors.Is(err, types.ErrNotFound) {
		// Dangling parent: cannot climb further.
		s.warnCorruptTree("next", node.ContentID, node.ParentID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.nextFrom(contents, parent, depth+1)
}

// PreviousContent computes the node a reader should see before the given
// one: the immediate previous sibling when one exists, otherwise the
// parent itself.
func (s *Service) PreviousContent(id string) (*types.Content, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	node, err := contents.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.previousFrom(contents, node)
}

func (s *Service) previousFrom(contents types.ContentStore, node *types.Content) (*types.Content, error) {
	var sibling *types.Content
	var err error
	if node.TopLevel() {
		sibling, err = contents.FindTopLevelBefore(node.ResourceID, node.Order)
	} else {
		sibling, err = contents.FindSiblingBefore(node.ParentID, node.Order)
	}
	if err == nil {
		return sibling, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	if node.TopLevel() {
		// First top-level node: no previous content.
		return nil, nil
	}

	parent, err := contents.FindByID(node.ParentID)
	if errors.Is(err, types.ErrNotFound) {
		s.warnCorruptTree("previous", node.ContentID, node.ParentID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parent, nil
}

// FirstQuestion returns the lowest-order question attached to a content
// node, or (nil, nil) when the node has none.
func (s *Service) FirstQuestion(contentID string) (*types.Question, error) {
	questions, err := s.store.Questions()
	if err != nil {
		return nil, err
	}
	q, err := questions.FirstByContent(contentID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// LastQuestion returns the highest-order question attached to a content
// node, or (nil, nil) when the node has none.
func (s *Service) LastQuestion(contentID string) (*types.Question, error) {
	questions, err := s.store.Questions()
	if err != nil {
		return nil, err
	}
	q, err := questions.LastByContent(contentID)
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// NextQuestion computes the question a reader should see after the given
// one: the next question within the same content node when one exists,
// otherwise the first question of the next content node in reading order,
// skipping nodes that have no questions. Returns (nil, nil) when the tree
// is exhausted.
func (s *Service) NextQuestion(questionID string) (*types.Question, error) {
	return s.stepQuestion(questionID, true)
}

// PreviousQuestion is the mirror of NextQuestion, using the previous
// question in the node and the last question of earlier content nodes.
func (s *Service) PreviousQuestion(questionID string) (*types.Question, error) {
	return s.stepQuestion(questionID, false)
}

func (s *Service) stepQuestion(questionID string, forward bool) (*types.Question, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	questions, err := s.store.Questions()
	if err != nil {
		return nil, err
	}

	q, err := questions.FindByID(questionID)
	if err != nil {
		return nil, err
	}

	var within *types.Question
	if forward {
		within, err = questions.NextByContent(q.ContentID, q.Order)
	} else {
		within, err = questions.PreviousByContent(q.ContentID, q.Order)
	}
	if err == nil {
		return within, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	node, err := contents.FindByID(q.ContentID)
	if errors.Is(err, types.ErrNotFound) {
		// The owning node is gone; there is nothing to step across.
		s.warnCorruptTree("step-question", q.QuestionID, q.ContentID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Walk content nodes in reading order until one with questions turns
	// up. The walk guard keeps a corrupted tree from looping forever.
	for steps := 0; steps < maxWalkNodes; steps++ {
		if forward {
			node, err = s.nextFrom(contents, node, 0)
		} else {
			node, err = s.previousFrom(contents, node)
		}
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nil, nil
		}

		var candidate *types.Question
		if forward {
			candidate, err = questions.FirstByContent(node.ContentID)
		} else {
			candidate, err = questions.LastByContent(node.ContentID)
		}
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
	}
	return nil, nil
}
