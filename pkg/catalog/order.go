package catalog

// Order allocation for new siblings. The allocated value is advisory: the
// caller persists it together with the new node, and two concurrent
// allocations under the same parent can collide unless the store (or an
// outer transaction boundary) serializes the read-max-then-insert
// sequence. The catalog does no in-process locking for this.

// NextOrder returns the order value a new child of parentID should take:
// one past the highest existing sibling order, or 1 under an empty parent.
func (s *Service) NextOrder(parentID string) (int, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return 0, err
	}
	max, err := contents.MaxOrder(parentID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// NextTopLevelOrder is NextOrder for a new top-level node of a resource.
func (s *Service) NextTopLevelOrder(resourceID string) (int, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return 0, err
	}
	max, err := contents.MaxTopLevelOrder(resourceID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// NextQuestionOrder returns the order value a new question attached to
// contentID should take.
func (s *Service) NextQuestionOrder(contentID string) (int, error) {
	questions, err := s.store.Questions()
	if err != nil {
		return 0, err
	}
	max, err := questions.MaxOrder(contentID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
