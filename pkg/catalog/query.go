package catalog

import (
	"fmt"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// ChildSummary pairs a child node with the aggregate counts the display
// layer shows next to it.
type ChildSummary struct {
	Node          *types.Content `json:"node"`
	ChildCount    int            `json:"child_count"`
	QuestionCount int            `json:"question_count"`
}

// GetNode retrieves a single content node.
// Returns ErrNotFound when the id does not resolve.
func (s *Service) GetNode(id string) (*types.Content, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	return contents.FindByID(id)
}

// GetChildren returns the direct children of a content node in sibling
// order, each with its child and question counts. The node itself must
// exist; an unknown id is ErrNotFound.
func (s *Service) GetChildren(id string) ([]ChildSummary, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	if _, err := contents.FindByID(id); err != nil {
		return nil, err
	}
	children, err := contents.FindChildren(id)
	if err != nil {
		return nil, err
	}
	return s.summarize(contents, children)
}

// ListTopLevel returns a resource's top-level nodes in sibling order, each
// with its child and question counts.
func (s *Service) ListTopLevel(resourceID string) ([]ChildSummary, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	nodes, err := contents.FindTopLevel(resourceID)
	if err != nil {
		return nil, err
	}
	return s.summarize(contents, nodes)
}

// GetResource retrieves a resource by id.
func (s *Service) GetResource(id string) (*types.Resource, error) {
	resources, err := s.store.Resources()
	if err != nil {
		return nil, err
	}
	return resources.FindByID(id)
}

// ListResources returns all resources.
func (s *Service) ListResources() ([]*types.Resource, error) {
	resources, err := s.store.Resources()
	if err != nil {
		return nil, err
	}
	return resources.FindAll()
}

// GetQuestion retrieves a question by id.
func (s *Service) GetQuestion(id string) (*types.Question, error) {
	questions, err := s.store.Questions()
	if err != nil {
		return nil, err
	}
	return questions.FindByID(id)
}

// ListQuestions returns a content node's questions in sibling order.
// The node itself must exist; an unknown id is ErrNotFound.
func (s *Service) ListQuestions(contentID string) ([]*types.Question, error) {
	contents, err := s.store.Contents()
	if err != nil {
		return nil, err
	}
	if _, err := contents.FindByID(contentID); err != nil {
		return nil, err
	}
	questions, err := s.store.Questions()
	if err != nil {
		return nil, err
	}
	return questions.FindByContent(contentID)
}

// summarize attaches child and question counts to each node.
func (s *Service) summarize(contents types.ContentStore, nodes []*types.Content) ([]ChildSummary, error) {
	summaries := make([]ChildSummary, 0, len(nodes))
	for _, node := range nodes {
		childCount, err := contents.CountChildren(node.ContentID)
		if err != nil {
			return nil, fmt.Errorf("counting children of %s: %w", node.ContentID, err)
		}
		questionCount, err := contents.CountQuestions(node.ContentID)
		if err != nil {
			return nil, fmt.Errorf("counting questions of %s: %w", node.ContentID, err)
		}
		summaries = append(summaries, ChildSummary{
			Node:          node,
			ChildCount:    childCount,
			QuestionCount: questionCount,
		})
	}
	return summaries, nil
}
