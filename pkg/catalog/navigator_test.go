package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// The C1/S1/S2/P1 reading-order scenarios: next within a level, the climb
// past an exhausted parent, and the asymmetric previous that lands on the
// parent itself.
func TestNavigator_ReadingOrder(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	s1 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	s2 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.2")
	p1 := addContent(t, s, resourceID, s2.ContentID, types.ContentTypePage, "Page 12")

	// Sibling step.
	next, err := s.NextContent(s1.ContentID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, s2.ContentID, next.ContentID)

	// S2 has no next sibling and C1 has none either: end of content.
	next, err = s.NextContent(s2.ContentID)
	require.NoError(t, err)
	assert.Nil(t, next)

	// With a second chapter, the climb from S2 finds it.
	c2 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 2")
	next, err = s.NextContent(s2.ContentID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, c2.ContentID, next.ContentID)

	// Previous with no earlier sibling climbs onto the parent itself.
	prev, err := s.PreviousContent(p1.ContentID)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, s2.ContentID, prev.ContentID)

	// Previous with an earlier sibling takes it.
	prev, err = s.PreviousContent(s2.ContentID)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, s1.ContentID, prev.ContentID)
}

// The climb must continue through every ancestor level, not stop after a
// fixed number of hops: from a depth-3 leaf at the end of its chapter, the
// next stop is the following chapter.
func TestNavigator_ClimbsAllLevels(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	sec := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	page := addContent(t, s, resourceID, sec.ContentID, types.ContentTypePage, "Page 3")
	ex := addContent(t, s, resourceID, page.ContentID, types.ContentTypeExercise, "Exercise 1A")
	c2 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 2")

	// The exercise is the last node of C1's whole subtree; three climbs
	// are needed to reach C2.
	next, err := s.NextContent(ex.ContentID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, c2.ContentID, next.ContentID)
}

func TestNavigator_InverseRelation(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	s1 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	s2 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.2")
	p1 := addContent(t, s, resourceID, s2.ContentID, types.ContentTypePage, "Page 12")

	// Sibling case: previous(S2) is the sibling S1, and next(S1) returns
	// to S2.
	prev, err := s.PreviousContent(s2.ContentID)
	require.NoError(t, err)
	require.Equal(t, s1.ContentID, prev.ContentID)
	back, err := s.NextContent(prev.ContentID)
	require.NoError(t, err)
	require.Equal(t, s2.ContentID, back.ContentID)

	// Parent-climb case: previous(P1) is the parent S2, and next(S2) does
	// not return to P1 -- forward order has already passed S2's subtree
	// entry, so it seeks S2's own next position instead.
	prev, err = s.PreviousContent(p1.ContentID)
	require.NoError(t, err)
	require.Equal(t, s2.ContentID, prev.ContentID)
	forward, err := s.NextContent(prev.ContentID)
	require.NoError(t, err)
	assert.Nil(t, forward)
}

func TestNavigator_Boundaries(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	c2 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 2")

	prev, err := s.PreviousContent(c1.ContentID)
	require.NoError(t, err)
	assert.Nil(t, prev, "first top-level node has no previous")

	next, err := s.NextContent(c2.ContentID)
	require.NoError(t, err)
	assert.Nil(t, next, "last node of the tree has no next")

	_, err = s.NextContent("no-such-node")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

// A dangling parent reference must terminate the climb gracefully, not
// fail the call.
func TestNavigator_DanglingParent(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	contents, err := store.Contents()
	require.NoError(t, err)

	orphan := &types.Content{
		ResourceID: resourceID,
		ParentID:   "deleted-parent",
		Type:       types.ContentTypeSection,
		Title:      "Orphaned section",
		Order:      1,
	}
	_, err = contents.Save("", orphan)
	require.NoError(t, err)

	next, err := s.NextContent(orphan.ContentID)
	require.NoError(t, err)
	assert.Nil(t, next)

	prev, err := s.PreviousContent(orphan.ContentID)
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestNavigator_FirstLastQuestion(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	page := addContent(t, s, resourceID, c1.ContentID, types.ContentTypePage, "Page 5")

	first, err := s.FirstQuestion(page.ContentID)
	require.NoError(t, err)
	assert.Nil(t, first, "empty node has no first question")

	q1 := addQuestion(t, s, resourceID, page.ContentID, "1")
	q2 := addQuestion(t, s, resourceID, page.ContentID, "2")
	q3 := addQuestion(t, s, resourceID, page.ContentID, "3")

	first, err = s.FirstQuestion(page.ContentID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, q1.QuestionID, first.QuestionID)

	last, err := s.LastQuestion(page.ContentID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, q3.QuestionID, last.QuestionID)
	_ = q2
}

// Question navigation composes with content navigation: when a node's
// questions run out, the walk moves through the content nodes that
// next/previous reach (siblings, then ancestor-level siblings), skipping
// ones with no questions.
func TestNavigator_QuestionTraversal(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	p1 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypePage, "Page 1")
	p2 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypePage, "Page 2") // no questions
	p3 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypePage, "Page 3")
	c2 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 2")

	q1 := addQuestion(t, s, resourceID, p1.ContentID, "1")
	q2 := addQuestion(t, s, resourceID, p1.ContentID, "2")
	q3 := addQuestion(t, s, resourceID, p3.ContentID, "1")
	// A past-paper style chapter with questions attached directly.
	q4 := addQuestion(t, s, resourceID, c2.ContentID, "1")
	_ = p2

	// Within the node.
	next, err := s.NextQuestion(q1.QuestionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, q2.QuestionID, next.QuestionID)

	// Across siblings: p2 has no questions, the walk lands on p3.
	next, err = s.NextQuestion(q2.QuestionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, q3.QuestionID, next.QuestionID)

	// Across the chapter boundary: p3 is the last page of C1, the climb
	// reaches C2 and its first question.
	next, err = s.NextQuestion(q3.QuestionID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, q4.QuestionID, next.QuestionID)

	// End of the tree.
	next, err = s.NextQuestion(q4.QuestionID)
	require.NoError(t, err)
	assert.Nil(t, next)

	// Backwards from q3 through the empty page to q2.
	prev, err := s.PreviousQuestion(q3.QuestionID)
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, q2.QuestionID, prev.QuestionID)

	// Backwards from the first question of the first page: the parent
	// chapter has no questions of its own, and nothing precedes it.
	prev, err = s.PreviousQuestion(q1.QuestionID)
	require.NoError(t, err)
	assert.Nil(t, prev)
}
