package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

func TestGetNode(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")

	node, err := s.GetNode(c1.ContentID)
	require.NoError(t, err)
	assert.Equal(t, "Chapter 1", node.Title)
	assert.Equal(t, types.ContentTypeChapter, node.Type)

	_, err = s.GetNode("no-such-node")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetChildren_OrderAndCounts(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	s1 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	s2 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.2")

	// S1 gets a child page; S2 gets two questions.
	addContent(t, s, resourceID, s1.ContentID, types.ContentTypePage, "Page 1")
	addQuestion(t, s, resourceID, s2.ContentID, "1")
	addQuestion(t, s, resourceID, s2.ContentID, "2")

	children, err := s.GetChildren(c1.ContentID)
	require.NoError(t, err)
	require.Len(t, children, 2)

	assert.Equal(t, s1.ContentID, children[0].Node.ContentID)
	assert.Equal(t, 1, children[0].ChildCount)
	assert.Equal(t, 0, children[0].QuestionCount)

	assert.Equal(t, s2.ContentID, children[1].Node.ContentID)
	assert.Equal(t, 0, children[1].ChildCount)
	assert.Equal(t, 2, children[1].QuestionCount)
}

func TestGetChildren_NotFound(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.GetChildren("no-such-node")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListTopLevel(t *testing.T) {
	s, _ := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	c2 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 2")
	addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")

	top, err := s.ListTopLevel(resourceID)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, c1.ContentID, top[0].Node.ContentID)
	assert.Equal(t, 1, top[0].ChildCount)
	assert.Equal(t, c2.ContentID, top[1].Node.ContentID)
	assert.Equal(t, 0, top[1].ChildCount)
}

func TestMoveContent(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	c2 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 2")
	sec := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	page := addContent(t, s, resourceID, sec.ContentID, types.ContentTypePage, "Page 1")
	addContent(t, s, resourceID, c2.ContentID, types.ContentTypeSection, "Section 2.1")

	require.NoError(t, s.MoveContent(sec.ContentID, c2.ContentID))

	contents, err := store.Contents()
	require.NoError(t, err)
	moved, err := contents.FindByID(sec.ContentID)
	require.NoError(t, err)
	assert.Equal(t, c2.ContentID, moved.ParentID)
	assert.Equal(t, 2, moved.Order, "moved node appends after the existing child")

	// The subtree moves with the node.
	kept, err := contents.FindByID(page.ContentID)
	require.NoError(t, err)
	assert.Equal(t, sec.ContentID, kept.ParentID)

	// A breadcrumb from the grandchild now runs through C2.
	path, err := s.Breadcrumb(page.ContentID)
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, c2.ContentID, path[0].ContentID)
}

func TestMoveContent_RejectsCycle(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	sec := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	page := addContent(t, s, resourceID, sec.ContentID, types.ContentTypePage, "Page 1")

	// Under its own grandchild, its own child, and itself: all would
	// close a parent cycle.
	assert.ErrorIs(t, s.MoveContent(c1.ContentID, page.ContentID), types.ErrInvalidData)
	assert.ErrorIs(t, s.MoveContent(c1.ContentID, sec.ContentID), types.ErrInvalidData)
	assert.ErrorIs(t, s.MoveContent(c1.ContentID, c1.ContentID), types.ErrInvalidData)

	// The rejected moves left the tree untouched.
	contents, err := store.Contents()
	require.NoError(t, err)
	got, err := contents.FindByID(c1.ContentID)
	require.NoError(t, err)
	assert.True(t, got.TopLevel())

	// And the subtree is still deletable end to end.
	require.NoError(t, s.DeleteSubtree(c1.ContentID))
}

func TestMoveContent_SiblingSubtreeAllowed(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	s1 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")
	s2 := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.2")

	// Moving under a sibling shares ancestors but closes no cycle.
	require.NoError(t, s.MoveContent(s2.ContentID, s1.ContentID))

	contents, err := store.Contents()
	require.NoError(t, err)
	got, err := contents.FindByID(s2.ContentID)
	require.NoError(t, err)
	assert.Equal(t, s1.ContentID, got.ParentID)
}

func TestUpdateContent_PreservesPlacement(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	sec := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")

	edit := *sec
	edit.Title = "Section 1.1 (revised)"
	edit.Number = "1.1"
	// A stray parent change on the edit payload must not re-parent.
	edit.ParentID = ""
	require.NoError(t, s.UpdateContent(&edit))

	contents, err := store.Contents()
	require.NoError(t, err)
	got, err := contents.FindByID(sec.ContentID)
	require.NoError(t, err)
	assert.Equal(t, "Section 1.1 (revised)", got.Title)
	assert.Equal(t, "1.1", got.Number)
	assert.Equal(t, c1.ContentID, got.ParentID)
	assert.Equal(t, sec.Order, got.Order)
}

func TestUpdateContent_PreservesResource(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)
	otherResourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	sec := addContent(t, s, resourceID, c1.ContentID, types.ContentTypeSection, "Section 1.1")

	// A stray resource change on the edit payload must not re-home the
	// node away from its parent's resource.
	edit := *sec
	edit.Title = "Section 1.1 (revised)"
	edit.ResourceID = otherResourceID
	require.NoError(t, s.UpdateContent(&edit))

	contents, err := store.Contents()
	require.NoError(t, err)
	got, err := contents.FindByID(sec.ContentID)
	require.NoError(t, err)
	assert.Equal(t, "Section 1.1 (revised)", got.Title)
	assert.Equal(t, resourceID, got.ResourceID)

	top, err := s.ListTopLevel(otherResourceID)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestPublishQuestion(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	q := addQuestion(t, s, resourceID, c1.ContentID, "1")

	require.NoError(t, s.PublishQuestion(q.QuestionID))

	questions, err := store.Questions()
	require.NoError(t, err)
	got, err := questions.FindByID(q.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, types.QuestionStatusLive, got.Status)

	// Publishing again is an invalid transition.
	err = s.PublishQuestion(q.QuestionID)
	assert.ErrorIs(t, err, types.ErrInvalidTransition)
}

func TestUnpublishQuestion(t *testing.T) {
	s, store := newTestService(t)
	resourceID := mustResource(t, s)

	c1 := addContent(t, s, resourceID, "", types.ContentTypeChapter, "Chapter 1")
	q := addQuestion(t, s, resourceID, c1.ContentID, "1")

	require.NoError(t, s.PublishQuestion(q.QuestionID))
	require.NoError(t, s.UnpublishQuestion(q.QuestionID))

	questions, err := store.Questions()
	require.NoError(t, err)
	got, err := questions.FindByID(q.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, types.QuestionStatusDraft, got.Status)

	// Unpublishing a draft is a no-op, and the question can go live again.
	require.NoError(t, s.UnpublishQuestion(q.QuestionID))
	require.NoError(t, s.PublishQuestion(q.QuestionID))

	err = s.UnpublishQuestion("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
