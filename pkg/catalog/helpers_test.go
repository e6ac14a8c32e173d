package catalog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hi-yolit/solutions-sub000/internal/sqlite"
	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// newTestService attaches a SQLite backend on a temp data dir and wraps it
// in a Service. The backend detaches when the test ends.
func newTestService(t *testing.T) (*Service, types.Store) {
	t.Helper()

	backend := sqlite.NewBackend()
	err := backend.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Detach() })

	return New(backend, zerolog.Nop()), backend
}

func mustResource(t *testing.T, s *Service) string {
	t.Helper()
	id, err := s.CreateResource(&types.Resource{
		Title:   "Mathematics Grade 12",
		Type:    types.ResourceTypeTextbook,
		Subject: "Mathematics",
		Grade:   "12",
	})
	require.NoError(t, err)
	return id
}

// addContent creates a node through the authoring path so its order comes
// from the allocator.
func addContent(t *testing.T, s *Service, resourceID, parentID, contentType, title string) *types.Content {
	t.Helper()
	c := &types.Content{
		ResourceID: resourceID,
		ParentID:   parentID,
		Type:       contentType,
		Title:      title,
	}
	id, err := s.CreateContent(c)
	require.NoError(t, err)
	require.Equal(t, id, c.ContentID)
	return c
}

func addQuestion(t *testing.T, s *Service, resourceID, contentID, number string) *types.Question {
	t.Helper()
	q := &types.Question{
		ResourceID:     resourceID,
		ContentID:      contentID,
		QuestionNumber: number,
		Type:           types.QuestionTypeStructured,
	}
	_, err := s.CreateQuestion(q)
	require.NoError(t, err)
	return q
}
