package catalog

import (
	"github.com/rs/zerolog"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Traversal guards. The hierarchy is four levels deep in practice; the
// caps only matter when the stored tree is corrupted (a parent cycle) and
// make every walk terminate instead of looping.
const (
	maxTreeDepth = 32
	maxWalkNodes = 4096
)

// Service exposes the catalog operations to callers. All tree state lives
// in the store; the service itself is stateless and safe for concurrent
// use.
type Service struct {
	store types.Store
	log   zerolog.Logger
}

// New creates a Service on top of an attached store. Corrupt-tree
// conditions (dangling parent references, over-deep chains) are logged on
// log and resolved gracefully rather than failing the operation.
func New(store types.Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// warnCorruptTree records a soft corrupt-tree condition: traversal hit a
// reference it could not follow and treated the node as a root instead.
func (s *Service) warnCorruptTree(op, contentID, parentID string) {
	s.log.Warn().
		Str("op", op).
		Str("content_id", contentID).
		Str("parent_id", parentID).
		Msg("dangling parent reference, treating node as root")
}

// warnTreeTooDeep records the other corrupt-tree condition: a parent
// chain longer than any valid tree, which means a cycle.
func (s *Service) warnTreeTooDeep(op, contentID, parentID string) {
	s.log.Warn().
		Str("op", op).
		Str("content_id", contentID).
		Str("parent_id", parentID).
		Msg("parent chain exceeds maximum depth, stopping walk")
}
