// This file implements the contents store accessor for the SQLite backend:
// point lookups, the ordered sibling queries navigation is built on, order
// aggregates for the allocator, and single-node deletion.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Compile-time interface check: contentsTable must implement ContentStore.
var _ types.ContentStore = (*contentsTable)(nil)

// contentsTable implements the ContentStore interface. Each operation
// hydrates/dehydrates between SQLite rows and *types.Content structs, and
// persists changes to contents.jsonl atomically.
type contentsTable struct {
	backend *Backend
}

const contentColumns = "content_id, resource_id, parent_id, content_type, title, number, page_number, description, sort_order, created_at, updated_at"

// Sibling queries order by sort_order with content_id as deterministic
// tie-break, so an order collision cannot make navigation loop.
const siblingOrdering = " ORDER BY sort_order ASC, content_id ASC"

// FindByID retrieves a content node by ID.
func (ct *contentsTable) FindByID(id string) (*types.Content, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := ct.backend.db.QueryRow(
		"SELECT "+contentColumns+" FROM contents WHERE content_id = ?",
		id,
	)
	c, err := hydrateContent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting content %s: %w", id, err)
	}
	return c, nil
}

// FindChildren returns the direct children of parentID in sibling order.
func (ct *contentsTable) FindChildren(parentID string) ([]*types.Content, error) {
	if parentID == "" {
		return nil, types.ErrInvalidID
	}
	return ct.queryContents(
		"SELECT "+contentColumns+" FROM contents WHERE parent_id = ?"+siblingOrdering,
		parentID,
	)
}

// FindTopLevel returns the resource's top-level nodes in sibling order.
func (ct *contentsTable) FindTopLevel(resourceID string) ([]*types.Content, error) {
	if resourceID == "" {
		return nil, types.ErrInvalidID
	}
	return ct.queryContents(
		"SELECT "+contentColumns+" FROM contents WHERE resource_id = ? AND parent_id IS NULL"+siblingOrdering,
		resourceID,
	)
}

// FindSiblingAfter returns the first child of parentID ordered after the
// given position. Returns ErrNotFound when none exists.
func (ct *contentsTable) FindSiblingAfter(parentID string, order int) (*types.Content, error) {
	return ct.queryOneContent(
		"SELECT "+contentColumns+" FROM contents WHERE parent_id = ? AND sort_order > ?"+siblingOrdering+" LIMIT 1",
		parentID, order,
	)
}

// FindSiblingBefore returns the last child of parentID ordered before the
// given position. Returns ErrNotFound when none exists.
func (ct *contentsTable) FindSiblingBefore(parentID string, order int) (*types.Content, error) {
	return ct.queryOneContent(
		"SELECT "+contentColumns+" FROM contents WHERE parent_id = ? AND sort_order < ? ORDER BY sort_order DESC, content_id DESC LIMIT 1",
		parentID, order,
	)
}

// FindTopLevelAfter is FindSiblingAfter for top-level nodes of a resource.
func (ct *contentsTable) FindTopLevelAfter(resourceID string, order int) (*types.Content, error) {
	return ct.queryOneContent(
		"SELECT "+contentColumns+" FROM contents WHERE resource_id = ? AND parent_id IS NULL AND sort_order > ?"+siblingOrdering+" LIMIT 1",
		resourceID, order,
	)
}

// FindTopLevelBefore is FindSiblingBefore for top-level nodes of a resource.
func (ct *contentsTable) FindTopLevelBefore(resourceID string, order int) (*types.Content, error) {
	return ct.queryOneContent(
		"SELECT "+contentColumns+" FROM contents WHERE resource_id = ? AND parent_id IS NULL AND sort_order < ? ORDER BY sort_order DESC, content_id DESC LIMIT 1",
		resourceID, order,
	)
}

// MaxOrder returns the highest sibling order among children of parentID,
// or 0 when the parent has no children.
func (ct *contentsTable) MaxOrder(parentID string) (int, error) {
	if parentID == "" {
		return 0, types.ErrInvalidID
	}
	var max int
	err := ct.backend.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), 0) FROM contents WHERE parent_id = ?",
		parentID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max order for parent %s: %w", parentID, err)
	}
	return max, nil
}

// MaxTopLevelOrder is MaxOrder for top-level nodes of a resource.
func (ct *contentsTable) MaxTopLevelOrder(resourceID string) (int, error) {
	if resourceID == "" {
		return 0, types.ErrInvalidID
	}
	var max int
	err := ct.backend.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), 0) FROM contents WHERE resource_id = ? AND parent_id IS NULL",
		resourceID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max top-level order for resource %s: %w", resourceID, err)
	}
	return max, nil
}

// CountChildren returns the number of direct children of contentID.
func (ct *contentsTable) CountChildren(contentID string) (int, error) {
	var n int
	err := ct.backend.db.QueryRow(
		"SELECT COUNT(*) FROM contents WHERE parent_id = ?", contentID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting children of %s: %w", contentID, err)
	}
	return n, nil
}

// CountQuestions returns the number of questions attached to contentID.
func (ct *contentsTable) CountQuestions(contentID string) (int, error) {
	var n int
	err := ct.backend.db.QueryRow(
		"SELECT COUNT(*) FROM questions WHERE content_id = ?", contentID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting questions of %s: %w", contentID, err)
	}
	return n, nil
}

// Save persists a content node. If id is empty, generates a UUID v7 and
// creates the node. If id is provided, updates the existing node (title,
// number, page number, description, type, order, and parent may all
// change; re-parenting is allowed). Returns the actual ID used.
func (ct *contentsTable) Save(id string, c *types.Content) (string, error) {
	if c == nil {
		return "", types.ErrInvalidData
	}
	if c.Title == "" {
		return "", types.ErrInvalidTitle
	}
	if !types.ValidContentType(c.Type) {
		return "", types.ErrInvalidType
	}
	if c.ResourceID == "" {
		return "", types.ErrInvalidData
	}

	now := time.Now().UTC()

	if id == "" {
		c.ContentID = generateUUID()
		c.CreatedAt = now
		id = c.ContentID
	}
	c.UpdatedAt = now

	var exists bool
	err := ct.backend.db.QueryRow(
		"SELECT 1 FROM contents WHERE content_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking content existence: %w", err)
	}

	var pageNumber any
	if c.PageNumber != nil {
		pageNumber = *c.PageNumber
	}

	if exists {
		_, err = ct.backend.db.Exec(
			"UPDATE contents SET resource_id = ?, parent_id = ?, content_type = ?, title = ?, number = ?, page_number = ?, description = ?, sort_order = ?, updated_at = ? WHERE content_id = ?",
			c.ResourceID, nullString(c.ParentID), c.Type, c.Title, nullString(c.Number),
			pageNumber, nullString(c.Description), c.Order,
			c.UpdatedAt.Format(time.RFC3339), id,
		)
	} else {
		_, err = ct.backend.db.Exec(
			"INSERT INTO contents ("+contentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id, c.ResourceID, nullString(c.ParentID), c.Type, c.Title, nullString(c.Number),
			pageNumber, nullString(c.Description), c.Order,
			c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting content: %w", err)
	}

	if err := persistTableJSONL(ct.backend, "contents", "contents.jsonl"); err != nil {
		return "", fmt.Errorf("persisting contents.jsonl: %w", err)
	}

	return id, nil
}

// Delete removes a single content node. The store is the cascade authority
// for attached questions: they are removed in the same transaction. Child
// content nodes are not cascaded here; while any remain, Delete returns
// ErrReferentialIntegrity and the caller is expected to remove the subtree
// children-first.
func (ct *contentsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	var exists bool
	err := ct.backend.db.QueryRow(
		"SELECT 1 FROM contents WHERE content_id = ?", id,
	).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking content existence: %w", err)
	}

	var childCount int
	err = ct.backend.db.QueryRow(
		"SELECT COUNT(*) FROM contents WHERE parent_id = ?", id,
	).Scan(&childCount)
	if err != nil {
		return fmt.Errorf("counting children: %w", err)
	}
	if childCount > 0 {
		return fmt.Errorf("content %s has %d children: %w", id, childCount, types.ErrReferentialIntegrity)
	}

	tx, err := ct.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM questions WHERE content_id = ?", id); err != nil {
		return fmt.Errorf("deleting content questions: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contents WHERE content_id = ?", id); err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing content deletion: %w", err)
	}

	if err := persistTableJSONL(ct.backend, "contents", "contents.jsonl"); err != nil {
		return fmt.Errorf("persisting contents.jsonl: %w", err)
	}
	if err := persistTableJSONL(ct.backend, "questions", "questions.jsonl"); err != nil {
		return fmt.Errorf("persisting questions.jsonl: %w", err)
	}

	return nil
}

// queryContents runs an ordered multi-row content query.
func (ct *contentsTable) queryContents(query string, args ...any) ([]*types.Content, error) {
	rows, err := ct.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching contents: %w", err)
	}
	defer rows.Close()

	results := []*types.Content{}
	for rows.Next() {
		c, err := hydrateContent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating content: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contents: %w", err)
	}
	return results, nil
}

// queryOneContent runs a single-row content query, mapping sql.ErrNoRows to
// ErrNotFound.
func (ct *contentsTable) queryOneContent(query string, args ...any) (*types.Content, error) {
	row := ct.backend.db.QueryRow(query, args...)
	c, err := hydrateContent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("querying content: %w", err)
	}
	return c, nil
}

// hydrateContent converts a SQLite row into a *types.Content. The scan
// argument lets it work for both sql.Row and sql.Rows.
func hydrateContent(scan func(dest ...any) error) (*types.Content, error) {
	var c types.Content
	var parentID, number, description sql.NullString
	var pageNumber sql.NullInt64
	var createdAt, updatedAt string
	if err := scan(
		&c.ContentID, &c.ResourceID, &parentID, &c.Type, &c.Title,
		&number, &pageNumber, &description, &c.Order, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	c.ParentID = parentID.String
	c.Number = number.String
	c.Description = description.String
	if pageNumber.Valid {
		p := int(pageNumber.Int64)
		c.PageNumber = &p
	}
	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}
