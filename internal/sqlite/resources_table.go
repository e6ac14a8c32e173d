// This file implements the resources store accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Compile-time interface check: resourcesTable must implement ResourceStore.
var _ types.ResourceStore = (*resourcesTable)(nil)

// resourcesTable implements the ResourceStore interface. Each operation
// hydrates/dehydrates between SQLite rows and *types.Resource structs, and
// persists changes to resources.jsonl atomically.
type resourcesTable struct {
	backend *Backend
}

const resourceColumns = "resource_id, title, resource_type, subject, grade, status, created_at, updated_at"

// FindByID retrieves a resource by ID.
func (rt *resourcesTable) FindByID(id string) (*types.Resource, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := rt.backend.db.QueryRow(
		"SELECT "+resourceColumns+" FROM resources WHERE resource_id = ?",
		id,
	)
	r, err := hydrateResource(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting resource %s: %w", id, err)
	}
	return r, nil
}

// FindAll returns every resource, newest first.
func (rt *resourcesTable) FindAll() ([]*types.Resource, error) {
	rows, err := rt.backend.db.Query(
		"SELECT " + resourceColumns + " FROM resources ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("fetching resources: %w", err)
	}
	defer rows.Close()

	results := []*types.Resource{}
	for rows.Next() {
		r, err := hydrateResource(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating resource: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return results, nil
}

// Save persists a resource. If id is empty, generates a UUID v7 and creates
// the resource with defaults. If id is provided, updates the existing
// resource. Returns the actual ID used.
func (rt *resourcesTable) Save(id string, r *types.Resource) (string, error) {
	if r == nil {
		return "", types.ErrInvalidData
	}
	if r.Title == "" {
		return "", types.ErrInvalidTitle
	}
	if !types.ValidResourceType(r.Type) {
		return "", types.ErrInvalidType
	}

	now := time.Now().UTC()

	if id == "" {
		r.ResourceID = generateUUID()
		if r.Status == "" {
			r.Status = types.ResourceStatusDraft
		}
		r.CreatedAt = now
		id = r.ResourceID
	}
	r.UpdatedAt = now

	var exists bool
	err := rt.backend.db.QueryRow(
		"SELECT 1 FROM resources WHERE resource_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking resource existence: %w", err)
	}

	if exists {
		_, err = rt.backend.db.Exec(
			"UPDATE resources SET title = ?, resource_type = ?, subject = ?, grade = ?, status = ?, updated_at = ? WHERE resource_id = ?",
			r.Title, r.Type, nullString(r.Subject), nullString(r.Grade), r.Status,
			r.UpdatedAt.Format(time.RFC3339), id,
		)
	} else {
		_, err = rt.backend.db.Exec(
			"INSERT INTO resources ("+resourceColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			id, r.Title, r.Type, nullString(r.Subject), nullString(r.Grade), r.Status,
			r.CreatedAt.Format(time.RFC3339), r.UpdatedAt.Format(time.RFC3339),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting resource: %w", err)
	}

	if err := persistTableJSONL(rt.backend, "resources", "resources.jsonl"); err != nil {
		return "", fmt.Errorf("persisting resources.jsonl: %w", err)
	}

	return id, nil
}

// Delete removes a resource. The resource's content tree must already be
// gone: while content nodes still reference the resource, Delete returns
// ErrReferentialIntegrity so the caller cascades through the lifecycle
// manager first.
func (rt *resourcesTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	var exists bool
	err := rt.backend.db.QueryRow(
		"SELECT 1 FROM resources WHERE resource_id = ?", id,
	).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking resource existence: %w", err)
	}

	var contentCount int
	err = rt.backend.db.QueryRow(
		"SELECT COUNT(*) FROM contents WHERE resource_id = ?", id,
	).Scan(&contentCount)
	if err != nil {
		return fmt.Errorf("counting resource contents: %w", err)
	}
	if contentCount > 0 {
		return fmt.Errorf("resource %s has %d content nodes: %w", id, contentCount, types.ErrReferentialIntegrity)
	}

	if _, err := rt.backend.db.Exec("DELETE FROM resources WHERE resource_id = ?", id); err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}

	if err := persistTableJSONL(rt.backend, "resources", "resources.jsonl"); err != nil {
		return fmt.Errorf("persisting resources.jsonl: %w", err)
	}

	return nil
}

// hydrateResource converts a SQLite row into a *types.Resource. The scan
// argument lets it work for both sql.Row and sql.Rows.
func hydrateResource(scan func(dest ...any) error) (*types.Resource, error) {
	var r types.Resource
	var subject, grade sql.NullString
	var createdAt, updatedAt string
	if err := scan(&r.ResourceID, &r.Title, &r.Type, &subject, &grade, &r.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.Subject = subject.String
	r.Grade = grade.String
	var err error
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	r.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &r, nil
}
