// This file implements the questions store accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// Compile-time interface check: questionsTable must implement QuestionStore.
var _ types.QuestionStore = (*questionsTable)(nil)

// questionsTable implements the QuestionStore interface. Each operation
// hydrates/dehydrates between SQLite rows and *types.Question structs, and
// persists changes to questions.jsonl atomically.
type questionsTable struct {
	backend *Backend
}

const questionColumns = "question_id, resource_id, content_id, question_number, exercise_number, sort_order, status, question_type, content, created_at, updated_at"

const questionOrdering = " ORDER BY sort_order ASC, question_id ASC"

// FindByID retrieves a question by ID.
func (qt *questionsTable) FindByID(id string) (*types.Question, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := qt.backend.db.QueryRow(
		"SELECT "+questionColumns+" FROM questions WHERE question_id = ?",
		id,
	)
	q, err := hydrateQuestion(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting question %s: %w", id, err)
	}
	return q, nil
}

// FindByContent returns the questions attached to contentID in sibling order.
func (qt *questionsTable) FindByContent(contentID string) ([]*types.Question, error) {
	if contentID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := qt.backend.db.Query(
		"SELECT "+questionColumns+" FROM questions WHERE content_id = ?"+questionOrdering,
		contentID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching questions: %w", err)
	}
	defer rows.Close()

	results := []*types.Question{}
	for rows.Next() {
		q, err := hydrateQuestion(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating question: %w", err)
		}
		results = append(results, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return results, nil
}

// FirstByContent returns the lowest-order question attached to contentID.
// Returns ErrNotFound when the node has no questions.
func (qt *questionsTable) FirstByContent(contentID string) (*types.Question, error) {
	return qt.queryOneQuestion(
		"SELECT "+questionColumns+" FROM questions WHERE content_id = ?"+questionOrdering+" LIMIT 1",
		contentID,
	)
}

// LastByContent returns the highest-order question attached to contentID.
// Returns ErrNotFound when the node has no questions.
func (qt *questionsTable) LastByContent(contentID string) (*types.Question, error) {
	return qt.queryOneQuestion(
		"SELECT "+questionColumns+" FROM questions WHERE content_id = ? ORDER BY sort_order DESC, question_id DESC LIMIT 1",
		contentID,
	)
}

// NextByContent returns the first question under contentID ordered after
// the given position. Returns ErrNotFound when none exists.
func (qt *questionsTable) NextByContent(contentID string, order int) (*types.Question, error) {
	return qt.queryOneQuestion(
		"SELECT "+questionColumns+" FROM questions WHERE content_id = ? AND sort_order > ?"+questionOrdering+" LIMIT 1",
		contentID, order,
	)
}

// PreviousByContent returns the last question under contentID ordered
// before the given position. Returns ErrNotFound when none exists.
func (qt *questionsTable) PreviousByContent(contentID string, order int) (*types.Question, error) {
	return qt.queryOneQuestion(
		"SELECT "+questionColumns+" FROM questions WHERE content_id = ? AND sort_order < ? ORDER BY sort_order DESC, question_id DESC LIMIT 1",
		contentID, order,
	)
}

// MaxOrder returns the highest sibling order among questions attached to
// contentID, or 0 when the node has none.
func (qt *questionsTable) MaxOrder(contentID string) (int, error) {
	if contentID == "" {
		return 0, types.ErrInvalidID
	}
	var max int
	err := qt.backend.db.QueryRow(
		"SELECT COALESCE(MAX(sort_order), 0) FROM questions WHERE content_id = ?",
		contentID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max order for content %s: %w", contentID, err)
	}
	return max, nil
}

// Save persists a question. If id is empty, generates a UUID v7 and creates
// the question as a draft attached to an existing content node; a dangling
// content reference is rejected. If id is provided, updates the existing
// question. Returns the actual ID used.
func (qt *questionsTable) Save(id string, q *types.Question) (string, error) {
	if q == nil {
		return "", types.ErrInvalidData
	}
	if q.ContentID == "" || q.QuestionNumber == "" {
		return "", types.ErrInvalidData
	}
	if !types.ValidQuestionType(q.Type) {
		return "", types.ErrInvalidType
	}

	now := time.Now().UTC()

	isCreate := id == ""
	if isCreate {
		// The owning content node must exist; questions never dangle.
		var exists bool
		err := qt.backend.db.QueryRow(
			"SELECT 1 FROM contents WHERE content_id = ?", q.ContentID,
		).Scan(&exists)
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("content %s: %w", q.ContentID, types.ErrNotFound)
		}
		if err != nil {
			return "", fmt.Errorf("checking owning content: %w", err)
		}

		q.QuestionID = generateUUID()
		if q.Status == "" {
			q.Status = types.QuestionStatusDraft
		}
		q.CreatedAt = now
		id = q.QuestionID
	}
	q.UpdatedAt = now

	if q.Content == nil {
		q.Content = json.RawMessage("{}")
	}

	var exists bool
	err := qt.backend.db.QueryRow(
		"SELECT 1 FROM questions WHERE question_id = ?", id,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking question existence: %w", err)
	}

	if exists {
		_, err = qt.backend.db.Exec(
			"UPDATE questions SET resource_id = ?, content_id = ?, question_number = ?, exercise_number = ?, sort_order = ?, status = ?, question_type = ?, content = ?, updated_at = ? WHERE question_id = ?",
			q.ResourceID, q.ContentID, q.QuestionNumber, nullString(q.ExerciseNumber),
			q.Order, q.Status, q.Type, string(q.Content),
			q.UpdatedAt.Format(time.RFC3339), id,
		)
	} else {
		_, err = qt.backend.db.Exec(
			"INSERT INTO questions ("+questionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			id, q.ResourceID, q.ContentID, q.QuestionNumber, nullString(q.ExerciseNumber),
			q.Order, q.Status, q.Type, string(q.Content),
			q.CreatedAt.Format(time.RFC3339), q.UpdatedAt.Format(time.RFC3339),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting question: %w", err)
	}

	if err := persistTableJSONL(qt.backend, "questions", "questions.jsonl"); err != nil {
		return "", fmt.Errorf("persisting questions.jsonl: %w", err)
	}

	return id, nil
}

// Delete removes a question by ID.
func (qt *questionsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := qt.backend.db.Exec("DELETE FROM questions WHERE question_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	if err := persistTableJSONL(qt.backend, "questions", "questions.jsonl"); err != nil {
		return fmt.Errorf("persisting questions.jsonl: %w", err)
	}

	return nil
}

// queryOneQuestion runs a single-row question query, mapping sql.ErrNoRows
// to ErrNotFound.
func (qt *questionsTable) queryOneQuestion(query string, args ...any) (*types.Question, error) {
	row := qt.backend.db.QueryRow(query, args...)
	q, err := hydrateQuestion(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("querying question: %w", err)
	}
	return q, nil
}

// hydrateQuestion converts a SQLite row into a *types.Question. The scan
// argument lets it work for both sql.Row and sql.Rows.
func hydrateQuestion(scan func(dest ...any) error) (*types.Question, error) {
	var q types.Question
	var exerciseNumber sql.NullString
	var content, createdAt, updatedAt string
	if err := scan(
		&q.QuestionID, &q.ResourceID, &q.ContentID, &q.QuestionNumber,
		&exerciseNumber, &q.Order, &q.Status, &q.Type, &content,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	q.ExerciseNumber = exerciseNumber.String
	q.Content = json.RawMessage(content)
	var err error
	q.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	q.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &q, nil
}
