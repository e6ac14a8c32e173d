// Package sqlite implements the SQLite storage backend for the solutions
// content catalog. SQLite is the query engine; JSONL files in the data
// directory are the source of truth, loaded at Attach and rewritten after
// each successful write.
package sqlite

// Schema DDL for all tables.
const (
	createResources = `CREATE TABLE resources (
    resource_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    resource_type TEXT NOT NULL,
    subject TEXT,
    grade TEXT,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createContents = `CREATE TABLE contents (
    content_id TEXT PRIMARY KEY,
    resource_id TEXT NOT NULL,
    parent_id TEXT,
    content_type TEXT NOT NULL,
    title TEXT NOT NULL,
    number TEXT,
    page_number INTEGER,
    description TEXT,
    sort_order INTEGER NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (resource_id) REFERENCES resources(resource_id)
);`

	createQuestions = `CREATE TABLE questions (
    question_id TEXT PRIMARY KEY,
    resource_id TEXT NOT NULL,
    content_id TEXT NOT NULL,
    question_number TEXT NOT NULL,
    exercise_number TEXT,
    sort_order INTEGER NOT NULL,
    status TEXT NOT NULL,
    question_type TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (content_id) REFERENCES contents(content_id)
);`
)

// Index DDL for the ordered sibling queries.
const (
	idxContentsParent    = `CREATE INDEX idx_contents_parent ON contents(parent_id, sort_order);`
	idxContentsResource  = `CREATE INDEX idx_contents_resource ON contents(resource_id, sort_order);`
	idxQuestionsContent  = `CREATE INDEX idx_questions_content ON questions(content_id, sort_order);`
	idxQuestionsResource = `CREATE INDEX idx_questions_resource ON questions(resource_id);`
	idxQuestionsStatus   = `CREATE INDEX idx_questions_status ON questions(status);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createResources,
	createContents,
	createQuestions,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxContentsParent,
	idxContentsResource,
	idxQuestionsContent,
	idxQuestionsResource,
	idxQuestionsStatus,
}
