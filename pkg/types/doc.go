// Package types defines the entity types, store interfaces, and standard
// errors for the solutions content catalog: resources, their content
// hierarchy (chapters, sections, pages, exercises), and the questions
// attached to content nodes.
package types
