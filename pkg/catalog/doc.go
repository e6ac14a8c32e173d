// Package catalog implements the content-tree logic of the solutions
// catalog on top of a types.Store: ordered child queries, breadcrumb
// resolution, recursive subtree deletion, reading-order navigation across
// hierarchy levels, and sibling order allocation.
//
// The package holds no state of its own; every operation is a pure
// function of the store's tree at call time. Read operations are safe to
// run concurrently. Multi-call write sequences (allocate order then
// insert, delete children then parent) are not internally atomic; the
// store or an outer transaction boundary is responsible for that.
package catalog
