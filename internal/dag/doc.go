// Package dag provides a small directed acyclic graph keyed by string IDs.
// It backs variant inheritance: every variant is a node and every `init_with`
// relation is an edge from the parent to the child. The graph keeps
// insertion order so that traversals, and therefore error messages, are
// deterministic.
package dag
