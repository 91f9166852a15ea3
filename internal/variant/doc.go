// Package variant resolves build variants through their `init_with`
// inheritance chain. Variants are held as nodes of an explicit DAG and
// resolution walks parent links with a visited set, so a cyclic chain is
// reported instead of looping.
package variant
