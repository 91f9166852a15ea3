// Package depgraph resolves declared dependency coordinates into a flat,
// de-duplicated set per classpath. It follows known artifact metadata
// transitively, groups every requested version by group:artifact, honours
// constraint pins and otherwise picks the highest version, refusing to
// choose between different major versions.
package depgraph
