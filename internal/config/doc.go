// Package config defines the format-agnostic build configuration model
// (project, plugins, variants, dependencies, lint policy), the Loader
// interface that concrete formats implement, and the error taxonomy shared
// by every stage of the pipeline.
//
// The `config.Model` is the single source of truth for the `variant`,
// `depgraph` and `lint` packages. Concrete loaders for HCL and YAML live in
// separate packages.
package config
