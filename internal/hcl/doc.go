// Package hcl provides the HCL implementation of the config.Loader
// interface. It discovers .hcl files, parses and decodes them against the
// build schema with an evaluation context (build_dir, project_dir and a few
// helper functions), and translates the result into the format-agnostic
// config.Model.
package hcl
