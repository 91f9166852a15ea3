// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the resolution pipeline (load, resolve
// variants, resolve dependencies, lint, report), decoupled from any specific
// entrypoint like a CLI.
package app
