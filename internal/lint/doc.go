// Package lint is the policy checker. It holds a registry of rules, each of
// which inspects the project, a resolved variant or a resolved dependency
// set, and turns the configured LintPolicy into a sorted Report.
//
// The effective state of a rule is decided in this order: a disabled rule is
// always off; an explicit severity turns the rule on at that severity; an
// enabled rule runs at its default severity; anything else keeps the rule's
// built-in default.
package lint
