// Package report renders a lint.Report as HTML, XML, SARIF 2.1.0 and plain
// text, writes each enabled format to its configured path, and prints a
// short styled summary for the terminal.
package report
