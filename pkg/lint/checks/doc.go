// Package checks provides the built-in prose checks for mdprose.
//
// # Checks
//
// Checks run in the order listed, each making its own pass over the document:
//
//   - RP001: bad-words - Banned words and two-word phrases, plus miscapitalized names outside code blocks
//
//   - RP002: line-length - Lines longer than the limit once links are reduced to their text
//
//   - RP003: bad-phrases - Banned phrases anywhere in a line
//
//   - RP004: contractions - Phrases that should be written as a contraction
//
//   - RP005: code-formatter - Opening fences without a valid formatter tag, or with a malformed linenums attribute
//
//   - RP006: ending-colon - Code blocks must follow a blank line and a line ending in a colon
//
//   - RP007: dangling-section - Sections must not end on a code block or alert
//
//   - RP008: bad-link-anchor - Links whose text is a generic term such as "here"
//
// # Fence state
//
// Every check keeps its own lint.FenceState. Checks that care read it after
// the current line has been observed, so an opening fence counts as inside
// and a closing fence counts as outside.
package checks
