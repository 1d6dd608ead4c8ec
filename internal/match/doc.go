// Package match ranks near-miss spellings, so that diagnostics can suggest
// the name a directive most likely meant.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best candidate for a misspelled name
package match
