// Package diagnostic provides structured errors and warnings reported while
// analyzing annotated packages.
//
// Key capabilities:
//   - Misplaced or malformed directives
//   - Variants that match no enum, or several
//   - Fields whose types have no constant representation
package diagnostic
