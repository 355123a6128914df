// Package pkgjson reads, merges and rewrites package.json descriptors.
//
// Descriptors are decoded into an insertion-ordered Object so that rewriting a
// file keeps its key layout; only "scripts", "dependencies" and
// "devDependencies" are re-sorted after a merge. Output always uses two-space
// indentation and ends with a single newline.
package pkgjson
