// Package compose merges the AGENTS.md fragments contributed by each overlay
// into one guidance document.
//
// A fragment is split into sections at level-1 and level-2 headings; deeper
// headings stay in the body of the section that contains them. Sections with
// the same level and case-insensitive title are merged across fragments in
// the order they were first seen, and a body that is already present under a
// section is not repeated.
package compose
