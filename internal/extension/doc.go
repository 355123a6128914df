// Package extension defines externally supplied tools: add-ons that are not
// shipped as built-in overlays. A tool may carry a programmatic action, a
// shell command run in the new project, or both. Tools are declared in Go
// or loaded from a tools file.
package extension
