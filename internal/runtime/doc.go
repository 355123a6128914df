// Package runtime runs external tool commands inside a new project. It
// detects the package manager that launched the process and rewrites
// "npm create" commands into that manager's equivalent before running them
// with the parent's standard streams.
package runtime
