// Package cli defines the Cobra command tree for the stackcraft CLI. The root
// command runs the create flow; each other file registers one subcommand.
// Commands resolve flags, configuration and prompts into a create.Request and
// leave composition to internal/create.
package cli
