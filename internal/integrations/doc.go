// Package integrations links the instruction files that AI coding assistants
// read (CLAUDE.md, copilot-instructions.md, etc.) to a project's AGENTS.md,
// so every assistant follows the same merged document.
package integrations
