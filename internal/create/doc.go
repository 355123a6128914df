// Package create composes a new project. It layers the common overlay, the
// template overlay and the selected tool overlays onto the destination,
// runs external tools, and synthesizes the project's AGENTS.md from the
// fragments each layer contributes.
//
// A run is sequential: it blocks on the override confirmation and on each
// external tool command. Nothing is rolled back on failure.
package create
