// Package scaffold copies overlay directory trees onto a project directory.
// It powers every layer of the create flow: renaming dotfiles stored under
// visible names, skipping dependency and build output directories, merging
// package.json descriptors and filling {{ key }} placeholders in Markdown.
package scaffold
