// Package registry locates the overlays the create flow composes. A catalog
// is a directory of "template-<name>" overlays, either the set embedded in
// the binary or one on disk: "template-common" is applied to every project,
// the built-in tool overlays ("template-eslint", "template-prettier",
// "template-biome") are applied on request, and every other overlay is a
// selectable template.
package registry
