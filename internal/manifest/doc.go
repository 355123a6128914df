// Package manifest handles parsing and validation of tools files: YAML
// documents that declare external tools for the create flow. Files are
// validated against the JSON Schema embedded from schema/tools.schema.json
// before they are decoded.
package manifest
