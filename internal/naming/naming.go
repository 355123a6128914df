// Package naming derives the target directory and npm package name from the
// project path a user typed.
package naming

import (
	"path"
	"strings"
)

// Target is the result of normalizing a raw project path.
type Target struct {
	Dir         string // directory to scaffold into, relative or absolute
	PackageName string // value written to package.json "name"
}

// Normalize trims whitespace and trailing slashes from raw. A scoped name
// ("@scope/name") is used verbatim as both directory and package name;
// anything else uses its last path segment as the package name.
//
// Input that is empty once trimmed, such as "///", yields a zero Target.
func Normalize(raw string) Target {
	s := strings.TrimRight(strings.TrimSpace(raw), "/")
	if s == "" {
		return Target{}
	}

	if strings.HasPrefix(s, "@") {
		return Target{Dir: s, PackageName: s}
	}
	return Target{Dir: s, PackageName: path.Base(s)}
}
