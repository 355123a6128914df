package pkgjson

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// WorkspaceSentinel is the dependency range templates use for packages whose
// version is only known when the project is created.
const WorkspaceSentinel = "workspace:*"

// DirNameSentinel asks ApplyFile to name the package after its directory.
const DirNameSentinel = "."

var prereleaseMarkers = []string{"alpha", "beta", "rc", "canary", "nightly"}

// Version is the version directive applied to a copied descriptor. Range
// replaces every WorkspaceSentinel occurrence; Pins overwrite dependencies
// the descriptor already declares.
type Version struct {
	Range string
	Pins  map[string]string
}

// IsZero reports whether v carries no directive.
func (v Version) IsZero() bool {
	return v.Range == "" && len(v.Pins) == 0
}

// IsStable reports whether version carries none of the pre-release channel
// markers.
func IsStable(version string) bool {
	for _, marker := range prereleaseMarkers {
		if strings.Contains(version, marker) {
			return false
		}
	}
	return true
}

// ResolveVersion returns the dependency range written for version: a caret
// range for stable versions, the exact version otherwise.
func ResolveVersion(version string) string {
	if IsStable(version) {
		return "^" + version
	}
	return version
}

// CheckVersion returns an error when version is not a semantic version.
// Apply does not require it; the create flow uses it to warn early.
func CheckVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return fmt.Errorf("version %q is not a semantic version: %w", version, err)
	}
	return nil
}

// Apply rewrites descriptor data with the version directive and package name.
//
// The Range substitution is a textual pass over data before it is decoded,
// since the sentinel may sit in any dependency field. A non-empty name other
// than DirNameSentinel replaces "name" unconditionally.
func Apply(data []byte, v Version, name string) ([]byte, error) {
	text := string(data)
	if v.Range != "" {
		text = strings.ReplaceAll(text, WorkspaceSentinel, ResolveVersion(v.Range))
	}

	obj, err := Parse([]byte(text))
	if err != nil {
		return nil, err
	}

	if len(v.Pins) > 0 {
		names := make([]string, 0, len(v.Pins))
		for dep := range v.Pins {
			names = append(names, dep)
		}
		sort.Strings(names)

		for _, field := range []string{"dependencies", "devDependencies"} {
			deps, ok := obj.GetObject(field)
			if !ok {
				continue
			}
			for _, dep := range names {
				if deps.Has(dep) {
					deps.Set(dep, v.Pins[dep])
				}
			}
		}
	}

	if name != "" && name != DirNameSentinel {
		obj.Set("name", name)
	}

	return obj.Marshal()
}

// ApplyFile applies the version directive and name to the descriptor at path
// in place. A name of DirNameSentinel resolves to the base name of the
// directory holding the descriptor.
func ApplyFile(path string, v Version, name string) error {
	if name == DirNameSentinel {
		name = ""
		if abs, err := filepath.Abs(filepath.Dir(path)); err == nil {
			if base := filepath.Base(abs); base != string(filepath.Separator) && base != "." {
				name = base
			}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := Apply(data, v, name)
	if err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
