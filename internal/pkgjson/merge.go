package pkgjson

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iancoleman/orderedmap"
)

// FileName is the package descriptor file name.
const FileName = "package.json"

// sortedFields are re-sorted by key after every merge.
var sortedFields = []string{"scripts", "dependencies", "devDependencies"}

// Merge deep-merges extra into a copy of target and returns the result.
// Scalars from extra win, nested objects merge key-wise and arrays are
// concatenated. The result keeps target's "name" when it is non-empty and
// falls back to extra's otherwise.
func Merge(target, extra *Object) *Object {
	merged := target.Clone()
	mergeInto(merged.m, extra.m)

	if name, ok := target.GetString("name"); ok && name != "" {
		merged.Set("name", name)
	} else if name, ok := extra.Get("name"); ok {
		merged.Set("name", cloneValue(name))
	} else {
		merged.Delete("name")
	}

	for _, field := range sortedFields {
		if obj, ok := merged.GetObject(field); ok {
			obj.SortKeys()
		}
	}
	return merged
}

func mergeInto(dst, src *orderedmap.OrderedMap) {
	for _, k := range src.Keys() {
		sv, _ := src.Get(k)
		dv, exists := dst.Get(k)
		if !exists {
			dst.Set(k, cloneValue(sv))
			continue
		}
		switch s := sv.(type) {
		case *orderedmap.OrderedMap:
			if d, ok := dv.(*orderedmap.OrderedMap); ok {
				mergeInto(d, s)
				continue
			}
		case []any:
			if d, ok := dv.([]any); ok {
				joined := make([]any, 0, len(d)+len(s))
				joined = append(joined, d...)
				for _, item := range s {
					joined = append(joined, cloneValue(item))
				}
				dst.Set(k, joined)
				continue
			}
		}
		dst.Set(k, cloneValue(sv))
	}
}

// MergeFile merges the descriptor bytes extra into the descriptor at
// targetPath and rewrites it. A missing target is a no-op; callers that need
// the merge to happen check for the file first.
func MergeFile(targetPath string, extra []byte) error {
	info, err := os.Stat(targetPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	data, err := os.ReadFile(targetPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", targetPath, err)
	}
	target, err := Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", targetPath, err)
	}
	extraObj, err := Parse(extra)
	if err != nil {
		return fmt.Errorf("parsing descriptor merged into %s: %w", targetPath, err)
	}

	out, err := Merge(target, extraObj).Marshal()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", targetPath, err)
	}
	if err := os.WriteFile(targetPath, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", targetPath, err)
	}
	return nil
}
