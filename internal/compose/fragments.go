package compose

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Location is a directory that may hold a fragment, addressed inside fsys.
type Location struct {
	FS  fs.FS
	Dir string
}

// ReadFragments reads the file named name from each location, in order.
// Locations without the file are skipped. It returns the fragments found.
func ReadFragments(locations []Location, name string) ([]string, error) {
	var fragments []string
	for _, loc := range locations {
		p := path.Join(loc.Dir, name)
		data, err := fs.ReadFile(loc.FS, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading fragment %s: %w", p, err)
		}
		fragments = append(fragments, string(data))
	}
	return fragments, nil
}
