package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/stackcraft-dev/stackcraft/internal/pkgjson"
)

// alwaysSkipped are never copied, whatever the caller asks for.
var alwaysSkipped = map[string]bool{
	"node_modules": true,
	"dist":         true,
}

// renamedFiles maps names templates use for files that would otherwise be
// ignored by publishing tools to the name written in the project.
var renamedFiles = map[string]string{
	"gitignore": ".gitignore",
}

// textAssetExts are the extensions placeholders are substituted in.
var textAssetExts = map[string]bool{
	".md":  true,
	".mdx": true,
}

// Options controls how one overlay is copied.
type Options struct {
	// MergePackageJSON merges an overlay's package.json into one already
	// present in the destination instead of overwriting it.
	MergePackageJSON bool

	// Skip lists extra entry names to leave out, in addition to node_modules
	// and dist.
	Skip []string

	// Version is applied to every package.json written.
	Version pkgjson.Version

	// PackageName, when set, replaces the "name" of every package.json written.
	PackageName string

	// Placeholders fills {{ key }} tokens in Markdown files.
	Placeholders map[string]string
}

// Result lists the files written by CopyTree, relative to the destination,
// in the order they were written.
type Result struct {
	Files []string
}

// CopyTree copies the directory from inside src onto the directory to,
// creating to if needed. A missing from is an error. A failure part way
// leaves the files already written in place.
func CopyTree(src fs.FS, from, to string, opts Options) (*Result, error) {
	result := &Result{}
	skip := skipSet(opts.Skip)
	if err := copyDir(src, from, to, "", skip, opts, result); err != nil {
		return result, err
	}
	return result, nil
}

func skipSet(extra []string) map[string]bool {
	set := make(map[string]bool, len(alwaysSkipped)+len(extra))
	for name := range alwaysSkipped {
		set[name] = true
	}
	for _, name := range extra {
		set[name] = true
	}
	return set
}

// targetName returns the name an overlay entry is written under.
func targetName(name string) string {
	if renamed, ok := renamedFiles[name]; ok {
		return renamed
	}
	return name
}

func copyDir(src fs.FS, from, to, rel string, skip map[string]bool, opts Options, result *Result) error {
	entries, err := fs.ReadDir(src, from)
	if err != nil {
		return fmt.Errorf("reading overlay directory %s: %w", from, err)
	}

	if err := os.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", to, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if skip[name] {
			continue
		}

		srcPath := path.Join(from, name)
		dstName := targetName(name)
		dstPath := filepath.Join(to, dstName)
		relPath := path.Join(rel, dstName)

		switch {
		case entry.IsDir():
			if err := copyDir(src, srcPath, dstPath, relPath, skip, opts, result); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := copyEntry(src, srcPath, dstPath, name, opts); err != nil {
				return err
			}
			result.Files = append(result.Files, relPath)
		}
		// Symlinks and other special files are skipped.
	}

	return nil
}

func copyEntry(src fs.FS, srcPath, dstPath, name string, opts Options) error {
	data, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}
	perm := filePerm(src, srcPath)

	if name == pkgjson.FileName {
		return copyDescriptor(data, dstPath, perm, opts)
	}

	if len(opts.Placeholders) > 0 && textAssetExts[path.Ext(name)] {
		data = []byte(ReplacePlaceholders(string(data), opts.Placeholders))
	}
	if err := os.WriteFile(dstPath, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return nil
}

func copyDescriptor(data []byte, dstPath string, perm fs.FileMode, opts Options) error {
	if opts.MergePackageJSON && fileExists(dstPath) {
		if err := pkgjson.MergeFile(dstPath, data); err != nil {
			return err
		}
	} else if err := os.WriteFile(dstPath, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return pkgjson.ApplyFile(dstPath, opts.Version, opts.PackageName)
}

// filePerm keeps the overlay file's permission bits and makes the copy
// writable by its owner, since embedded files are read-only.
func filePerm(src fs.FS, p string) fs.FileMode {
	info, err := fs.Stat(src, p)
	if err != nil || info.Mode().Perm()&0444 == 0 {
		return 0644
	}
	return info.Mode().Perm() | 0200
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
