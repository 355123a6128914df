package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// LinkFile creates link pointing at target. A relative target is resolved
// from the directory holding link, as with os.Symlink. Missing parent
// directories of link are created.
//
// On Windows without symlink support the target is copied to link instead,
// and copied is true.
func LinkFile(target, link string) (copied bool, err error) {
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(link), err)
	}

	err = os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return false, err
	}

	if err := copyFile(resolveTarget(target, link), link); err != nil {
		return false, fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}
	return true, nil
}

func resolveTarget(target, link string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(link), target)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
