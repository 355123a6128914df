// Package platform provides cross-platform file linking. On Unix systems it
// uses native symlinks. On Windows it falls back to copying the file when
// developer mode symlinks are unavailable.
package platform
