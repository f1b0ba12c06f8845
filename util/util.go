// Package util holds small helpers shared across packages.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/vidkit/vidkit/filesystem"
	"golang.org/x/exp/constraints"
)

// InvalidFilenameChars lists the characters that may not appear in a file name.
// It is the union of the Windows and POSIX sets so a name built on one platform
// stays valid on every other.
var InvalidFilenameChars = func() []rune {
	chars := []rune{'"', '<', '>', '|', ':', '*', '?', '\\', '/'}
	for c := rune(0); c < 0x20; c++ {
		chars = append(chars, c)
	}
	return chars
}()

var invalidFilenameSet = lo.SliceToMap(InvalidFilenameChars, func(c rune) (rune, struct{}) {
	return c, struct{}{}
})

// SanitizeFilename replaces every character of InvalidFilenameChars in filename with an underscore.
// Nothing else is touched, so sanitizing twice is the same as sanitizing once.
func SanitizeFilename(filename string) string {
	return strings.Map(func(r rune) rune {
		if _, bad := invalidFilenameSet[r]; bad {
			return '_'
		}
		return r
	}, filename)
}

// FileStem extracts the base filename from a path, excluding all file extensions.
func FileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// PrintErasable prints an ephemeral message to the terminal and returns a closure to clear it.
func PrintErasable(msg string) (eraser func()) {
	fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", len(msg)))
	}
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the maximum value among arguments.
func Max[T constraints.Ordered](items ...T) (max T) {
	if len(items) == 0 {
		return
	}
	max = items[0]
	for _, item := range items[1:] {
		if item > max {
			max = item
		}
	}
	return
}

// Min returns the minimum value among arguments.
func Min[T constraints.Ordered](items ...T) (min T) {
	if len(items) == 0 {
		return
	}
	min = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
	}
	return
}

// Delete removes a file or a whole directory. A missing path is not an error.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
