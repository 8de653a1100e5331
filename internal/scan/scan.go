// Package scan measures how much space files and directory trees take up.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/dennisklein/size"
)

// Entry is the apparent size of one scanned path. For directories it is the
// sum over all regular files below it; symlinks are not followed.
type Entry struct {
	Path  string
	Size  size.Size
	Files int
	Dir   bool
}

// Scanner sums up file sizes on a filesystem.
type Scanner struct {
	helper *FSHelper
}

// NewScanner creates a scanner for fs (defaults to OsFs if nil).
func NewScanner(fs afero.Fs) *Scanner {
	return &Scanner{helper: NewFSHelper(fs)}
}

// Scan measures each path and returns the entries largest first.
func (s *Scanner) Scan(paths ...string) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))

	for _, path := range paths {
		entry, err := s.scanPath(path)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	sortEntries(entries)

	return entries, nil
}

// Children measures every direct child of dir, largest first.
func (s *Scanner) Children(dir string) ([]Entry, error) {
	if !s.helper.IsDir(dir) {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	infos, err := afero.ReadDir(s.helper.Fs(), dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		paths = append(paths, filepath.Join(dir, info.Name()))
	}

	return s.Scan(paths...)
}

func (s *Scanner) scanPath(path string) (Entry, error) {
	fs := s.helper.Fs()

	info, err := fs.Stat(path)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	entry := Entry{Path: path, Dir: info.IsDir()}

	if !entry.Dir {
		if info.Mode().IsRegular() {
			entry.Size = size.FromBytes(info.Size())
			entry.Files = 1
		}

		return entry, nil
	}

	var total int64

	err = afero.Walk(fs, path, func(_ string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if fi.Mode().IsRegular() {
			total += fi.Size()
			entry.Files++
		}

		return nil
	})
	if err != nil {
		return Entry{}, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	entry.Size = size.FromBytes(total)

	return entry, nil
}

// sortEntries orders by size descending, then by path.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].Size.Compare(entries[j].Size); c != 0 {
			return c > 0
		}

		return entries[i].Path < entries[j].Path
	})
}

// Total adds up the sizes of entries.
func Total(entries []Entry) size.Size {
	sizes := make([]size.Size, len(entries))
	for i, e := range entries {
		sizes[i] = e.Size
	}

	return size.Sum(sizes...)
}

// AtLeast returns the entries whose size is at least minimum.
func AtLeast(entries []Entry, minimum size.Size) []Entry {
	kept := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if !e.Size.Less(minimum) {
			kept = append(kept, e)
		}
	}

	return kept
}
