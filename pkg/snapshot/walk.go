// File: pkg/snapshot/walk.go
package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Walk traverses the tree rooted at root top-down, prunes ignored
// directories, filters ignored files, and returns the structure listing
// plus the surviving files sorted by full path. Errors on individual
// entries are logged and skipped; only the traversal primitive's own
// failure is returned.
func Walk(root string, rules *RuleSet, style StructureStyle, logger *zap.Logger) ([]string, []FileEntry, error) {
	var files []FileEntry
	var retainedPaths []string // relative paths of kept dirs and files, for the full listing

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}

		if d.IsDir() {
			if rules.IgnoresDir(d.Name()) {
				logger.Debug("Pruning ignored directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			retainedPaths = append(retainedPaths, filepath.ToSlash(relPath))
			return nil
		}

		if rules.IgnoresFile(d.Name()) {
			logger.Debug("Skipping ignored file", zap.String("file", path))
			return nil
		}

		files = append(files, FileEntry{Path: path, RelPath: filepath.ToSlash(relPath)})
		retainedPaths = append(retainedPaths, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		logger.Error("Directory traversal failed", zap.String("root", root), zap.Error(err))
		return nil, nil, err
	}

	// Sort by full path for deterministic output across runs.
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	var structure []string
	switch style {
	case StructureFull:
		structure = fullListing(retainedPaths)
	default:
		structure = shallowListing(root, rules, logger)
	}

	logger.Debug("Completed walk",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("structureLines", len(structure)))
	return structure, files, nil
}

// shallowListing renders the immediate children of root with tree-drawing
// connectors, a trailing slash on directories, and ignore rules applied.
// A failure to list the root degrades to an empty listing.
func shallowListing(root string, rules *RuleSet, logger *zap.Logger) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("Could not list root directory for structure listing", zap.String("root", root), zap.Error(err))
		return nil
	}

	type item struct {
		name  string
		isDir bool
	}
	var items []item
	for _, entry := range entries {
		// Stat follows symlinks, so a link to a directory lists as one.
		info, statErr := os.Stat(filepath.Join(root, entry.Name()))
		if statErr != nil {
			logger.Warn("Could not stat root entry", zap.String("entry", entry.Name()), zap.Error(statErr))
			continue
		}
		switch {
		case info.IsDir():
			if rules.IgnoresDir(entry.Name()) {
				continue
			}
			items = append(items, item{name: entry.Name(), isDir: true})
		case info.Mode().IsRegular():
			if rules.IgnoresFile(entry.Name()) {
				continue
			}
			items = append(items, item{name: entry.Name()})
		}
	}

	lines := make([]string, 0, len(items))
	for i, it := range items {
		connector := "├── "
		if i == len(items)-1 {
			connector = "└── "
		}
		suffix := ""
		if it.isDir {
			suffix = "/"
		}
		lines = append(lines, connector+it.name+suffix)
	}
	return lines
}

// fullListing renders every retained path as a flat, lexicographically
// sorted list of /-prefixed forward-slash paths.
func fullListing(retained []string) []string {
	sorted := append([]string(nil), retained...)
	sort.Strings(sorted)
	lines := make([]string, 0, len(sorted))
	for _, p := range sorted {
		lines = append(lines, "/"+p)
	}
	return lines
}
