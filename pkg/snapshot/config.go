// File: pkg/snapshot/config.go
package snapshot

import "io"

// StructureStyle selects how the structure listing at the top of the
// document is rendered.
type StructureStyle string

const (
	// StructureShallow lists only the immediate children of the root with
	// tree-drawing connectors. This is the default.
	StructureShallow StructureStyle = "shallow"
	// StructureFull lists every retained file and directory as a flat,
	// sorted set of /-prefixed relative paths.
	StructureFull StructureStyle = "full"
)

// DecodePolicy controls how invalid UTF-8 sequences in file content are
// handled during formatting.
type DecodePolicy string

const (
	// DecodeDrop removes invalid byte sequences from the output.
	DecodeDrop DecodePolicy = "drop"
	// DecodeReplace substitutes invalid byte sequences with U+FFFD.
	DecodeReplace DecodePolicy = "replace"
)

// Options holds the configuration for one snapshot run.
type Options struct {
	Root        string         // Directory to snapshot (must exist and be readable)
	IgnoreDirs  []string       // Directory names pruned from traversal
	IgnoreFiles []string       // File names excluded from output
	IgnoreExts  []string       // File extensions excluded from output (leading dot optional)
	Structure   StructureStyle // Structure listing style
	Decode      DecodePolicy   // Invalid-UTF-8 handling for file content
	Output      string         // Destination file path; empty means stdout or clipboard
	Clipboard   bool           // Copy the document to the clipboard instead of printing
	Stdout      io.Writer      // Destination for the default print mode; nil means os.Stdout
}

// Default ignore sets. Callers may replace them entirely via flags or
// extend them via the config file; the walk itself carries no defaults.
var (
	DefaultIgnoreDirs = []string{
		".git", "__pycache__", ".venv", ".vscode", ".idea", "node_modules",
		"build", "dist", "wheels", ".egg-info",
	}
	DefaultIgnoreFiles = []string{
		".DS_Store", "Thumbs.db",
	}
	DefaultIgnoreExts = []string{
		".pyc", ".pyo", ".pyd", ".so", ".o", ".a", ".dylib", ".lock",
	}
)

// FileEntry identifies one file retained by the walk.
type FileEntry struct {
	Path    string // Absolute path, used for content access
	RelPath string // Path relative to the walk root, used for display
}
