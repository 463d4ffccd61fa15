// File: pkg/snapshot/execute.go
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ClipboardWriter copies textual data to the system clipboard. The
// concrete implementation lives outside this package so the core stays
// free of platform clipboard dependencies.
type ClipboardWriter interface {
	Copy(text string) error
}

// Execute runs one snapshot: it validates the root, walks the tree,
// renders the document, and dispatches it to the selected destination.
// Setup and write failures are fatal; per-file problems were already
// degraded to placeholders during rendering.
func Execute(opts Options, clip ClipboardWriter, logger *zap.Logger) error {
	rootPath, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root path %q: %w", opts.Root, err)
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("root directory %q is not accessible: %w", rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %q is not a directory", rootPath)
	}

	structure := opts.Structure
	if structure == "" {
		structure = StructureShallow
	}
	decode := opts.Decode
	if decode == "" {
		decode = DecodeDrop
	}

	logger.Info("Processing directory", zap.String("root", rootPath))

	rules := NewRuleSet(opts.IgnoreDirs, opts.IgnoreFiles, opts.IgnoreExts)
	structureLines, files, err := Walk(rootPath, rules, structure, logger)
	if err != nil {
		return fmt.Errorf("failed to walk %q: %w", rootPath, err)
	}

	document := Render(structureLines, files, rootPath, decode, logger)
	if document == "" {
		logger.Warn("No content generated; all files may have been ignored or the directory is empty")
		return nil
	}

	switch {
	case opts.Output != "":
		return writeDocumentFile(opts.Output, document, logger)
	case opts.Clipboard:
		if clip == nil {
			return fmt.Errorf("clipboard support is not available on this system")
		}
		if err := clip.Copy(document); err != nil {
			return fmt.Errorf("failed to copy output to clipboard: %w", err)
		}
		logger.Info("Output copied to clipboard", zap.Int("bytes", len(document)))
		return nil
	default:
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := fmt.Fprintln(stdout, document); err != nil {
			return fmt.Errorf("failed to print output: %w", err)
		}
		return nil
	}
}

// writeDocumentFile writes the document to the given path, creating parent
// directories as needed. Written files end with a trailing newline.
func writeDocumentFile(outputPath, document string, logger *zap.Logger) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(document+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", outputPath, err)
	}
	logger.Info("Output written", zap.String("file", outputPath), zap.Int("bytes", len(document)))
	return nil
}
