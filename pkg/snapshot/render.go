// File: pkg/snapshot/render.go
package snapshot

import (
	"strings"

	"go.uber.org/zap"
)

// Render assembles the final document: the structure listing, one blank
// line, then the content block of every file in the given (full-path
// sorted) order, blocks separated by blank lines. The joined result is
// whitespace-trimmed; an empty result means there was nothing to do.
func Render(structure []string, files []FileEntry, root string, policy DecodePolicy, logger *zap.Logger) string {
	var parts []string

	if len(structure) > 0 {
		parts = append(parts, strings.Join(structure, "\n"))
	}

	if len(files) > 0 {
		blocks := make([]string, 0, len(files))
		for _, entry := range files {
			blocks = append(blocks, FormatFile(entry.Path, root, policy, logger))
		}
		parts = append(parts, strings.Join(blocks, "\n\n"))
	}

	document := strings.TrimSpace(strings.Join(parts, "\n\n"))
	logger.Debug("Rendered document",
		zap.Int("structureLines", len(structure)),
		zap.Int("fileBlocks", len(files)),
		zap.Int("documentBytes", len(document)))
	return document
}
