// File: pkg/snapshot/format.go
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Separator is the fixed-width line that frames each content block.
const Separator = "--------------------------------------------------------------------------------"

// Placeholder lines emitted instead of file content.
const (
	placeholderBinary = "    [Skipping binary file content]"
	placeholderEmpty  = "    [Empty file]"
)

// FormatFile renders one content block: the /-prefixed relative path as a
// header, a separator, the line-numbered content (or a placeholder for
// binary, empty, or unreadable files), and a closing separator. A failure
// to read the file is rendered into the block, never propagated, so one
// broken file cannot abort the document.
func FormatFile(filePath, root string, policy DecodePolicy, logger *zap.Logger) string {
	relPath, err := filepath.Rel(root, filePath)
	if err != nil {
		logger.Warn("Unable to determine relative path, using base name",
			zap.String("filePath", filePath),
			zap.Error(err))
		relPath = filepath.Base(filePath)
	}
	header := "/" + filepath.ToSlash(relPath) + ":"

	lines := []string{header, Separator}
	lines = append(lines, contentLines(filePath, policy)...)
	lines = append(lines, Separator)
	return strings.Join(lines, "\n")
}

// contentLines produces the body of a block: numbered lines or a single
// placeholder.
func contentLines(filePath string, policy DecodePolicy) []string {
	if IsLikelyBinary(filePath) {
		return []string{placeholderBinary}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return []string{fmt.Sprintf("    [Error reading file: %v]", err)}
	}

	text := decodeText(data, policy)
	if text == "" {
		return []string{placeholderEmpty}
	}

	fileLines := splitLines(text)
	width := len(strconv.Itoa(len(fileLines)))
	numbered := make([]string, 0, len(fileLines))
	for i, line := range fileLines {
		numbered = append(numbered, fmt.Sprintf("%*d | %s", width, i+1, line))
	}
	return numbered
}

// decodeText applies the lenient decode policy to raw file bytes. Invalid
// UTF-8 sequences are dropped or replaced; the run never fails on them.
func decodeText(data []byte, policy DecodePolicy) string {
	replacement := ""
	if policy == DecodeReplace {
		replacement = "�"
	}
	return strings.ToValidUTF8(string(data), replacement)
}

// splitLines splits text into lines the way a line-oriented reader would:
// a trailing newline does not produce an extra empty line, and trailing
// carriage returns are stripped.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
