// File: pkg/snapshot/binary.go
package snapshot

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// binarySniffLen is how many leading bytes are inspected for null bytes.
const binarySniffLen = 1024

// binaryExtensions lists extensions presumed non-text. Files matching the
// set are skipped without opening them.
var binaryExtensions = map[string]struct{}{
	// Images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {},
	".ico": {}, ".tif": {}, ".tiff": {}, ".webp": {},
	// Archives
	".zip": {}, ".tar": {}, ".gz": {}, ".bz2": {}, ".xz": {},
	".rar": {}, ".7z": {},
	// Documents
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
	".ppt": {}, ".pptx": {}, ".odt": {}, ".ods": {}, ".odp": {},
	// Executables / libraries
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".app": {}, ".bin": {},
	// Compiled code / data
	".o": {}, ".a": {}, ".lib": {}, ".class": {}, ".jar": {}, ".obj": {},
	// Media
	".mp3": {}, ".wav": {}, ".ogg": {}, ".flac": {}, ".aac": {},
	".mp4": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".mkv": {}, ".flv": {},
	// Databases / other
	".sqlite": {}, ".db": {}, ".mdb": {}, ".dbf": {},
	".lock": {},
	// Fonts
	".woff": {}, ".woff2": {}, ".eot": {}, ".ttf": {}, ".otf": {},
}

// IsLikelyBinary guesses whether a file is binary. It returns true when the
// lowercase extension is in the binary set, or when the first 1024 bytes
// contain a null byte. A file that cannot be opened or read is treated as
// binary so its raw content never reaches the document.
func IsLikelyBinary(filePath string) bool {
	if hasBinaryExtension(filePath) {
		return true
	}

	file, err := os.Open(filePath)
	if err != nil {
		return true
	}
	defer file.Close()

	buffer := make([]byte, binarySniffLen)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return true
	}
	return bytes.IndexByte(buffer[:n], 0) >= 0
}

// hasBinaryExtension checks the file's lowercase extension against the
// built-in binary extension set.
func hasBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := binaryExtensions[ext]
	return ok
}
