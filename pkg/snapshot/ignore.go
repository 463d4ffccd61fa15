// File: pkg/snapshot/ignore.go
package snapshot

import (
	"strings"
)

// RuleSet holds the three independent ignore sets applied during the walk:
// directory names (pruned with their whole subtree), file names, and file
// extensions. Directory and file names match exactly; extensions match
// case-insensitively after normalization to a leading-dot lowercase form.
// A RuleSet is immutable once built.
type RuleSet struct {
	dirs  map[string]struct{}
	files map[string]struct{}
	exts  map[string]struct{}
}

// NewRuleSet builds a RuleSet from the provided name and extension lists.
// Extensions are normalized, so "log", ".log" and ".LOG" are equivalent.
func NewRuleSet(ignoreDirs, ignoreFiles, ignoreExts []string) *RuleSet {
	rs := &RuleSet{
		dirs:  make(map[string]struct{}, len(ignoreDirs)),
		files: make(map[string]struct{}, len(ignoreFiles)),
		exts:  make(map[string]struct{}, len(ignoreExts)),
	}
	for _, name := range ignoreDirs {
		rs.dirs[name] = struct{}{}
	}
	for _, name := range ignoreFiles {
		rs.files[name] = struct{}{}
	}
	for _, ext := range ignoreExts {
		rs.exts[NormalizeExt(ext)] = struct{}{}
	}
	return rs
}

// IgnoresDir reports whether a directory with the given name should be
// pruned from traversal.
func (rs *RuleSet) IgnoresDir(name string) bool {
	_, ok := rs.dirs[name]
	return ok
}

// IgnoresFile reports whether a file should be excluded, either by its
// exact name or by its extension.
func (rs *RuleSet) IgnoresFile(name string) bool {
	if _, ok := rs.files[name]; ok {
		return true
	}
	ext := extOf(name)
	if ext == "" {
		return false
	}
	_, ok := rs.exts[ext]
	return ok
}

// NormalizeExt lowercases an extension and ensures it carries a leading dot.
func NormalizeExt(ext string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if trimmed == "" {
		return ""
	}
	return "." + strings.ToLower(trimmed)
}

// extOf returns the lowercase extension of a file name, including the dot.
// A name like ".gitignore" has no extension in this model.
func extOf(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(name[idx:])
}
