package snapshot

import "testing"

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare extension", in: "log", want: ".log"},
		{name: "leading dot kept", in: ".log", want: ".log"},
		{name: "uppercase lowered", in: ".LOG", want: ".log"},
		{name: "surrounding space trimmed", in: " tmp ", want: ".tmp"},
		{name: "empty", in: "", want: ""},
		{name: "dot only", in: ".", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeExt(tt.in); got != tt.want {
				t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRuleSetIgnoresDir(t *testing.T) {
	rules := NewRuleSet([]string{".git", "node_modules"}, nil, nil)

	if !rules.IgnoresDir(".git") {
		t.Error("expected .git to be ignored")
	}
	if !rules.IgnoresDir("node_modules") {
		t.Error("expected node_modules to be ignored")
	}
	if rules.IgnoresDir("src") {
		t.Error("src should not be ignored")
	}
	if rules.IgnoresDir("Node_Modules") {
		t.Error("directory names match exactly; Node_Modules should not be ignored")
	}
}

func TestRuleSetIgnoresFile(t *testing.T) {
	rules := NewRuleSet(nil, []string{".DS_Store"}, []string{"log", ".TMP"})

	tests := []struct {
		name     string
		fileName string
		want     bool
	}{
		{name: "ignored by name", fileName: ".DS_Store", want: true},
		{name: "ignored by extension", fileName: "run.log", want: true},
		{name: "extension matched case-insensitively", fileName: "run.LOG", want: true},
		{name: "normalized flag extension", fileName: "scratch.tmp", want: true},
		{name: "kept file", fileName: "main.go", want: false},
		{name: "dotfile has no extension", fileName: ".log", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.IgnoresFile(tt.fileName); got != tt.want {
				t.Errorf("IgnoresFile(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}
