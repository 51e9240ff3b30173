package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeEnv(t, `
# comment
COMMITVIZ_TEST_PLAIN=hello
COMMITVIZ_TEST_QUOTED="quoted value"
export COMMITVIZ_TEST_EXPORTED='single'
not a pair
=novalue
`)

	for _, key := range []string{"COMMITVIZ_TEST_PLAIN", "COMMITVIZ_TEST_QUOTED", "COMMITVIZ_TEST_EXPORTED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := map[string]string{
		"COMMITVIZ_TEST_PLAIN":    "hello",
		"COMMITVIZ_TEST_QUOTED":   "quoted value",
		"COMMITVIZ_TEST_EXPORTED": "single",
	}
	for key, want := range tests {
		if got := os.Getenv(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestLoad_DoesNotOverride(t *testing.T) {
	path := writeEnv(t, "COMMITVIZ_TEST_SET=from_file\n")
	t.Setenv("COMMITVIZ_TEST_SET", "from_env")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("COMMITVIZ_TEST_SET"); got != "from_env" {
		t.Errorf("value = %q, existing environment should win", got)
	}
}

func TestLoad_MissingFileIsNil(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Load on missing file: %v", err)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		key, want string
		ok        bool
	}{
		{line: "A=1", key: "A", want: "1", ok: true},
		{line: "export B=2", key: "B", want: "2", ok: true},
		{line: `C="spaced out"`, key: "C", want: "spaced out", ok: true},
		{line: "D='x'", key: "D", want: "x", ok: true},
		{line: "noequals", ok: false},
		{line: "=empty", ok: false},
	}

	for _, tt := range tests {
		key, value, ok := parseLine(tt.line)
		if ok != tt.ok {
			t.Errorf("parseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			continue
		}
		if ok && (key != tt.key || value != tt.want) {
			t.Errorf("parseLine(%q) = (%q, %q), want (%q, %q)", tt.line, key, value, tt.key, tt.want)
		}
	}
}
