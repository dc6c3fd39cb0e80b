package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/reclass/pkg/buildinfo"
	errs "github.com/matzehuels/reclass/pkg/errors"
	rio "github.com/matzehuels/reclass/pkg/io"
	"github.com/matzehuels/reclass/pkg/project"
)

const gameDef = "testdata/game.toml"

// execute runs the root command with args and returns what it wrote to
// its output stream.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func openSummary(t *testing.T, path string) rio.Summary {
	t.Helper()
	doc, err := rio.OpenDocument(path)
	if err != nil {
		t.Fatalf("OpenDocument(%s) error: %v", path, err)
	}
	return rio.Summarize(doc)
}

func summaryNames(s rio.Summary) []string {
	names := make([]string, len(s.Classes))
	for i, c := range s.Classes {
		names[i] = c.Name
	}
	return names
}

func TestSaveCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "game.rcnet")
	if _, err := execute(t, "save", gameDef, "-o", output, "--platform", "x86"); err != nil {
		t.Fatalf("save error: %v", err)
	}

	s := openSummary(t, output)
	if s.Platform != "x86" {
		t.Errorf("Platform = %q, want x86", s.Platform)
	}
	if got := strings.Join(summaryNames(s), ","); got != "Player,Vec3,Item" {
		t.Errorf("classes = %s, want Player,Vec3,Item", got)
	}
	if s.CustomData != 2 {
		t.Errorf("CustomData = %d, want 2", s.CustomData)
	}
}

func TestSaveCommandErrors(t *testing.T) {
	t.Setenv("RECLASS_S3_ENDPOINT", "")
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code errs.Code
	}{
		{"missing definition", []string{"save", filepath.Join(dir, "missing.toml")}, errs.ErrCodeFileNotFound},
		{"bad platform", []string{"save", gameDef, "--platform", "arm"}, errs.ErrCodeInvalidInput},
		{"presign without upload", []string{"save", gameDef, "--presign", "1h"}, errs.ErrCodeInvalidInput},
		{"upload without storage", []string{"save", gameDef, "-o", filepath.Join(dir, "g.rcnet"), "--upload", "g.rcnet"}, errs.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestNodesCommand(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantClasses  int
		wantWrapper  int
		wantIncludes string
	}{
		{"plain nodes", []string{"--class", "Vec3"}, 1, 3, ""},
		{"follows references", []string{"--class", "Item"}, 4, 2, "Player"},
		{"whole class", []string{"--class", "Vec3", "--whole"}, 2, 0, "Vec3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "nodes.rcnet")
			args := append([]string{"nodes", gameDef, "-o", output}, tt.args...)
			if _, err := execute(t, args...); err != nil {
				t.Fatalf("nodes error: %v", err)
			}

			s := openSummary(t, output)
			if len(s.Classes) != tt.wantClasses {
				t.Fatalf("classes = %v, want %d", summaryNames(s), tt.wantClasses)
			}
			if s.Classes[0].Name != rio.SerialisationClassName {
				t.Errorf("first class = %q, want %q", s.Classes[0].Name, rio.SerialisationClassName)
			}
			if s.Classes[0].Nodes != tt.wantWrapper {
				t.Errorf("wrapper nodes = %d, want %d", s.Classes[0].Nodes, tt.wantWrapper)
			}
			if tt.wantIncludes != "" && !strings.Contains(strings.Join(summaryNames(s), ","), tt.wantIncludes) {
				t.Errorf("classes = %v, want %s included", summaryNames(s), tt.wantIncludes)
			}
		})
	}
}

func TestNodesCommandStdout(t *testing.T) {
	out, err := execute(t, "nodes", gameDef, "--class", "Vec3", "-o", "-")
	if err != nil {
		t.Fatalf("nodes error: %v", err)
	}
	if !strings.HasPrefix(out, "PK") {
		t.Errorf("stdout does not start with a zip header: %q", out[:min(len(out), 8)])
	}
}

func TestNodesCommandUnknownClass(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nodes.rcnet")
	_, err := execute(t, "nodes", gameDef, "--class", "Missing", "-o", output)
	if !errs.Is(err, errs.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an unknown class")
	}
}

func TestGraphCommandDOT(t *testing.T) {
	output := filepath.Join(t.TempDir(), "game.dot")
	if _, err := execute(t, "graph", gameDef, "-o", output, "--detailed"); err != nil {
		t.Fatalf("graph error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	for _, want := range []string{"digraph G {", "inventory[4]", "style=dashed", "nodes: 3"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q", want)
		}
	}
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "types")
	if err != nil {
		t.Fatalf("types error: %v", err)
	}
	for _, want := range []string{"Utf16TextNode", "ClassPointerArrayNode", "signature, belongs_to"} {
		if !strings.Contains(out, want) {
			t.Errorf("types output missing %q", want)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "game.rcnet")
	if _, err := execute(t, "save", gameDef, "-o", output); err != nil {
		t.Fatalf("save error: %v", err)
	}

	out, err := execute(t, "inspect", output)
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"Player", "Vec3", "Item", "Custom data"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q", want)
		}
	}
}

func TestInspectCommandNotAContainer(t *testing.T) {
	_, err := execute(t, "inspect", gameDef)
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestDescribeType(t *testing.T) {
	rows := typeRows()
	got := make(map[string][]string, len(rows))
	for _, row := range rows {
		got[row[0]] = row[1:]
	}

	tests := []struct {
		tag, size, fields string
	}{
		{"Int32Node", "4", "-"},
		{"ClassPointerNode", strconv.Itoa(project.PointerSize), "target"},
		{"ClassInstanceNode", "var", "target"},
		{"ClassInstanceArrayNode", "var", "target, count"},
		{"Utf8TextNode", "var", "length"},
		{"BitFieldNode", "var", "bits"},
		{"FunctionNode", "0", "signature, belongs_to"},
	}
	for _, tt := range tests {
		row, ok := got[tt.tag]
		if !ok {
			t.Errorf("%s missing from types", tt.tag)
			continue
		}
		if row[0] != tt.size || row[1] != tt.fields {
			t.Errorf("%s = %v, want [%s %s]", tt.tag, row, tt.size, tt.fields)
		}
	}
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		input, ext, want string
	}{
		{"game.toml", ".rcnet", "game.rcnet"},
		{"defs/game.toml", ".svg", "defs/game.svg"},
		{"noext", ".rcnet", "noext.rcnet"},
	}
	for _, tt := range tests {
		if got := defaultOutput(tt.input, tt.ext); got != tt.want {
			t.Errorf("defaultOutput(%q, %q) = %q, want %q", tt.input, tt.ext, got, tt.want)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "reclass") {
		t.Error("bash completion should mention the command name")
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion should reject unknown shells")
	}
}

func TestPlatformPrecedence(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{"environment", "x86", nil, "x86"},
		{"flag wins", "x86", []string{"--platform", "x64"}, "x64"},
		{"host", "", nil, buildinfo.Platform()},
	}

	for _, tt := range tests {
		for _, command := range []string{"save", "nodes"} {
			t.Run(command+"/"+tt.name, func(t *testing.T) {
				t.Setenv("RECLASS_PLATFORM", tt.env)
				output := filepath.Join(t.TempDir(), "out.rcnet")
				args := []string{command, gameDef, "-o", output}
				if command == "nodes" {
					args = append(args, "--class", "Vec3")
				}
				if _, err := execute(t, append(args, tt.args...)...); err != nil {
					t.Fatalf("%s error: %v", command, err)
				}
				if got := openSummary(t, output).Platform; got != tt.want {
					t.Errorf("Platform = %q, want %q", got, tt.want)
				}
			})
		}
	}
}
