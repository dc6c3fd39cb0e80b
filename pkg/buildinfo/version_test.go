package buildinfo

import (
	"strings"
	"testing"
)

func TestPlatform(t *testing.T) {
	p := Platform()
	if p != "x64" && p != "x86" {
		t.Errorf("Platform() = %q, want x64 or x86", p)
	}
}

func TestString(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	if s := String(); !strings.Contains(s, "version: v1.2.3") {
		t.Errorf("String() = %q, missing version line", s)
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q, unexpected prefix", tmpl)
	}
}
