package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/reclass/pkg/observability"
)

func TestSaveReportsHooksAtDebugLevel(t *testing.T) {
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"save", gameDef, "-o", filepath.Join(t.TempDir(), "game.rcnet")})
	if err := root.Execute(); err != nil {
		t.Fatalf("save error: %v", err)
	}

	for _, want := range []string{"Save started", "Save finished", "classes=3"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, logs.String())
		}
	}
}
