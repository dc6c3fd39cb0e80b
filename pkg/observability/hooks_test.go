package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSaveHooks{}
	s.OnSaveStart("Data.xml", 3)
	s.OnNodeSkipped("Player", "health", "*custom.Node")
	s.OnSaveComplete("Data.xml", 3, time.Millisecond, nil)

	u := NoopUploadHooks{}
	u.OnUploadStart(ctx, "projects", "game.rcnet", 2048)
	u.OnUploadComplete(ctx, "projects", "game.rcnet", time.Second, errors.New("refused"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Save().(NoopSaveHooks); !ok {
		t.Error("Save() should return NoopSaveHooks by default")
	}
	if _, ok := Upload().(NoopUploadHooks); !ok {
		t.Error("Upload() should return NoopUploadHooks by default")
	}

	customSave := &testSaveHooks{}
	SetSaveHooks(customSave)
	if Save() != customSave {
		t.Error("SetSaveHooks should set custom hooks")
	}

	customUpload := &testUploadHooks{}
	SetUploadHooks(customUpload)
	if Upload() != customUpload {
		t.Error("SetUploadHooks should set custom hooks")
	}

	Reset()
	if _, ok := Save().(NoopSaveHooks); !ok {
		t.Error("Reset() should restore NoopSaveHooks")
	}
	if _, ok := Upload().(NoopUploadHooks); !ok {
		t.Error("Reset() should restore NoopUploadHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testSaveHooks{}
	SetSaveHooks(custom)
	SetSaveHooks(nil)

	if Save() != custom {
		t.Error("SetSaveHooks(nil) should be ignored")
	}
}

type testSaveHooks struct{ NoopSaveHooks }
type testUploadHooks struct{ NoopUploadHooks }
