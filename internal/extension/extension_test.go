package extension

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/upcase/internal/command"
	"github.com/dshills/upcase/internal/editor"
)

func TestSetupRegistersCommand(t *testing.T) {
	reg := command.NewRegistry()
	ext := New(editor.NewLineBuffer(), reg)

	if err := ext.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cmd := reg.Get(CommandID)
	if cmd == nil {
		t.Fatal("command not registered")
	}
	if cmd.Source != ext.Source() {
		t.Errorf("expected source %q, got %q", ext.Source(), cmd.Source)
	}
}

func TestSetupWithoutRegistry(t *testing.T) {
	ext := New(editor.NewLineBuffer(), nil)

	if err := ext.Setup(); !errors.Is(err, ErrNoRegistry) {
		t.Errorf("expected ErrNoRegistry, got %v", err)
	}
}

func TestCommandConvertsDocument(t *testing.T) {
	buf := editor.NewLineBuffer("line1", "line2", "line3", "line4")
	reg := command.NewRegistry()
	ext := New(buf, reg)

	if err := ext.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := reg.Execute(CommandID, nil); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := []string{"LINE1", "LINE2", "LINE3", "LINE4"}
	if got := buf.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if buf.LineCount() != 4 {
		t.Errorf("line count changed: %d", buf.LineCount())
	}
}

func TestCommandConvertsMixedCase(t *testing.T) {
	buf := editor.NewLineBuffer("LiNe1", "LiNe2", "lINE3", "LinE4")
	reg := command.NewRegistry()
	ext := New(buf, reg)

	if err := ext.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if err := reg.Execute(CommandID, nil); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := []string{"LINE1", "LINE2", "LINE3", "LINE4"}
	if got := buf.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCommandWithoutBuffer(t *testing.T) {
	reg := command.NewRegistry()
	ext := New(nil, reg)

	if err := ext.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := reg.Execute(CommandID, nil); !errors.Is(err, ErrNoBuffer) {
		t.Errorf("expected ErrNoBuffer, got %v", err)
	}
}

func TestCommandIdempotent(t *testing.T) {
	buf := editor.NewLineBuffer("sOMe TexT", "already UPPER")
	reg := command.NewRegistry()
	ext := New(buf, reg)

	if err := ext.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := reg.Execute(CommandID, nil); err != nil {
		t.Fatalf("first execute failed: %v", err)
	}
	first := buf.Lines()

	if err := reg.Execute(CommandID, nil); err != nil {
		t.Fatalf("second execute failed: %v", err)
	}
	if got := buf.Lines(); !reflect.DeepEqual(got, first) {
		t.Errorf("second run changed the document: %v != %v", got, first)
	}
}

func TestTeardownUnregisters(t *testing.T) {
	reg := command.NewRegistry()
	ext := New(editor.NewLineBuffer(), reg)

	if err := ext.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	ext.Teardown()

	if reg.Has(CommandID) {
		t.Error("command should be unregistered after teardown")
	}
}

// readOnlyBuffer fails every write, for error propagation tests.
type readOnlyBuffer struct {
	*editor.LineBuffer
	err error
}

func (b *readOnlyBuffer) SetLine(int, string) error { return b.err }

func TestApplyPropagatesWriteError(t *testing.T) {
	want := errors.New("read only")
	buf := &readOnlyBuffer{LineBuffer: editor.NewLineBuffer("a"), err: want}

	if err := Apply(buf); !errors.Is(err, want) {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestApplyEmptyDocument(t *testing.T) {
	buf := editor.NewLineBuffer()

	if err := Apply(buf); err != nil {
		t.Fatalf("apply on empty document failed: %v", err)
	}
	if buf.LineCount() != 0 {
		t.Errorf("empty document gained lines: %d", buf.LineCount())
	}
}
