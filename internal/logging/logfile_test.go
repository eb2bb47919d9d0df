package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCapWriterStaysUnderCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room-server.log")
	w, err := newCapWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	defer w.Close()

	line := make([]byte, 256*1024)
	for i := 0; i < 9; i++ {
		if _, err := w.Write(line); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() > 1<<20 {
		t.Fatalf("log grew past cap: %d bytes", info.Size())
	}
}

func TestCapWriterReopensAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room-server.log")
	w, err := newCapWriter(path, 1)
	if err != nil {
		t.Fatalf("create writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := w.Write([]byte("after close\n")); err != nil {
		t.Fatalf("write after close: %v", err)
	}
	_ = w.Close()
}
