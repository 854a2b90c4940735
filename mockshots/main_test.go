package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vulh1209/localtranscript-manual/internal/images"
	"github.com/vulh1209/localtranscript-manual/internal/logging"
)

func TestWriteMockupCreatesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start-recording.png")
	written, err := writeMockup(path, images.Recording, false, logging.NoopLogger{})
	if err != nil {
		t.Fatalf("writeMockup: %v", err)
	}
	if !written {
		t.Fatalf("expected file to be written")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 220 || cfg.Height != 60 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWriteMockupSkipsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropdown-menu.png")
	if err := os.WriteFile(path, []byte("real screenshot"), 0o644); err != nil {
		t.Fatal(err)
	}

	written, err := writeMockup(path, images.Dropdown, false, logging.NoopLogger{})
	if err != nil {
		t.Fatalf("writeMockup: %v", err)
	}
	if written {
		t.Fatalf("existing file should be kept")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "real screenshot" {
		t.Fatalf("existing file was modified")
	}

	written, err = writeMockup(path, images.Dropdown, true, logging.NoopLogger{})
	if err != nil || !written {
		t.Fatalf("force overwrite: written=%v err=%v", written, err)
	}
}

func TestWriteMockupUnknownName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	if _, err := writeMockup(path, "toolbar", false, logging.NoopLogger{}); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("no file should be created for an unknown mockup")
	}
}
