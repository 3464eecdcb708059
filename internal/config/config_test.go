package config

import (
	"os"
	"path/filepath"
	"testing"

	"binviz/internal/decode"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "binviz.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Error("expected defaults for missing file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[view]
mode = "uint16"
endianness = "big"

[theme]
selection_background = "#123456"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	mode, endian, err := cfg.Initial()
	if err != nil {
		t.Fatal(err)
	}
	if mode != decode.ModeUint16 {
		t.Errorf("expected mode %s, got %s", decode.ModeUint16, mode)
	}
	if endian != decode.BigEndian {
		t.Errorf("expected big endian, got %s", endian)
	}
	if cfg.Theme.SelectionBackground != "#123456" {
		t.Errorf("expected selection background override, got %q", cfg.Theme.SelectionBackground)
	}
	if cfg.Theme.BorderColor != DefaultConfig().Theme.BorderColor {
		t.Errorf("expected unset keys to keep defaults, got %q", cfg.Theme.BorderColor)
	}
}

func TestLoadMalformed(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[view\nmode = "))
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
	if cfg == nil || cfg.View.Mode != DefaultConfig().View.Mode {
		t.Error("expected defaults alongside the error")
	}
}

func TestLoadUnknownMode(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[view]\nmode = \"int64\"\n"))
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if cfg.View.Mode != "ascii" {
		t.Errorf("expected default mode, got %q", cfg.View.Mode)
	}
}

func TestDefaultInitial(t *testing.T) {
	mode, endian, err := DefaultConfig().Initial()
	if err != nil {
		t.Fatal(err)
	}
	if mode != decode.ModeASCII || endian != decode.LittleEndian {
		t.Errorf("expected ASCII little endian, got %s %s", mode, endian)
	}
}

func TestNewStyles(t *testing.T) {
	s := NewStyles(&DefaultConfig().Theme)
	if s.Selection.Render("x") == "" {
		t.Error("expected selection style to render")
	}
}
