package main

import (
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "musicia.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if config != DefaultConfig() {
		t.Errorf("got %+v", config)
	}
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `
transpose:
  from: -2
  to: 3
output:
  qualified: false
playback:
  bpm: 90
  duration: h.
log:
  level: debug
`))
	if err != nil {
		t.Fatal(err)
	}
	if config.Transpose.From != -2 || config.Transpose.To != 3 {
		t.Errorf("transpose = %+v", config.Transpose)
	}
	if config.Output.Qualified || config.Output.NotesPerLine != 0 {
		t.Errorf("output = %+v", config.Output)
	}
	// untouched sections keep their defaults
	if config.Files.Import != "Musicia.txt" || config.Files.Export != "Musicia.txt" {
		t.Errorf("files = %+v", config.Files)
	}
	settings := config.Settings()
	if settings.BPM != 90 || settings.Duration != "h." {
		t.Errorf("settings = %+v", settings)
	}
	if level, err := config.LogLevel(); err != nil || level != charmlog.DebugLevel {
		t.Errorf("level = %v, %v", level, err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	for _, content := range []string{
		"transpose: [1, 2",
		"transpose:\n  from: high\n",
	} {
		if _, err := LoadConfig(writeConfig(t, content)); err == nil {
			t.Errorf("%q: no error", content)
		}
	}
}

func TestLogLevel(t *testing.T) {
	config := DefaultConfig()
	config.Log.Level = "loud"
	if _, err := config.LogLevel(); err == nil {
		t.Error("unknown level accepted")
	}
}
