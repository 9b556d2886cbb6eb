package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/JeanRibes/musicia/commands"
	. "github.com/JeanRibes/musicia/shared"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Transpose struct {
		From int `yaml:"from"`
		To   int `yaml:"to"`
	} `yaml:"transpose"`
	Output struct {
		Qualified    bool `yaml:"qualified"`
		NotesPerLine int  `yaml:"notes_per_line"`
	} `yaml:"output"`
	Files struct {
		Import string `yaml:"import"`
		Export string `yaml:"export"`
	} `yaml:"files"`
	Playback struct {
		BPM      float64 `yaml:"bpm"`
		Duration string  `yaml:"duration"`
	} `yaml:"playback"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func DefaultConfig() Config {
	var c Config
	c.Transpose.From = -11
	c.Transpose.To = 11
	c.Output.Qualified = true
	c.Files.Import = DEFAULT_FILE
	c.Files.Export = DEFAULT_FILE
	c.Playback.BPM = BPM
	c.Playback.Duration = "q"
	c.Log.Level = "info"
	return c
}

// LoadConfig reads filename over the defaults. A missing file is not an error.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

func (c Config) Settings() commands.Settings {
	return commands.Settings{
		NotesPerLine: c.Output.NotesPerLine,
		Duration:     c.Playback.Duration,
		BPM:          c.Playback.BPM,
		ImportFile:   c.Files.Import,
		ExportFile:   c.Files.Export,
	}
}

func (c Config) LogLevel() (charmlog.Level, error) {
	return charmlog.ParseLevel(c.Log.Level)
}
