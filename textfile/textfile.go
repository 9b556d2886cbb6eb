// Package textfile imports and exports whole text files.
package textfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var ErrIO = errors.New("i/o error")

// Read returns the content of the file without its trailing whitespace.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: file not found: %w", ErrIO, err)
		}
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return strings.TrimRightFunc(string(data), isSpace), nil
}

// Write replaces the content of the file with text.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
