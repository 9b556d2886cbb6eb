package music

import (
	"reflect"
	"testing"
)

func names(notes []Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.String())
	}
	return out
}

const garbage = "A## Bbb A6 B#9 Cb C-1 Db11 E# Fb C0 G10 G#10 H R V G#10"

func TestParserDropsMalformedTokens(t *testing.T) {
	want := []string{"A6q", "C0q", "G10q"}

	p := NewParser(garbage)
	if got := names(p.Notes()); !reflect.DeepEqual(got, want) {
		t.Errorf("NewParser: %v, want %v", got, want)
	}
	if p.Count() != 3 {
		t.Errorf("Count = %d, want 3", p.Count())
	}
	if len(p.Skipped()) != 13 {
		t.Errorf("Skipped = %v", p.Skipped())
	}

	p = NewParser("")
	if got := names(p.Parse(garbage)); !reflect.DeepEqual(got, want) {
		t.Errorf("Parse: %v, want %v", got, want)
	}
	if p.Count() != 3 {
		t.Errorf("Count after Parse = %d, want 3", p.Count())
	}
}

func TestParserTokens(t *testing.T) {
	for _, tc := range []struct {
		text string
		want []string
	}{
		{"C", []string{"C5q"}},
		{"  C\tD\n E  ", []string{"C5q", "D5q", "E5q"}},
		{"F# Bb Eb Ab Db Gb", []string{"F#5q", "Bb5q", "Eb5q", "Ab5q", "Db5q", "Gb5q"}},
		{"C#0 Bb9", []string{"C#0q", "Bb9q"}},
		{"C10 C#10 Db10 D10 D#10 Eb10 E10 F10 F#10 Gb10 G10", []string{
			"C10q", "C#10q", "Db10q", "D10q", "D#10q", "Eb10q", "E10q", "F10q", "F#10q", "Gb10q", "G10q",
		}},
		{"Ab10 A10 A#10 Bb10 B10", []string{}},
		{"c d e", []string{}},
		{"Cb Fb E# B#", []string{}},
		{"", []string{}},
	} {
		if got := names(NewParser(tc.text).Notes()); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%q: %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParseResetsCount(t *testing.T) {
	p := NewParser("C D E")
	p.Parse("F")
	if p.Count() != 1 {
		t.Errorf("Count = %d, want 1", p.Count())
	}
}
