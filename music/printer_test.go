package music

import "testing"

func TestPrinter(t *testing.T) {
	notes := NewParser("C D E F# G").Notes()
	p := NewPrinter(notes)
	for _, tc := range []struct {
		name string
		got  string
		want string
	}{
		{"names", p.Names(0), "C D E F# G"},
		{"names per 2", p.Names(2), "C D\nE F#\nG"},
		{"qualified", p.Qualified(-1), "C5q D5q E5q F#5q G5q"},
		{"qualified per 3", p.Qualified(3), "C5q D5q E5q\nF#5q G5q"},
		{"indexed per 2", p.IndexedNames(2, -1), "-1: C D\n0: E F#\n1: G"},
		{"indexed single line", p.IndexedNames(0, 1), "1: C 2: D 3: E 4: F# 5: G"},
		{"indexed qualified", p.IndexedQualified(5, 0), "0: C5q D5q E5q F#5q G5q"},
	} {
		if tc.got != tc.want {
			t.Errorf("%s: %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestPrinterEmpty(t *testing.T) {
	if got := NewPrinter(nil).IndexedNames(3, 0); got != "" {
		t.Errorf("got %q", got)
	}
}
