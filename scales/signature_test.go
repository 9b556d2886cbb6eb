package scales

import (
	"errors"
	"testing"

	"github.com/JeanRibes/musicia/music"
)

func TestSignature(t *testing.T) {
	order, circle := newTables(t)
	for _, tc := range []struct {
		variant Variant
		root    string
		want    map[string]music.Name
	}{
		{Major, "C", map[string]music.Name{}},
		{Major, "F", map[string]music.Name{"B": music.Bflat}},
		{Major, "D", map[string]music.Name{"F": music.Fsharp, "C": music.Csharp}},
		{Major, "F#", map[string]music.Name{"G": music.Gsharp, "A": music.Asharp, "C": music.Csharp, "D": music.Dsharp}},
		{Minor, "C", map[string]music.Name{"E": music.Eflat, "A": music.Aflat, "B": music.Bflat}},
		{Minor, "E", map[string]music.Name{"F": music.Fsharp}},
	} {
		sig, err := New(root(t, tc.root), tc.variant, order, circle).Signature()
		if err != nil {
			t.Errorf("%s %s: %v", tc.root, tc.variant.Name, err)
			continue
		}
		if len(sig) != len(tc.want) {
			t.Errorf("%s %s: %v, want %v", tc.root, tc.variant.Name, sig, tc.want)
			continue
		}
		for letter, name := range tc.want {
			if sig[letter] != name {
				t.Errorf("%s %s: %s → %v, want %v", tc.root, tc.variant.Name, letter, sig[letter], name)
			}
		}
	}
}

func TestConform(t *testing.T) {
	order, circle := newTables(t)
	for _, tc := range []struct {
		variant Variant
		root    string
		notes   string
		want    string
	}{
		{Major, "F", "B C F#", "Bb5q C5q F#5q"},
		{Major, "D", "C D E F", "C#5q D5q E5q F#5q"},
		{Major, "F#", "E F G", "E5q F5q G#5q"},
		{Minor, "C", "A3 B3 C4", "Ab3q Bb3q C4q"},
		{Major, "G", "F10 G10", "F#10q G10q"},
		{Major, "C", "C D E", "C5q D5q E5q"},
	} {
		got, err := New(root(t, tc.root), tc.variant, order, circle).Conform(music.NewParser(tc.notes).Notes())
		if err != nil {
			t.Errorf("%s %s: %v", tc.root, tc.variant.Name, err)
			continue
		}
		if fullNames(got) != tc.want {
			t.Errorf("%s %s: %s, want %s", tc.root, tc.variant.Name, fullNames(got), tc.want)
		}
	}
}

func TestConformOutOfRange(t *testing.T) {
	order, circle := newTables(t)
	_, err := NewMajor(root(t, "A"), order, circle).Conform(music.NewParser("G10").Notes())
	if !errors.Is(err, music.ErrInvalidArgument) {
		t.Errorf("error = %v", err)
	}
}
