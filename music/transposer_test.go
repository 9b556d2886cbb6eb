package music

import (
	"errors"
	"reflect"
	"testing"
)

func TestTransposeAllOrder(t *testing.T) {
	p := NewParser("C G#7")
	tr := NewTransposer(NewOrder(), p.Notes()...)
	got, err := tr.TransposeAll(Range(-1, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"B4q", "G7q", "C5q", "G#7q", "C#5q", "A7q"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("got %v, want %v", names(got), want)
	}
	if !reflect.DeepEqual(names(tr.Transposed()), want) {
		t.Errorf("Transposed() = %v", names(tr.Transposed()))
	}
}

func TestTransposeAllReportsRangeErrors(t *testing.T) {
	o := NewOrder()
	c0, _ := o.NoteAt(0)
	tr := NewTransposer(o, c0, mustNote(t, "C", "", 5))
	got, err := tr.TransposeAll([]int{-1})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v", err)
	}
	if !reflect.DeepEqual(names(got), []string{"B4q"}) {
		t.Errorf("got %v", names(got))
	}
}

func TestTransposerSetNotes(t *testing.T) {
	tr := NewTransposer(NewOrder())
	tr.SetNotes([]Note{mustNote(t, "E", "", 5)})
	got, err := tr.TransposeAll([]int{1})
	if err != nil || !reflect.DeepEqual(names(got), []string{"F5q"}) {
		t.Errorf("got %v, %v", names(got), err)
	}
	n, err := tr.TransposeNote(mustNote(t, "E", "", 5), -4)
	if err != nil || n.String() != "C5q" {
		t.Errorf("TransposeNote = %s, %v", n, err)
	}
}

func TestRange(t *testing.T) {
	if got := Range(-11, 11); len(got) != 23 || got[0] != -11 || got[22] != 11 {
		t.Errorf("Range(-11, 11) = %v", got)
	}
	if got := Range(1, 0); got != nil {
		t.Errorf("Range(1, 0) = %v", got)
	}
}
