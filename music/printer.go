package music

import (
	"strconv"
	"strings"
)

// Printer lays notes out as text. A perLine of zero or less keeps
// everything on one line.
type Printer struct {
	notes []Note
}

func NewPrinter(notes []Note) *Printer {
	return &Printer{notes: append([]Note(nil), notes...)}
}

func (p *Printer) SetNotes(notes []Note) {
	p.notes = append(p.notes[:0:0], notes...)
}

func (p *Printer) Notes() []Note {
	return append([]Note(nil), p.notes...)
}

// Names prints the note names only: "C D E".
func (p *Printer) Names(perLine int) string {
	return p.print(perLine, nil, Note.FullName)
}

// Qualified prints name, octave and duration: "C5q D5q E5q".
func (p *Printer) Qualified(perLine int) string {
	return p.print(perLine, nil, Note.String)
}

// IndexedNames prefixes every line with a counter starting at start: "-1: B C".
// On a single line every note gets its own counter: "-1: B 0: C".
func (p *Printer) IndexedNames(perLine, start int) string {
	return p.print(perLine, &start, Note.FullName)
}

func (p *Printer) IndexedQualified(perLine, start int) string {
	return p.print(perLine, &start, Note.String)
}

func (p *Printer) print(perLine int, start *int, format func(Note) string) string {
	var sb strings.Builder
	line := 0
	if start != nil {
		line = *start
	}
	for i, n := range p.notes {
		newLine := i == 0 || (perLine > 0 && i%perLine == 0)
		if newLine {
			if i > 0 {
				sb.WriteString("\n")
			}
			if start != nil {
				sb.WriteString(strconv.Itoa(line))
				sb.WriteString(": ")
				line++
			}
		} else {
			sb.WriteString(" ")
			if start != nil && perLine <= 0 {
				sb.WriteString(strconv.Itoa(line))
				sb.WriteString(": ")
				line++
			}
		}
		sb.WriteString(format(n))
	}
	return sb.String()
}
