package music

import (
	"regexp"
	"strconv"
	"strings"
)

// a sharp may only follow A, C, D, F or G and a flat only A, B, D, E or G.
// Cb, Fb, E# and B# exist in theory but are not part of this grammar.
const (
	sharpNames = `[ACDFG]#?`
	flatNames  = `[ABDEG]b?`
)

var (
	bareName    = regexp.MustCompile(`^(?:` + sharpNames + `|` + flatNames + `)$`)
	upToOctave9 = regexp.MustCompile(`^(?:` + sharpNames + `|` + flatNames + `)[0-9]$`)
	// octave 10 stops at G: no G#/Ab, A, A#/Bb or B
	octave10 = regexp.MustCompile(`^(?:[CDF]#?|[DEG]b?)10$`)
)

// Parser reads notes like "C", "F#", "Bb3" or "G10" out of free text.
// Tokens that do not match are skipped without error.
type Parser struct {
	parsed  []Note
	skipped []string
}

// NewParser parses text right away. Use Parse to reuse the parser.
func NewParser(text string) *Parser {
	p := &Parser{}
	p.Parse(text)
	return p
}

// Parse replaces the previous result with the notes found in text.
func (p *Parser) Parse(text string) []Note {
	p.parsed = []Note{}
	p.skipped = nil
	for _, token := range strings.Fields(text) {
		n, ok := parseToken(token)
		if !ok {
			p.skipped = append(p.skipped, token)
			continue
		}
		p.parsed = append(p.parsed, n)
	}
	return p.Notes()
}

func parseToken(token string) (Note, bool) {
	var letter, accidental, octave string
	switch {
	case bareName.MatchString(token):
		letter, accidental = token[:1], token[1:]
	case upToOctave9.MatchString(token):
		letter, accidental, octave = token[:1], token[1:len(token)-1], token[len(token)-1:]
	case octave10.MatchString(token):
		letter, accidental, octave = token[:1], token[1:len(token)-2], token[len(token)-2:]
	default:
		return Note{}, false
	}
	o := DefaultOctave
	if octave != "" {
		var err error
		if o, err = strconv.Atoi(octave); err != nil {
			return Note{}, false
		}
	}
	n, err := NewNote(letter, accidental, o, Quarter)
	if err != nil {
		return Note{}, false
	}
	return n, true
}

func (p *Parser) Notes() []Note {
	return append([]Note{}, p.parsed...)
}

// Count is the number of notes found by the last parse.
func (p *Parser) Count() int {
	return len(p.parsed)
}

// Skipped lists the tokens of the last parse that were not notes.
func (p *Parser) Skipped() []string {
	return append([]string(nil), p.skipped...)
}
