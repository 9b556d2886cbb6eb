package music

import "fmt"

type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	default:
		return ""
	}
}

// ParseAccidental accepts "", "#" and "b".
func ParseAccidental(s string) (Accidental, error) {
	switch s {
	case "":
		return Natural, nil
	case "#":
		return Sharp, nil
	case "b":
		return Flat, nil
	}
	return Natural, fmt.Errorf("%w: unknown accidental [%s]", ErrInvalidArgument, s)
}

// Name is one of the 17 supported spellings of a pitch class.
// Cb, Fb, E# and B# are not part of the model.
type Name int

const (
	C Name = iota
	Csharp
	Dflat
	D
	Dsharp
	Eflat
	E
	F
	Fsharp
	Gflat
	G
	Gsharp
	Aflat
	A
	Asharp
	Bflat
	B
)

type spelling struct {
	letter     byte
	accidental Accidental
	semitone   int
	literal    string
}

var spellings = [...]spelling{
	C:      {'C', Natural, 0, "C"},
	Csharp: {'C', Sharp, 1, "Csharp"},
	Dflat:  {'D', Flat, 1, "Dflat"},
	D:      {'D', Natural, 2, "D"},
	Dsharp: {'D', Sharp, 3, "Dsharp"},
	Eflat:  {'E', Flat, 3, "Eflat"},
	E:      {'E', Natural, 4, "E"},
	F:      {'F', Natural, 5, "F"},
	Fsharp: {'F', Sharp, 6, "Fsharp"},
	Gflat:  {'G', Flat, 6, "Gflat"},
	G:      {'G', Natural, 7, "G"},
	Gsharp: {'G', Sharp, 8, "Gsharp"},
	Aflat:  {'A', Flat, 8, "Aflat"},
	A:      {'A', Natural, 9, "A"},
	Asharp: {'A', Sharp, 10, "Asharp"},
	Bflat:  {'B', Flat, 10, "Bflat"},
	B:      {'B', Natural, 11, "B"},
}

// the 5 enharmonic pairs, sharp spelling first
var enharmonics = [5][2]Name{
	{Asharp, Bflat},
	{Csharp, Dflat},
	{Dsharp, Eflat},
	{Fsharp, Gflat},
	{Gsharp, Aflat},
}

// LookupName resolves a letter [A-G] and an accidental ("", "#", "b") to a spelling.
func LookupName(letter, accidental string) (Name, error) {
	acc, err := ParseAccidental(accidental)
	if err != nil {
		return 0, err
	}
	if len(letter) == 1 {
		for n, sp := range spellings {
			if sp.letter == letter[0] && sp.accidental == acc {
				return Name(n), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: no note named [%s%s]", ErrInvalidArgument, letter, accidental)
}

// LookupLiteral resolves the spelled-out form ("Csharp", "Bflat", "E").
func LookupLiteral(literal string) (Name, error) {
	for n, sp := range spellings {
		if sp.literal == literal {
			return Name(n), nil
		}
	}
	return 0, fmt.Errorf("%w: no note named [%s]", ErrInvalidArgument, literal)
}

func (n Name) valid() bool {
	return n >= C && n <= B
}

func (n Name) Letter() string {
	if !n.valid() {
		return ""
	}
	return string(spellings[n].letter)
}

func (n Name) Accidental() Accidental {
	if !n.valid() {
		return Natural
	}
	return spellings[n].accidental
}

// Semitone is the offset of the pitch class within an octave, C = 0 ... B = 11.
func (n Name) Semitone() int {
	if !n.valid() {
		return -1
	}
	return spellings[n].semitone
}

// Literal is the spelled-out form, e.g. "Csharp".
func (n Name) Literal() string {
	if !n.valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return spellings[n].literal
}

// String is the display form, e.g. "C#".
func (n Name) String() string {
	if !n.valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return n.Letter() + n.Accidental().String()
}

// Equivalent returns the enharmonic partner of an accidental spelling, or the
// name itself when it has no accidental.
func (n Name) Equivalent() (Name, error) {
	if n.valid() && n.Accidental() == Natural {
		return n, nil
	}
	for _, pair := range enharmonics {
		switch n {
		case pair[0]:
			return pair[1], nil
		case pair[1]:
			return pair[0], nil
		}
	}
	return n, fmt.Errorf("%w: could not resolve equivalent note to [%s]", ErrInvalidArgument, n)
}
