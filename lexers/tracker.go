package lexers

import "github.com/reusee/pilex/diags"

// Tracker follows the position of a rune cursor.
type Tracker struct {
	pos diags.Pos
}

func NewTracker() Tracker {
	return Tracker{
		pos: diags.Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Pos is the position of the next rune to be consumed.
func (t Tracker) Pos() diags.Pos {
	return t.pos
}

func (t *Tracker) Advance(r rune) {
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 1
	} else {
		t.pos.Column++
	}
}
