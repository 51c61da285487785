// Package palette holds the set of colours under inspection and derives the
// readout rows and the foreground/background contrast matrix from it.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
)

// MaxColours is the number of user-supplied slots.
const MaxColours = 5

// References are appended after the user colours in every matrix.
var References = []colorutil.RGB{colorutil.Black, colorutil.White}

var ErrTooManyColours = fmt.Errorf("at most %d colours are supported", MaxColours)

// Entry is one parsed colour together with the text it was parsed from.
// Slot is the input position, counting blank inputs.
type Entry struct {
	Slot  int           `json:"slot"`
	Input string        `json:"input"`
	RGB   colorutil.RGB `json:"rgb"`
}

func (e Entry) Hex() string {
	return e.RGB.Hex()
}

// EntryError ties a parse failure to the slot that produced it.
type EntryError struct {
	Index int
	Input string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("colour %d: %v", e.Index+1, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// Palette is an immutable list of up to MaxColours user colours. Methods
// that change it return a new value.
type Palette struct {
	entries []Entry
}

// New parses inputs into a palette. Blank inputs are skipped; every
// malformed input is reported, joined into a single error.
func New(inputs []string) (Palette, error) {
	var (
		entries []Entry
		errs    []error
		used    int
	)
	for i, raw := range inputs {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		used++
		if used > MaxColours {
			return Palette{}, fmt.Errorf("%w (got %d)", ErrTooManyColours, countNonBlank(inputs))
		}
		rgb, err := colorutil.ParseColor(trimmed)
		if err != nil {
			errs = append(errs, &EntryError{Index: i, Input: raw, Err: err})
			continue
		}
		entries = append(entries, Entry{Slot: i, Input: trimmed, RGB: rgb})
	}
	if len(errs) > 0 {
		return Palette{}, errors.Join(errs...)
	}
	return Palette{entries: entries}, nil
}

func (p Palette) Len() int {
	return len(p.entries)
}

// Colours returns a copy of the user entries.
func (p Palette) Colours() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// All returns the user entries followed by the black and white references.
func (p Palette) All() []Entry {
	out := make([]Entry, 0, len(p.entries)+len(References))
	out = append(out, p.entries...)
	for _, ref := range References {
		out = append(out, Entry{Slot: -1, Input: ref.Hex(), RGB: ref})
	}
	return out
}

// With returns a copy of p with slot i set to the colour parsed from s.
// i may equal Len() to append while the palette has room.
func (p Palette) With(i int, s string) (Palette, error) {
	if i < 0 || i > len(p.entries) || i >= MaxColours {
		return p, fmt.Errorf("colour index %d out of range", i+1)
	}
	rgb, err := colorutil.ParseColor(s)
	if err != nil {
		return p, &EntryError{Index: i, Input: s, Err: err}
	}
	next := p.Colours()
	entry := Entry{Slot: i, Input: strings.TrimSpace(s), RGB: rgb}
	if i == len(next) {
		if i > 0 {
			entry.Slot = next[i-1].Slot + 1
		}
		next = append(next, entry)
	} else {
		entry.Slot = next[i].Slot
		next[i] = entry
	}
	return Palette{entries: next}, nil
}

// Hexes lists the user colours in #rrggbb form.
func (p Palette) Hexes() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Hex()
	}
	return out
}

func countNonBlank(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}
