// Package richtext models per-character colored text as flat value types.
// It is independent of fonts and rendering: callers (syntax highlighters,
// typing-state trackers) decide colors, layout consumes the result.
//
// A ColoredText always holds at least one line. Appending '\n' ends the
// current line and starts a new empty one; nothing ever deletes a line short
// of rebuilding the whole value.
package richtext

import (
	"iter"
	"strings"

	"github.com/gogpu/textforge"
)

// ColoredChar is one character with its foreground color and an optional
// background highlight (the caret marker in typing UIs).
type ColoredChar struct {
	Ch    rune
	Color textforge.RGBA

	// Background is nil for ordinary characters. When set, layout emits a
	// solid quad behind the character spanning its full advance and line
	// height.
	Background *textforge.RGBA
}

// ColoredLine is an ordered run of colored characters without line breaks.
type ColoredLine struct {
	Chars []ColoredChar
}

// Push appends a character with the given color.
func (l *ColoredLine) Push(ch rune, color textforge.RGBA) {
	l.Chars = append(l.Chars, ColoredChar{Ch: ch, Color: color})
}

// PushWithBackground appends a character with a background highlight.
func (l *ColoredLine) PushWithBackground(ch rune, color, background textforge.RGBA) {
	l.Chars = append(l.Chars, ColoredChar{Ch: ch, Color: color, Background: &background})
}

// PushString appends every character of text with the same color.
// The text must not contain line breaks; use ColoredText for multi-line
// content.
func (l *ColoredLine) PushString(text string, color textforge.RGBA) {
	for _, ch := range text {
		l.Push(ch, color)
	}
}

// Len returns the number of characters in the line.
func (l *ColoredLine) Len() int {
	return len(l.Chars)
}

// ColoredText is an ordered sequence of colored lines.
// The zero value is not usable; construct with New or FromString so the
// at-least-one-line invariant holds.
type ColoredText struct {
	Lines []ColoredLine
}

// New creates an empty text with a single empty line.
func New() *ColoredText {
	return &ColoredText{Lines: make([]ColoredLine, 1)}
}

// FromString builds a text from s, splitting on '\n', with every character
// in the same color.
func FromString(s string, color textforge.RGBA) *ColoredText {
	t := New()
	t.PushString(s, color)
	return t
}

// Push appends a character to the last line. A '\n' starts a new empty
// line instead of being stored.
func (t *ColoredText) Push(ch rune, color textforge.RGBA) {
	if ch == '\n' {
		t.Lines = append(t.Lines, ColoredLine{})
		return
	}
	t.lastLine().Push(ch, color)
}

// PushWithBackground appends a character with a background highlight.
// A '\n' starts a new empty line; the background is dropped in that case.
func (t *ColoredText) PushWithBackground(ch rune, color, background textforge.RGBA) {
	if ch == '\n' {
		t.Lines = append(t.Lines, ColoredLine{})
		return
	}
	t.lastLine().PushWithBackground(ch, color, background)
}

// PushString appends every character of text with the same color,
// splitting lines on '\n'.
func (t *ColoredText) PushString(text string, color textforge.RGBA) {
	for _, ch := range text {
		t.Push(ch, color)
	}
}

// PushColoredChar appends a prepared character, respecting line breaks.
func (t *ColoredText) PushColoredChar(c ColoredChar) {
	if c.Ch == '\n' {
		t.Lines = append(t.Lines, ColoredLine{})
		return
	}
	line := t.lastLine()
	line.Chars = append(line.Chars, c)
}

// At returns a pointer to the character at the given flat index, counting
// each line break as exactly one index slot between lines. The break slot
// itself is not addressable: At returns nil for it, as well as for indices
// past the end.
//
// The pointer aliases the text's storage, so callers may mutate the
// character in place (e.g. recolor the current typing position). It is
// invalidated by the next append.
func (t *ColoredText) At(index int) *ColoredChar {
	if index < 0 {
		return nil
	}
	for li := range t.Lines {
		line := &t.Lines[li]
		if index < len(line.Chars) {
			return &line.Chars[index]
		}
		index -= len(line.Chars)

		if li == len(t.Lines)-1 {
			return nil
		}
		if index == 0 {
			// The line-break slot: occupies an index, addresses nothing.
			return nil
		}
		index--
	}
	return nil
}

// TotalChars returns the number of characters across all lines.
// Line-break slots are not counted.
func (t *ColoredText) TotalChars() int {
	n := 0
	for i := range t.Lines {
		n += len(t.Lines[i].Chars)
	}
	return n
}

// All returns an iterator over every character in reading order.
// Line breaks are not yielded.
func (t *ColoredText) All() iter.Seq[ColoredChar] {
	return func(yield func(ColoredChar) bool) {
		for i := range t.Lines {
			for _, c := range t.Lines[i].Chars {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// String flattens the text back to a plain string, joining lines with '\n'.
// FromString(s, c).String() == s for any s.
func (t *ColoredText) String() string {
	var sb strings.Builder
	for i := range t.Lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range t.Lines[i].Chars {
			sb.WriteRune(c.Ch)
		}
	}
	return sb.String()
}

// lastLine returns the line new characters append to.
func (t *ColoredText) lastLine() *ColoredLine {
	return &t.Lines[len(t.Lines)-1]
}
