// Package typeable classifies runes by whether they can be produced on
// a standard US keyboard. Callers filter text before handing it to a
// layout surface so users are never asked to type emoji or scripts
// their keyboard cannot reach.
package typeable

import (
	"fmt"

	"github.com/gogpu/textforge/atlas"
)

// Reason categorizes why a rune is not typeable.
type Reason int

const (
	ReasonEmoji Reason = iota
	ReasonArabic
	ReasonHebrew
	ReasonCJK
	ReasonCyrillic
	ReasonMathSymbol
	ReasonBoxDrawing
	ReasonOtherSymbol
)

// String returns the human-readable category name.
func (r Reason) String() string {
	switch r {
	case ReasonEmoji:
		return "emoji"
	case ReasonArabic:
		return "Arabic script"
	case ReasonHebrew:
		return "Hebrew script"
	case ReasonCJK:
		return "CJK character (Chinese/Japanese/Korean)"
	case ReasonCyrillic:
		return "Cyrillic script"
	case ReasonMathSymbol:
		return "mathematical symbol"
	case ReasonBoxDrawing:
		return "box-drawing character"
	default:
		return "special Unicode symbol"
	}
}

// Category tables, built on the same charset machinery the atlas uses.
var (
	emoji = atlas.Merge(
		atlas.RuneRange(0x1F300, 0x1F9FF), // pictographs, emoticons, transport
		atlas.RuneRange(0x1FA00, 0x1FAFF), // extended pictographic
		atlas.RuneRange(0x2600, 0x26FF),   // miscellaneous symbols
		atlas.RuneRange(0x2700, 0x27BF),   // dingbats
	)
	arabic = atlas.Merge(
		atlas.RuneRange(0x0600, 0x06FF),
		atlas.RuneRange(0x0750, 0x077F), // supplement
		atlas.RuneRange(0x08A0, 0x08FF), // extended-A
	)
	hebrew = atlas.RuneRange(0x0590, 0x05FF)
	cjk    = atlas.Merge(
		atlas.RuneRange(0x4E00, 0x9FFF), // unified ideographs
		atlas.RuneRange(0x3040, 0x309F), // hiragana
		atlas.RuneRange(0x30A0, 0x30FF), // katakana
		atlas.RuneRange(0xAC00, 0xD7AF), // hangul syllables
	)
	cyrillic = atlas.Merge(
		atlas.RuneRange(0x0400, 0x04FF),
		atlas.RuneRange(0x0500, 0x052F), // supplement
	)
	mathSymbols = atlas.RuneRange(0x2200, 0x22FF)
	boxDrawing  = atlas.RuneRange(0x2500, 0x257F)
)

// IsTypeable reports whether r can be produced on a US keyboard.
//
// Printable ASCII, the common whitespace characters, and the Latin-1
// supplement (accented characters reachable via dead keys or Alt
// codes) count as typeable. Everything else does not.
func IsTypeable(r rune) bool {
	switch {
	case r >= ' ' && r <= '~':
		return true
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= '\u00A0' && r <= '\u00FF':
		// Latin-1 supplement.
		return true
	}
	return false
}

// Why returns the category of an untypeable rune. The second return
// value is false when r is typeable.
func Why(r rune) (Reason, bool) {
	if IsTypeable(r) {
		return 0, false
	}
	switch {
	case emoji.Contains(r):
		return ReasonEmoji, true
	case arabic.Contains(r):
		return ReasonArabic, true
	case hebrew.Contains(r):
		return ReasonHebrew, true
	case cjk.Contains(r):
		return ReasonCJK, true
	case cyrillic.Contains(r):
		return ReasonCyrillic, true
	case mathSymbols.Contains(r):
		return ReasonMathSymbol, true
	case boxDrawing.Contains(r):
		return ReasonBoxDrawing, true
	}
	return ReasonOtherSymbol, true
}

// Describe returns a human-readable explanation for an untypeable rune,
// or "" when r is typeable.
func Describe(r rune) string {
	reason, ok := Why(r)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%q (%s) - not typeable on US keyboard", r, reason)
}
