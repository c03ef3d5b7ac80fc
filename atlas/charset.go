package atlas

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Charset is the set of runes an atlas build rasterizes.
// It wraps a unicode.RangeTable so charsets compose with the standard
// range tables (unicode.Latin, unicode.Greek, ...) and stay deduplicated.
//
// The zero value is an empty charset; builds treat it as ASCII.
type Charset struct {
	table *unicode.RangeTable
}

// ASCII returns the printable ASCII charset (codepoints 32 through 126).
// This is the default charset for atlas builds.
func ASCII() Charset {
	return RuneRange(' ', '~')
}

// RuneRange returns a charset covering the inclusive codepoint range [lo, hi].
func RuneRange(lo, hi rune) Charset {
	if hi < lo {
		lo, hi = hi, lo
	}
	runes := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		runes = append(runes, r)
	}
	return Charset{table: rangetable.New(runes...)}
}

// Runes returns a charset covering exactly the given runes.
func Runes(runes ...rune) Charset {
	return Charset{table: rangetable.New(runes...)}
}

// Merge combines several charsets and range tables into one charset.
func Merge(sets ...Charset) Charset {
	tables := make([]*unicode.RangeTable, 0, len(sets))
	for _, s := range sets {
		if s.table != nil {
			tables = append(tables, s.table)
		}
	}
	return Charset{table: rangetable.Merge(tables...)}
}

// FromTable wraps an existing range table (e.g. unicode.Latin) as a charset.
func FromTable(t *unicode.RangeTable) Charset {
	return Charset{table: t}
}

// Contains reports whether r is part of the charset.
func (c Charset) Contains(r rune) bool {
	if c.table == nil {
		return false
	}
	return unicode.Is(c.table, r)
}

// Len returns the number of runes in the charset.
func (c Charset) Len() int {
	n := 0
	c.visit(func(rune) {
		n++
	})
	return n
}

// All returns every rune of the charset in ascending codepoint order.
// Atlas packing iterates this order, which is what makes builds
// deterministic.
func (c Charset) All() []rune {
	runes := make([]rune, 0, 128)
	c.visit(func(r rune) {
		runes = append(runes, r)
	})
	return runes
}

// visit walks the underlying range table in ascending order.
func (c Charset) visit(fn func(rune)) {
	if c.table == nil {
		return
	}
	for _, r16 := range c.table.R16 {
		stride := rune(r16.Stride)
		if stride == 0 {
			stride = 1
		}
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += stride {
			fn(r)
		}
	}
	for _, r32 := range c.table.R32 {
		stride := rune(r32.Stride)
		if stride == 0 {
			stride = 1
		}
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += stride {
			fn(r)
		}
	}
}
