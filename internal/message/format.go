package message

import "strings"

// Ellipsis replaces the cut-off part of over-long words and of an overflowing pane.
const Ellipsis = "..."

// Wrap packs one notice into rows of exactly width runes without breaking
// words. Words longer than width are cut to width-3 runes plus Ellipsis.
// A notice without words yields a single blank row.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var flat []rune
	cur := 0 // runes used on the current row
	for _, field := range strings.Fields(text) {
		word := fitWord([]rune(field), width)
		n := len(word)
		switch {
		case n+cur < width:
			flat = append(flat, word...)
			flat = append(flat, ' ')
			cur += n + 1
		case n+cur == width:
			flat = append(flat, word...)
			cur = 0
		default:
			flat = append(flat, spaces(width-cur)...)
			flat = append(flat, word...)
			if n < width {
				flat = append(flat, ' ')
				cur = n + 1
			} else {
				cur = n
			}
		}
	}
	if cur > 0 || len(flat) == 0 {
		flat = append(flat, spaces(width-cur)...)
	}

	rows := make([]string, 0, len(flat)/width)
	for i := 0; i+width <= len(flat); i += width {
		rows = append(rows, string(flat[i:i+width]))
	}
	return rows
}

// Format renders notices into a flat string meant to be read width runes at
// a time as successive display rows. Notices are separated by one blank row.
// When the rows exceed height, only the first height rows are kept and the
// last three runes of the final row become Ellipsis, so the result is always
// a whole number of rows. shown is the number of notices (from the front)
// whose rows all made it into the output untouched. A first notice needing
// the whole pane or more counts as shown, since it can never fit untouched.
func Format(texts []string, width, height int) (out string, shown int) {
	if width <= 0 || height <= 0 {
		return "", 0
	}

	blank := string(spaces(width))
	var rows []string
	ends := make([]int, 0, len(texts))
	for i, text := range texts {
		if i > 0 {
			rows = append(rows, blank)
		}
		rows = append(rows, Wrap(text, width)...)
		ends = append(ends, len(rows))
	}

	kept := len(rows)
	if len(rows) > height {
		rows = rows[:height]
		rows[height-1] = withEllipsis(rows[height-1], width)
		kept = height - 1
	}
	for _, end := range ends {
		if end > kept {
			break
		}
		shown++
	}
	if shown == 0 && len(texts) > 0 {
		shown = 1
	}
	return strings.Join(rows, ""), shown
}

// fitWord cuts a word longer than width down to width runes ending in Ellipsis.
func fitWord(word []rune, width int) []rune {
	if len(word) <= width {
		return word
	}
	keep := width - len(Ellipsis)
	if keep < 0 {
		keep = 0
	}
	out := make([]rune, 0, width)
	out = append(out, word[:keep]...)
	out = append(out, []rune(Ellipsis)...)
	return out[:width]
}

// withEllipsis overwrites the tail of a row with Ellipsis.
func withEllipsis(row string, width int) string {
	r := []rune(row)
	e := []rune(Ellipsis)
	if width < len(e) {
		return string(e[:width])
	}
	copy(r[width-len(e):], e)
	return string(r)
}

func spaces(n int) []rune {
	if n <= 0 {
		return nil
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = ' '
	}
	return out
}
