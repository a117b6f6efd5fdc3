package zpl

import (
	"bytes"
	"strings"
)

// Repeat count letters: G..Y stand for 1..19, g..z for 20..400 in steps of 20.
const (
	lowCounts    = "GHIJKLMNOPQRSTUVWXY"
	highCounts   = "ghijklmnopqrstuvwxyz"
	maxHighCount = 400
)

// Run is a maximal sequence of one hex character within a row.
type Run struct {
	Char  byte
	Count int
}

// Runs splits one hex row into runs.
func Runs(row string) []Run {
	var runs []Run
	for i := 0; i < len(row); {
		j := i + 1
		for j < len(row) && row[j] == row[i] {
			j++
		}
		runs = append(runs, Run{Char: row[i], Count: j - i})
		i = j
	}
	return runs
}

// appendCountLetter appends the letter for n. Counts without a letter of
// their own (0, or a non multiple of 20 above 19) append nothing.
func appendCountLetter(dst []byte, n int) []byte {
	switch {
	case n >= 1 && n <= len(lowCounts):
		return append(dst, lowCounts[n-1])
	case n >= 20 && n <= maxHighCount && n%20 == 0:
		return append(dst, highCounts[n/20-1])
	}
	return dst
}

// AppendRun appends the compressed form of r: the count letters followed by
// the character once. Counts above 20 are split into a multiple of 20 (one z
// per whole 400, then the rest below 400) and a remainder below 20.
func AppendRun(dst []byte, r Run) []byte {
	n := r.Count
	if n > 20 {
		multi20 := n / 20 * 20
		dst = appendCountLetter(dst, min(multi20, maxHighCount))

		if over := multi20 / maxHighCount; over > 0 {
			for ; over > 1; over-- {
				dst = appendCountLetter(dst, maxHighCount)
			}
			if rest := n % maxHighCount / 20 * 20; rest > 0 {
				dst = appendCountLetter(dst, rest)
			}
		}
		n %= 20
	}
	dst = appendCountLetter(dst, n)
	return append(dst, r.Char)
}

// CompressHex rewrites newline separated hex rows with the ZPL compression
// alphabet. widthBytes is the whole-byte width of the image (width/8); a row
// whose trailing run of 0 or F is at least widthBytes*2 long ends with , or !.
// A row that compresses to the same text as the row before it becomes :.
func CompressHex(hexText string, widthBytes int) string {
	maxLineLen := widthBytes * 2

	var out, line, prev []byte
	hasPrev := false

	for rest := hexText; rest != ""; {
		var row string
		row, rest, _ = strings.Cut(rest, "\n")
		if row == "" {
			continue
		}

		line = line[:0]
		runs := Runs(row)
		last := len(runs) - 1
		for _, r := range runs[:last] {
			line = AppendRun(line, r)
		}
		switch r := runs[last]; {
		case r.Count >= maxLineLen && r.Char == '0':
			line = append(line, ',')
		case r.Count >= maxLineLen && r.Char == 'F':
			line = append(line, '!')
		default:
			line = AppendRun(line, r)
		}

		if hasPrev && bytes.Equal(line, prev) {
			out = append(out, ':')
		} else {
			out = append(out, line...)
		}
		prev = append(prev[:0], line...)
		hasPrev = true
	}

	return string(out)
}
