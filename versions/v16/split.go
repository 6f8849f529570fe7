package v16

import "regexp"

// Seq is a push iterator over strings. The yield callback returns false to
// stop the iteration early.
type Seq func(yield func(string) bool)

// SplitToSequence returns the pieces of text found between the matches of
// re. Pieces are produced on demand as the sequence is consumed.
func SplitToSequence(text string, re *regexp.Regexp) Seq {
	return func(yield func(string) bool) {
		last := 0
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if !yield(text[last:loc[0]]) {
				return
			}
			last = loc[1]
		}
		yield(text[last:])
	}
}

// Collect drains seq into a slice.
func Collect(seq Seq) []string {
	out := []string{}
	seq(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}
