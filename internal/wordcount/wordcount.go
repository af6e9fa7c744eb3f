// Package wordcount counts words the way word processors do: whitespace
// separates words, every CJK character is a word on its own, and a run of
// two or more dashes breaks words apart.
package wordcount

import (
	"fmt"
	"os"
	"unicode"
)

// cjk lists the scripts whose characters count as one word each.
var cjk = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
}

// Count returns the number of words in s.
func Count(s string) int {
	words := 0
	wordLen := 0
	dashes := 0

	for _, r := range s {
		if unicode.IsSpace(r) {
			dashes = 0
			if wordLen > 0 {
				words++
				wordLen = 0
			}
			continue
		}

		if r == '-' {
			dashes++
			if dashes == 2 {
				// The first dash was appended to the word in progress; a word
				// made of that dash alone is not a word.
				if wordLen > 1 {
					words++
				}
				wordLen = 0
			}
			if dashes >= 2 {
				continue
			}
		} else {
			dashes = 0
		}

		if unicode.IsOneOf(cjk, r) {
			if wordLen > 0 {
				words++
				wordLen = 0
			}
			words++
			continue
		}

		wordLen++
	}

	if wordLen > 0 {
		words++
	}
	return words
}

// CountFile reads path in full and counts its words.
func CountFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return Count(string(data)), nil
}
