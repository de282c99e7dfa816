package domain

import (
	"strings"
	"unicode/utf8"
)

// MaskName keeps the first letter of each word: "Ana Souza" -> "A** S****".
func MaskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(r) + strings.Repeat("*", utf8.RuneCountInString(w[size:]))
	}
	return strings.Join(words, " ")
}
