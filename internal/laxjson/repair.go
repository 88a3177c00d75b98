package laxjson

import (
	"strings"
	"unicode"
)

// Repair quotes bare object keys so lenient hand-typed JSON can be handed
// to a standard decoder. It is a purely syntactic pass: it never fails and
// never validates the full grammar. Text that is already valid JSON passes
// through unchanged.
func Repair(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 16)

	runes := []rune(text)
	inString := false
	escaped := false
	keyPos := false

	// Stack of open containers, 'o' for objects and 'a' for arrays. A comma
	// only reopens key position when the enclosing container is an object.
	var stack []byte

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inString {
			b.WriteRune(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
			keyPos = false
			b.WriteRune(c)
		case '{':
			stack = append(stack, 'o')
			keyPos = true
			b.WriteRune(c)
		case '[':
			stack = append(stack, 'a')
			keyPos = false
			b.WriteRune(c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			keyPos = false
			b.WriteRune(c)
		case ',':
			keyPos = len(stack) > 0 && stack[len(stack)-1] == 'o'
			b.WriteRune(c)
		case ':':
			keyPos = false
			b.WriteRune(c)
		default:
			if keyPos && !unicode.IsSpace(c) {
				j := i
				for j < len(runes) && !endsBareKey(runes[j]) {
					j++
				}
				b.WriteByte('"')
				b.WriteString(string(runes[i:j]))
				b.WriteByte('"')
				i = j - 1
				keyPos = false
				continue
			}
			b.WriteRune(c)
		}
	}

	return b.String()
}

// endsBareKey reports whether c terminates an unquoted key run.
func endsBareKey(c rune) bool {
	return c == ':' || c == ',' || c == '}' || unicode.IsSpace(c)
}
