package pretzyl

import (
	"strings"
	"unicode"
)

// splitUnits breaks program text into raw lexical units. Units are separated
// by whitespace; the bracket runes always form units of their own; quoted
// runs are kept whole, delimiters included, so that whitespace and brackets
// inside a string do not split it.
func splitUnits(text string, open, close rune) []string {
	var units []string
	var buf strings.Builder
	var quote rune

	flush := func() {
		if buf.Len() > 0 {
			units = append(units, buf.String())
			buf.Reset()
		}
	}

	for _, r := range text {
		switch {
		case quote != 0:
			buf.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case strings.ContainsRune(quoteRunes, r):
			quote = r
			buf.WriteRune(r)
		case r == open || r == close:
			flush()
			units = append(units, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return units
}

// tokenize turns program text into the token sequence the evaluator runs.
// Each raw unit is first checked against the macro table; a match is re-lexed
// from its expansion text in a single pass, so the output of an expansion is
// never itself expanded. Every resulting unit is then classified as a literal
// or a Reference. Tokenization cannot fail; bracket balance is checked by the
// heap, not here.
func (p *Pretzyl) tokenize(text string) []interface{} {
	units := splitUnits(text, p.openBracket, p.closeBracket)
	tokens := make([]interface{}, 0, len(units))
	for _, unit := range units {
		if expansion, ok := p.macros[unit]; ok {
			for _, expanded := range splitUnits(expansion, p.openBracket, p.closeBracket) {
				tokens = append(tokens, convertToken(expanded))
			}
			continue
		}
		tokens = append(tokens, convertToken(unit))
	}
	return tokens
}
