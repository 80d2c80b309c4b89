package ui

// upsideDown maps characters to look-alikes turned 180 degrees.
// Characters without one are kept as is.
var upsideDown = map[rune]rune{
	'A': '∀', 'B': 'ꓭ', 'C': 'Ɔ', 'D': 'ᗡ', 'E': 'Ǝ', 'F': 'Ⅎ', 'G': '⅁',
	'J': 'ſ', 'K': 'ꓘ', 'L': '˥', 'M': 'W', 'P': 'Ԁ', 'Q': 'Ό', 'R': 'ꓤ',
	'T': '⊥', 'U': '∩', 'V': 'Λ', 'W': 'M', 'Y': '⅄',
	'a': 'ɐ', 'b': 'q', 'c': 'ɔ', 'd': 'p', 'e': 'ǝ', 'f': 'ɟ', 'g': 'ƃ',
	'h': 'ɥ', 'i': 'ᴉ', 'j': 'ɾ', 'k': 'ʞ', 'm': 'ɯ', 'n': 'u', 'p': 'd',
	'q': 'b', 'r': 'ɹ', 't': 'ʇ', 'u': 'n', 'v': 'ʌ', 'w': 'ʍ', 'y': 'ʎ',
	'.': '˙', ',': '\'', '!': '¡', '?': '¿',
}

// FlipText renders text turned 180 degrees: reversed, with each character
// replaced by its upside-down look-alike
func FlipText(text string) string {
	runes := []rune(text)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if flipped, ok := upsideDown[r]; ok {
			r = flipped
		}
		out[len(runes)-1-i] = r
	}
	return string(out)
}
