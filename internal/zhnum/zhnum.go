// Package zhnum converts Chinese numeral strings (零一二三四五六七八九,
// 十, 百) to integers. The corpus never numbers volumes past a few hundred,
// so 千 and above are intentionally unsupported.
package zhnum

// digits maps a single numeral rune to its value. A bare marker rune
// (十, 百) read alone denotes 10 or 100.
var digits = map[rune]int{
	'零': 0,
	'一': 1,
	'二': 2,
	'三': 3,
	'四': 4,
	'五': 5,
	'六': 6,
	'七': 7,
	'八': 8,
	'九': 9,
	'十': 10,
	'百': 100,
}

// Convert parses a Chinese numeral string into an integer.
//
// Multi-rune input is scanned left to right with a (pending, total)
// accumulator: 百 commits pending*100 to the total, 十 commits pending*10,
// and a ones digit replaces pending. A marker with no pending digit implies
// a leading 一, so 十 is 10, 百六十一 is 161, and 一百二 is 102 (trailing
// pending adds as ones).
//
// Input is assumed well formed; runes outside the numeral set contribute
// zero rather than raising an error.
func Convert(s string) int {
	runes := []rune(s)
	if len(runes) == 1 {
		return digits[runes[0]]
	}

	total := 0
	pending := 0
	for _, r := range runes {
		switch r {
		case '百':
			if pending == 0 {
				pending = 1
			}
			total += pending * 100
			pending = 0
		case '十':
			if pending == 0 {
				pending = 1
			}
			total += pending * 10
			pending = 0
		default:
			pending = digits[r]
		}
	}
	return total + pending
}
