package hangul

import (
	"strings"

	gohangul "github.com/suapapa/go_hangul"
)

var (
	// 초성 (0~18)
	initials = []string{"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h"}
	// 중성 (0~20)
	medials = []string{"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i"}
	// 종성 (0~27, 0은 종성 없음). 받침은 음절 끝 발음으로 적는다 (십 -> sip, 값 -> gap).
	finals = []string{"", "k", "k", "k", "n", "n", "n", "t", "l", "k", "m", "l", "l", "l", "p", "l", "m", "p", "p", "t", "t", "ng", "t", "t", "k", "t", "p", "t"}
)

// Romanize converts Korean text to romanized form.
func Romanize(word string) string {
	return RomanizeSyllables(word, "")
}

// RomanizeSyllables romanizes text and writes sep between adjacent Hangul
// syllables, so "일만 이천" becomes "il-man i-cheon" with sep "-".
// Other runes are copied unchanged.
func RomanizeSyllables(text, sep string) string {
	var result strings.Builder
	prevSyllable := false
	for _, r := range text {
		syllable, ok := romanizeSyllable(r)
		if !ok {
			result.WriteRune(r)
			prevSyllable = false
			continue
		}
		if prevSyllable {
			result.WriteString(sep)
		}
		result.WriteString(syllable)
		prevSyllable = true
	}
	return result.String()
}

func romanizeSyllable(r rune) (string, bool) {
	if !gohangul.IsHangul(r) {
		return "", false
	}

	i, m, f := gohangul.Split(r)

	idxI := int(i - 0x1100)
	idxM := int(m - 0x1161)
	if idxI < 0 || idxI >= len(initials) || idxM < 0 || idxM >= len(medials) {
		// A lone jamo, not a full syllable.
		return "", false
	}

	idxF := 0
	if f != 0 {
		idxF = int(f - 0x11A7)
	}

	s := initials[idxI] + medials[idxM]
	if idxF > 0 && idxF < len(finals) {
		s += finals[idxF]
	}
	return s, true
}

// ContainsHangul reports whether s has at least one Hangul rune.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if gohangul.IsHangul(r) {
			return true
		}
	}
	return false
}
