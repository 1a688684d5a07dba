package numeral

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Parse reads a Korean numeral phrase such as "이억오천만", "삼천이백" or
// "3억 5천" and returns its value. Digit words and unit words may be mixed
// freely and spacing is ignored.
//
// ok is false when the text holds no numeral or the value is zero, so "영"
// does not parse.
func Parse(text string) (value float64, ok bool) {
	s := normalize(text)
	if s == "" {
		return 0, false
	}

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative, s = true, s[1:]
	case strings.HasPrefix(s, minusWord):
		negative, s = true, s[len(minusWord):]
	}

	var st scanState
	// ASCII digits never touch an unrecognized rune: "1e5", "0x10" and
	// "12abc" are malformed numbers, not numerals with noise around them.
	afterASCII, afterUnknown := false, false
	for s != "" {
		if tok, d, found := matchDigit(s); found {
			ascii := isASCIIDigit(tok)
			if ascii && afterUnknown {
				return 0, false
			}
			st.digit(d)
			s = s[len(tok):]
			afterASCII, afterUnknown = ascii, false
			continue
		}
		if u, found := matchUnit(s); found {
			st.unit(u)
			s = s[len(u.Word):]
			afterASCII, afterUnknown = false, false
			continue
		}
		if tok, found := matchPoint(s); found {
			st.point()
			s = s[len(tok):]
			afterASCII, afterUnknown = tok == ".", false
			continue
		}
		if afterASCII {
			return 0, false
		}
		// Anything else ends the current digit run.
		st.fold()
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		afterASCII, afterUnknown = false, true
	}

	total := st.total()
	if !(total > 0) || !isFinite(total) {
		return 0, false
	}
	if negative {
		total = -total
	}
	return total, true
}

// scanState carries the accumulators of a left-to-right scan.
type scanState struct {
	result float64 // closed large-unit groups
	group  float64 // current group below 만

	pending bool    // a digit run is waiting for a unit
	digits  float64 // integer digits of the run
	frac    float64 // fraction digits of the run
	fracDen float64 // 10^k after k fraction digits; 0 before a decimal point
}

func (st *scanState) digit(d int) {
	if st.fracDen > 0 {
		st.frac = st.frac*10 + float64(d)
		st.fracDen *= 10
	} else {
		st.digits = st.digits*10 + float64(d)
	}
	st.pending = true
}

func (st *scanState) point() {
	if st.fracDen == 0 {
		st.fracDen = 1
		st.pending = true
	}
}

func (st *scanState) unit(u Unit) {
	v := st.pendingValue()
	if !st.pending {
		// A bare unit counts once, unless a large unit closes a group that
		// small units already filled: 삼천만 is 3000 x 만.
		v = 1
		if u.Large() && st.group > 0 {
			v = 0
		}
	}
	if u.Large() {
		st.result += (st.group + v) * u.Value
		st.group = 0
	} else {
		st.group += v * u.Value
	}
	st.clear()
}

func (st *scanState) fold() {
	st.group += st.pendingValue()
	st.clear()
}

func (st *scanState) total() float64 {
	return st.result + st.group + st.pendingValue()
}

func (st *scanState) pendingValue() float64 {
	if st.fracDen > 1 {
		return (st.digits*st.fracDen + st.frac) / st.fracDen
	}
	return st.digits
}

func (st *scanState) clear() {
	st.pending = false
	st.digits, st.frac, st.fracDen = 0, 0, 0
}

// normalize composes Hangul, folds full-width forms and drops whitespace and
// digit separators.
func normalize(text string) string {
	text = width.Fold.String(norm.NFC.String(text))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, text)
}

func matchDigit(s string) (string, int, bool) {
	for _, tok := range digitTokens {
		if strings.HasPrefix(s, tok) {
			return tok, digitWords[tok], true
		}
	}
	return "", 0, false
}

func isASCIIDigit(tok string) bool {
	return len(tok) == 1 && tok[0] >= '0' && tok[0] <= '9'
}

func matchUnit(s string) (Unit, bool) {
	for _, u := range unitTokens {
		if strings.HasPrefix(s, u.Word) {
			return u, true
		}
	}
	return Unit{}, false
}

func matchPoint(s string) (string, bool) {
	for _, tok := range []string{".", pointWord} {
		if strings.HasPrefix(s, tok) {
			return tok, true
		}
	}
	return "", false
}
