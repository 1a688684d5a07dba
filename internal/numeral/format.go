package numeral

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/divan/num2words"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jung/hannum/internal/hangul"
)

// Sentinels returned for NaN and infinite input.
const (
	KoreanError  = "입력 오류"
	EnglishError = "Error"
)

// Formats holds every textual representation of one value.
type Formats struct {
	Korean       string `json:"korean" yaml:"korean"`
	Commas       string `json:"commas" yaml:"commas"`
	SinoKorean   string `json:"sino_korean" yaml:"sino_korean"`
	English      string `json:"english" yaml:"english"`
	Scientific   string `json:"scientific" yaml:"scientific"`
	Romanized    string `json:"romanized,omitempty" yaml:"romanized,omitempty"`
	EnglishWords string `json:"english_words,omitempty" yaml:"english_words,omitempty"`
}

// Format renders n in all representations.
func Format(n float64) Formats {
	sino := FormatSinoKorean(n)
	f := Formats{
		Korean:       FormatKorean(n),
		Commas:       FormatWithCommas(n),
		SinoKorean:   sino,
		English:      FormatEnglish(n),
		Scientific:   FormatScientific(n),
		EnglishWords: FormatEnglishWords(n),
	}
	if isFinite(n) {
		f.Romanized = hangul.RomanizeSyllables(sino, "-")
	}
	return f
}

// FormatKorean groups n by powers of 10,000 and labels each group with its
// unit, most significant first: 1234567890000 -> "1 조 2345 억 6789 만".
func FormatKorean(n float64) string {
	if !isFinite(n) {
		return KoreanError
	}
	if n == 0 {
		return "0"
	}

	intPart, frac := decimalParts(n)
	groups := splitGroups(intPart)

	parts := make([]string, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		v := strings.TrimLeft(groups[i], "0")
		if i == 0 {
			if frac != "" {
				if v == "" {
					v = "0"
				}
				v += "." + frac
			}
			if v != "" {
				parts = append(parts, v)
			}
			continue
		}
		if v != "" {
			parts = append(parts, v+" "+groupUnits[i])
		}
	}

	out := strings.Join(parts, " ")
	if n < 0 {
		out = "-" + out
	}
	return out
}

// FormatWithCommas renders n with en-US thousands separators and at most
// three fraction digits.
func FormatWithCommas(n float64) string {
	if !isFinite(n) {
		return ""
	}
	if n == 0 {
		return "0"
	}
	// A Printer must not be shared between goroutines.
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprint(number.Decimal(roundHalfAway(n, 3), number.MaxFractionDigits(3)))
}

// FormatSinoKorean spells n with Sino-Korean numerals: 12345 -> "일만 이천삼백사십오".
// A 1 before 십, 백 or 천 is not spoken.
func FormatSinoKorean(n float64) string {
	if !isFinite(n) {
		return KoreanError
	}
	if n == 0 {
		return sinoDigits[0]
	}

	intPart, frac := decimalParts(n)
	out := readInteger(intPart)
	if frac != "" {
		if out == "" {
			out = sinoDigits[0]
		}
		out += pointWord + readDigits(frac)
	}
	if n < 0 {
		out = minusWord + " " + out
	}
	return out
}

var englishScales = []struct {
	limit float64
	name  string
}{
	{1e15, "Quadrillion"},
	{1e12, "Trillion"},
	{1e9, "Billion"},
	{1e6, "Million"},
	{1e3, "Thousand"},
}

// FormatEnglish approximates n with the largest English scale word it reaches.
func FormatEnglish(n float64) string {
	if !isFinite(n) {
		return EnglishError
	}
	if n == 0 {
		return "0"
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	for _, s := range englishScales {
		if n >= s.limit {
			return fmt.Sprintf("%s%.3f %s", sign, roundHalfAway(n/s.limit, 3), s.name)
		}
	}
	return sign + strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatScientific renders n with a three digit mantissa fraction:
// 123000 -> "1.230 × 10^5".
func FormatScientific(n float64) string {
	if !isFinite(n) {
		return ""
	}
	if n == 0 {
		return "0"
	}

	s := strconv.FormatFloat(roundHalfAway(n, 3-decimalExponent(n)), 'e', 3, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + " × 10^" + strconv.Itoa(e)
}

// decimalExponent returns e such that 1 <= |n| / 10^e < 10.
func decimalExponent(n float64) int {
	s := strconv.FormatFloat(n, 'e', -1, 64)
	_, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp)
	return e
}

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
	bigTen = big.NewInt(10)
)

// roundHalfAway resolves a value lying exactly halfway between two
// candidates with the given number of fraction digits by moving it away
// from zero. strconv and x/text round such ties to even. Any other value
// is returned unchanged, since those already round to the nearest.
// digits may be negative.
func roundHalfAway(x float64, digits int) float64 {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		return x
	}

	exp := digits
	if exp < 0 {
		exp = -exp
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil))
	if digits >= 0 {
		r.Mul(r, scale)
	} else {
		r.Quo(r, scale)
	}
	// A normalized rational is an exact tie only when its denominator is 2.
	if r.Denom().Cmp(bigTwo) != 0 {
		return x
	}

	q := new(big.Int).Quo(r.Num(), r.Denom())
	if x > 0 {
		q.Add(q, bigOne)
	} else {
		q.Sub(q, bigOne)
	}
	out := new(big.Rat).SetInt(q)
	if digits >= 0 {
		out.Quo(out, scale)
	} else {
		out.Mul(out, scale)
	}
	f, _ := out.Float64()
	return f
}

// maxWordsMagnitude is the first value num2words can no longer group.
const maxWordsMagnitude = 1e12

// FormatEnglishWords spells the integer part of n in English words.
// It returns "" when n is not finite or too large to spell.
func FormatEnglishWords(n float64) string {
	if !isFinite(n) {
		return ""
	}
	i := math.Trunc(n)
	if math.Abs(i) >= maxWordsMagnitude {
		return ""
	}
	return num2words.Convert(int(i))
}

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
	"-", "⁻",
)

// Superscript rewrites the exponent after "^" with superscript digits for
// display: "1.230 × 10^-5" -> "1.230 × 10⁻⁵".
func Superscript(s string) string {
	head, exp, ok := strings.Cut(s, "^")
	if !ok {
		return s
	}
	return head + superscripts.Replace(exp)
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// decimalParts returns the integer and fraction digits of |n| taken from its
// shortest exact decimal form.
func decimalParts(n float64) (intPart, frac string) {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	intPart, frac, _ = strings.Cut(s, ".")
	return intPart, frac
}

// splitGroups cuts a digit string into four-digit groups, least significant
// first. The last named unit takes every digit left over.
func splitGroups(intPart string) []string {
	groups := make([]string, 0, len(groupUnits))
	for intPart != "" && len(groups) < len(groupUnits)-1 {
		cut := len(intPart) - groupWidth
		if cut < 0 {
			cut = 0
		}
		groups = append(groups, intPart[cut:])
		intPart = intPart[:cut]
	}
	if intPart != "" {
		groups = append(groups, intPart)
	}
	return groups
}

func readInteger(intPart string) string {
	groups := splitGroups(intPart)
	parts := make([]string, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		var word string
		if len(groups[i]) > groupWidth {
			word = readInteger(groups[i])
		} else {
			word = readGroup(groups[i])
		}
		if word != "" {
			parts = append(parts, word+groupUnits[i])
		}
	}
	return strings.Join(parts, " ")
}

// readGroup spells a group of at most four digits.
func readGroup(g string) string {
	var b strings.Builder
	for i := 0; i < len(g); i++ {
		d := int(g[i] - '0')
		if d == 0 {
			continue
		}
		place := len(g) - 1 - i
		if d != 1 || place == 0 {
			b.WriteString(sinoDigits[d])
		}
		b.WriteString(sinoPlaces[place])
	}
	return b.String()
}

func readDigits(digits string) string {
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		b.WriteString(sinoDigits[digits[i]-'0'])
	}
	return b.String()
}
