package numeral

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jung/hannum/internal/hangul"
)

// InputError is returned by Resolve. The text is the message shown to users.
type InputError string

func (e InputError) Error() string {
	return string(e)
}

const (
	ErrEmptyInput    InputError = "필드를 비워둘 수 없습니다"
	ErrNotNumber     InputError = "숫자만 입력해주세요"
	ErrInvalidNumber InputError = "유효한 숫자가 아닙니다"
	ErrNotNumeral    InputError = "숫자로 읽을 수 없는 표현입니다"
)

var numberShape = regexp.MustCompile(`^-?[0-9]*\.?[0-9]*$`)

// IsValidNumber reports whether s is an optional minus sign followed by
// digits with at most one decimal point. The empty string matches.
func IsValidNumber(s string) bool {
	return numberShape.MatchString(s)
}

// Resolve turns user input into a value. Plain numbers go through
// strconv, everything else through Parse.
func Resolve(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyInput
	}

	if IsValidNumber(text) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, ErrInvalidNumber
		}
		return v, nil
	}

	if v, ok := Parse(text); ok {
		return v, nil
	}
	if hangul.ContainsHangul(text) {
		return 0, ErrNotNumeral
	}
	return 0, ErrNotNumber
}
