package numeral

import (
	"sort"
	"unicode/utf8"
)

// Unit is a Korean numeral multiplier word.
type Unit struct {
	Word  string
	Value float64
}

// Large reports whether the unit closes the current four-digit group.
func (u Unit) Large() bool {
	return u.Value >= 10000
}

var (
	// digitWords maps every accepted surface form to its digit value.
	digitWords = map[string]int{
		"영": 0, "공": 0, "빵": 0,
		"일": 1, "하나": 1, "한": 1, "원": 1,
		"이": 2, "둘": 2, "두": 2,
		"삼": 3, "셋": 3, "세": 3,
		"사": 4, "넷": 4, "네": 4,
		"오": 5, "다섯": 5,
		"육": 6, "여섯": 6,
		"칠": 7, "일곱": 7,
		"팔": 8, "여덟": 8,
		"구": 9, "아홉": 9,
		"0": 0, "1": 1, "2": 2, "3": 3, "4": 4,
		"5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	}

	unitWords = map[string]float64{
		"십": 10,
		"백": 100,
		"천": 1000,
		"만": 1e4,
		"억": 1e8,
		"조": 1e12,
		"경": 1e16,
	}

	// Sorted longest token first so a short word never shadows a longer one.
	digitTokens = sortedTokens(digitWords)
	unitTokens  = sortedUnits(unitWords)
)

// Names used when rendering.
var (
	sinoDigits = [10]string{"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	sinoPlaces = [4]string{"", "십", "백", "천"}
	groupUnits = [5]string{"", "만", "억", "조", "경"}
)

const (
	groupWidth = 4
	minusWord  = "마이너스"
	pointWord  = "점"
)

func sortedTokens(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func sortedUnits(m map[string]float64) []Unit {
	units := make([]Unit, 0, len(m))
	for w, v := range m {
		units = append(units, Unit{Word: w, Value: v})
	}
	sort.Slice(units, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(units[i].Word), utf8.RuneCountInString(units[j].Word)
		if li != lj {
			return li > lj
		}
		return units[i].Value > units[j].Value
	})
	return units
}

// Units returns the unit table, longest word first.
func Units() []Unit {
	out := make([]Unit, len(unitTokens))
	copy(out, unitTokens)
	return out
}
