package numeral

import (
	"math"
	"testing"
)

func TestFormatKorean(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"below one group", 9999, "9999"},
		{"one eok", 100000000, "1 억"},
		{"man with remainder", 12345, "1 만 2345"},
		{"skips empty groups", 1234567890000, "1 조 2345 억 6789 만"},
		{"gyeong", 1e16, "1 경"},
		{"negative", -12345, "-1 만 2345"},
		{"fraction on lowest group", 12345.5, "1 만 2345.5"},
		{"fraction with empty lowest group", 10000.5, "1 만 0.5"},
		{"fraction only", 0.25, "0.25"},
		{"overflowing top group", 1e20, "10000 경"},
		{"nan", math.NaN(), KoreanError},
		{"inf", math.Inf(1), KoreanError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatKorean(tt.input); got != tt.expected {
				t.Errorf("FormatKorean(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatWithCommas(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"millions", 1234567, "1,234,567"},
		{"negative fraction", -1234.5, "-1,234.5"},
		{"rounds to three digits", 1234.56789, "1,234.568"},
		{"tie rounds away from zero", 2.0625, "2.063"},
		{"negative tie rounds away from zero", -2.0625, "-2.063"},
		{"below tie rounds down", 1.0005, "1"},
		{"nan", math.NaN(), ""},
		{"negative inf", math.Inf(-1), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWithCommas(tt.input); got != tt.expected {
				t.Errorf("FormatWithCommas(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatSinoKorean(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "영"},
		{"lone one", 1, "일"},
		{"ten drops one", 10, "십"},
		{"eleven", 11, "십일"},
		{"hundred ten", 110, "백십"},
		{"thousand ten", 1010, "천십"},
		{"man keeps one", 10000, "일만"},
		{"twenty thousand", 20000, "이만"},
		{"groups", 12345, "일만 이천삼백사십오"},
		{"small units", 3200, "삼천이백"},
		{"eok and man", 250000000, "이억 오천만"},
		{"one eok", 100000000, "일억"},
		{"negative", -5, "마이너스 오"},
		{"fraction", 3.14, "삼점일사"},
		{"fraction below one", 0.5, "영점오"},
		{"fraction with empty lowest group", 10000.5, "일만점오"},
		{"overflowing top group", 1e20, "일만경"},
		{"nan", math.NaN(), KoreanError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSinoKorean(tt.input); got != tt.expected {
				t.Errorf("FormatSinoKorean(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatEnglish(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"plain", 999, "999"},
		{"plain fraction", 999.5, "999.5"},
		{"thousand", 1000, "1.000 Thousand"},
		{"million", 2500000, "2.500 Million"},
		{"negative million", -2500000, "-2.500 Million"},
		{"trillion rounds", 1234567890123, "1.235 Trillion"},
		{"tie rounds away from zero", 2062.5, "2.063 Thousand"},
		{"odd tie rounds away from zero", 1062.5, "1.063 Thousand"},
		{"negative tie", -2062.5, "-2.063 Thousand"},
		{"quadrillion", 1e15, "1.000 Quadrillion"},
		{"nan", math.NaN(), EnglishError},
		{"inf", math.Inf(1), EnglishError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEnglish(tt.input); got != tt.expected {
				t.Errorf("FormatEnglish(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatScientific(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"positive exponent", 123000, "1.230 × 10^5"},
		{"negative exponent", 0.0000123, "1.230 × 10^-5"},
		{"exponent zero", 5, "5.000 × 10^0"},
		{"negative value", -98760, "-9.876 × 10^4"},
		{"tie rounds away from zero", 1.0625, "1.063 × 10^0"},
		{"negative tie", -1.0625, "-1.063 × 10^0"},
		{"tie in large value", 20625, "2.063 × 10^4"},
		{"tie carries into exponent", 9999.5, "1.000 × 10^4"},
		{"nan", math.NaN(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScientific(tt.input); got != tt.expected {
				t.Errorf("FormatScientific(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundHalfAway(t *testing.T) {
	tests := []struct {
		input    float64
		digits   int
		expected float64
	}{
		{2.0625, 3, 2.063},
		{-2.0625, 3, -2.063},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{1250, -2, 1300},
		{2.0626, 3, 2.0626},
		{1.0005, 3, 1.0005},
	}

	for _, tt := range tests {
		if got := roundHalfAway(tt.input, tt.digits); got != tt.expected {
			t.Errorf("roundHalfAway(%v, %d) = %v, want %v", tt.input, tt.digits, got, tt.expected)
		}
	}
}

func TestFormatEnglishWords(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "zero"},
		{"single digit", 7, "seven"},
		{"negative", -7, "minus seven"},
		{"fraction dropped", 7.9, "seven"},
		{"too large", 1e12, ""},
		{"nan", math.NaN(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEnglishWords(tt.input); got != tt.expected {
				t.Errorf("FormatEnglishWords(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSuperscript(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1.230 × 10^5", "1.230 × 10⁵"},
		{"1.230 × 10^-12", "1.230 × 10⁻¹²"},
		{"0", "0"},
	}

	for _, tt := range tests {
		if got := Superscript(tt.input); got != tt.expected {
			t.Errorf("Superscript(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormat(t *testing.T) {
	f := Format(12345)
	if f.Korean != "1 만 2345" {
		t.Errorf("Korean = %q", f.Korean)
	}
	if f.Commas != "12,345" {
		t.Errorf("Commas = %q", f.Commas)
	}
	if f.SinoKorean != "일만 이천삼백사십오" {
		t.Errorf("SinoKorean = %q", f.SinoKorean)
	}
	if f.English != "12.345 Thousand" {
		t.Errorf("English = %q", f.English)
	}
	if f.Scientific != "1.234 × 10^4" && f.Scientific != "1.235 × 10^4" {
		t.Errorf("Scientific = %q", f.Scientific)
	}
	if f.Romanized != "il-man i-cheon-sam-baek-sa-sip-o" {
		t.Errorf("Romanized = %q", f.Romanized)
	}

	bad := Format(math.NaN())
	if bad.Romanized != "" || bad.EnglishWords != "" {
		t.Errorf("Format(NaN) extras = %q, %q, want empty", bad.Romanized, bad.EnglishWords)
	}
	if bad.Korean != KoreanError || bad.English != EnglishError || bad.Commas != "" || bad.Scientific != "" {
		t.Errorf("Format(NaN) sentinels = %+v", bad)
	}
}
