package transliteration

import (
	"testing"

	"github.com/kr/pretty"
)

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantValid bool
	}{
		{name: "Single Consonant", input: "ক", expected: "k", wantValid: true},
		{name: "Vowel Sign Kept", input: "নাম", expected: "naam", wantValid: true},
		{name: "Independent Vowel", input: "আমি", expected: "aami", wantValid: true},
		{name: "Anusvara", input: "বাংলা", expected: "baanglaa", wantValid: true},
		{name: "Visarga", input: "দুঃখ", expected: "duhkh", wantValid: true},
		{name: "Chandrabindu", input: "চাঁদ", expected: "chaand", wantValid: true},
		{name: "Conjunct", input: "ক্ষমা", expected: "kshmaa", wantValid: true},
		{name: "Conjunct Gy", input: "জ্ঞান", expected: "gyaan", wantValid: true},
		{name: "Plain Hasanta", input: "বন্ধু", expected: "bndhu", wantValid: true},
		{name: "Precomposed Nukta", input: "\u09DF", expected: "y", wantValid: true},
		{name: "Decomposed Nukta", input: "\u09AF\u09BC", expected: "y", wantValid: true},
		{name: "Nukta In Word", input: "বাড়ি", expected: "baari", wantValid: true},
		{name: "Khanda Ta", input: "হঠাৎ", expected: "hthaat", wantValid: true},
		{name: "ASCII Passthrough", input: "total_sum2", expected: "total_sum2", wantValid: true},
		{name: "Leading Underscore", input: "_ক", expected: "_k", wantValid: true},
		{name: "Mixed Scripts", input: "dataক১", expected: "datak1", wantValid: true},
		{name: "Leading Bengali Digit", input: "১ক", expected: "1k", wantValid: false},
		{name: "Collapses To Empty", input: "্", expected: "", wantValid: false},
		{name: "Collapses To Digit", input: "্১", expected: "1", wantValid: false},
		{name: "Unknown Graphemes Dropped", input: "ক😀খ", expected: "kkh", wantValid: true},
		{name: "Only Unknown", input: "😀", expected: "", wantValid: false},
		{name: "Vocalic RR", input: "\u09E0\u0995", expected: "rrik", wantValid: true},
		{name: "Vocalic LL", input: "\u09E1", expected: "lli", wantValid: true},
		{name: "Vocalic Vowel Signs", input: "\u0995\u09C4\u0996\u09E2\u0997\u09E3", expected: "krrikhliglli", wantValid: true},
		{name: "Avagraha Dropped", input: "\u0995\u09BD", expected: "k", wantValid: true},
		{name: "Only Avagraha", input: "\u09BD", expected: "", wantValid: false},
		{name: "ZWJ Ra Phala", input: "\u09B0\u200D\u09CD\u09AF\u09BE\u09AC", expected: "rjaab", wantValid: true},
		{name: "ZWNJ Between Consonants", input: "\u0995\u200C\u09B7", expected: "ks", wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := Transliterate(tt.input)
			if got != tt.expected {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
			if valid != tt.wantValid {
				t.Errorf("Transliterate(%q) valid = %v, want %v", tt.input, valid, tt.wantValid)
			}
		})
	}
}

func TestTransliterateIsDeterministic(t *testing.T) {
	for _, input := range []string{"ক্ষমা", "বাংলা", "সংখ্যা", "hello_world"} {
		first, _ := Transliterate(input)
		second, _ := Transliterate(input)
		if first != second {
			t.Errorf("Transliterate(%q) gave %q then %q", input, first, second)
		}
	}
}

func TestVowelSignsDoNotCollide(t *testing.T) {
	names := []string{"ক", "কা", "কি", "কী", "কু", "কূ", "কে", "কো"}
	seen := make(map[string]string)
	for _, name := range names {
		got, _ := Transliterate(name)
		if prev, ok := seen[got]; ok {
			t.Errorf("%q and %q both transliterate to %q", prev, name, got)
		}
		seen[got] = name
	}
}

func TestClusters(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"কাজ", []string{"কা", "জ"}},
		{"ক্ষ", []string{"ক্ষ"}},
		{"ক্ষমা", []string{"ক্ষ", "মা"}},
		{"ab", []string{"a", "b"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := Clusters(tt.input)
		if diff := pretty.Diff(got, tt.expected); len(diff) > 0 {
			t.Errorf("Clusters(%q): %v", tt.input, diff)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := map[string]string{
		"১২৩":  "123",
		"৩.১৪": "3.14",
		"42":   "42",
		"৪2":   "42",
	}

	for input, expected := range tests {
		if got := Digits(input); got != expected {
			t.Errorf("Digits(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestSourceRunes(t *testing.T) {
	letters := []rune{'a', 'Z', '_', 'ক', 'া', '্', 'ং', 'ঁ', 'ঃ', 'অ', '\u09E0', '\u09E1', '\u09C4', '\u09E2', '\u09E3', '\u09BD'}
	for _, r := range letters {
		if !IsSourceLetter(r) {
			t.Errorf("IsSourceLetter(%q) = false, want true", r)
		}
	}

	notLetters := []rune{'1', '৫', '!', ' ', '"', '😀'}
	for _, r := range notLetters {
		if IsSourceLetter(r) {
			t.Errorf("IsSourceLetter(%q) = true, want false", r)
		}
	}

	for _, r := range []rune{'\u200C', '\u200D'} {
		if IsSourceLetter(r) || !IsSourceJoiner(r) {
			t.Errorf("%U must be a joiner, not a letter", r)
		}
	}

	for _, r := range []rune{'0', '9', '০', '৯'} {
		if !IsSourceDigit(r) {
			t.Errorf("IsSourceDigit(%q) = false, want true", r)
		}
	}
}
