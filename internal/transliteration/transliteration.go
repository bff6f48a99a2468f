// Package transliteration converts Bengali-script identifiers into ASCII
// identifiers that are valid in TypeScript.
//
// Conversion works on extended grapheme clusters, never on single code
// points, so a vowel sign or hasanta always stays with the consonant it
// modifies.
package transliteration

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

var validIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Transliterate returns the ASCII candidate for src and whether that
// candidate is a valid target identifier. Callers that get valid == false
// must report src, not the candidate.
func Transliterate(src string) (string, bool) {
	var sb strings.Builder
	for _, cluster := range Clusters(src) {
		sb.WriteString(substitute(cluster))
	}

	candidate := sb.String()
	return candidate, IsValidIdentifier(candidate)
}

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Clusters splits src into grapheme clusters. A cluster ending in hasanta
// is joined with the consonant cluster after it, so conjuncts such as ক্ষ
// come back whole regardless of the Unicode version uniseg implements.
func Clusters(src string) []string {
	src = norm.NFC.String(src)

	clusters := make([]string, 0, len(src))
	state := -1
	rest := src
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if n := len(clusters); n > 0 && endsWithVirama(clusters[n-1]) && startsWithConsonant(cluster) {
			clusters[n-1] += cluster
			continue
		}
		clusters = append(clusters, cluster)
	}

	return clusters
}

// Digits rewrites Bengali digits in a number literal as ASCII digits.
func Digits(src string) string {
	return strings.Map(func(r rune) rune {
		if r >= '\u09E6' && r <= '\u09EF' {
			return '0' + (r - '\u09E6')
		}
		return r
	}, src)
}

// IsSourceLetter reports whether r may appear anywhere in a source
// identifier: Latin letters, '_' and every non-digit rune of the table.
func IsSourceLetter(r rune) bool {
	if isASCIILetter(r) || r == '_' {
		return true
	}

	return sourceLetter[r]
}

func IsSourceDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '\u09E6' && r <= '\u09EF')
}

// IsSourceJoiner reports whether r is ZWNJ or ZWJ, which select conjunct
// forms inside a word. Joiners never start an identifier and transliterate
// to nothing.
func IsSourceJoiner(r rune) bool {
	return r == '\u200C' || r == '\u200D'
}

func substitute(cluster string) string {
	runes := []rune(cluster)

	var sb strings.Builder
	for i := 0; i < len(runes); {
		if r := runes[i]; isASCIILetter(r) || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
			i++
			continue
		}

		matched := false
		for n := min(maxKeyLen, len(runes)-i); n > 0; n-- {
			if sub, ok := table[string(runes[i:i+n])]; ok {
				sb.WriteString(sub)
				i += n
				matched = true
				break
			}
		}

		if !matched {
			i++
		}
	}

	return sb.String()
}

func endsWithVirama(cluster string) bool {
	return strings.HasSuffix(cluster, string(virama))
}

func startsWithConsonant(cluster string) bool {
	for _, r := range cluster {
		return isBengaliConsonant(r)
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
