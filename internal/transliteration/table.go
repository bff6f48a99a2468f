package transliteration

// Keys are NFC. Letters that NFC decomposes (U+09DC, U+09DD, U+09DF) are
// listed in both spellings so the table also serves unnormalized callers.
var table = map[string]string{
	// independent vowels
	"\u0985": "a",   // অ
	"\u0986": "aa",  // আ
	"\u0987": "i",   // ই
	"\u0988": "ii",  // ঈ
	"\u0989": "u",   // উ
	"\u098A": "uu",  // ঊ
	"\u098B": "ri",  // ঋ
	"\u098C": "li",  // ঌ
	"\u098F": "e",   // এ
	"\u0990": "oi",  // ঐ
	"\u0993": "o",   // ও
	"\u0994": "ou",  // ঔ
	"\u09E0": "rri", // ৠ
	"\u09E1": "lli", // ৡ

	// consonants
	"\u0995": "k",   // ক
	"\u0996": "kh",  // খ
	"\u0997": "g",   // গ
	"\u0998": "gh",  // ঘ
	"\u0999": "ng",  // ঙ
	"\u099A": "ch",  // চ
	"\u099B": "chh", // ছ
	"\u099C": "j",   // জ
	"\u099D": "jh",  // ঝ
	"\u099E": "ny",  // ঞ
	"\u099F": "t",   // ট
	"\u09A0": "th",  // ঠ
	"\u09A1": "d",   // ড
	"\u09A2": "dh",  // ঢ
	"\u09A3": "n",   // ণ
	"\u09A4": "t",   // ত
	"\u09A5": "th",  // থ
	"\u09A6": "d",   // দ
	"\u09A7": "dh",  // ধ
	"\u09A8": "n",   // ন
	"\u09AA": "p",   // প
	"\u09AB": "ph",  // ফ
	"\u09AC": "b",   // ব
	"\u09AD": "bh",  // ভ
	"\u09AE": "m",   // ম
	"\u09AF": "j",   // য
	"\u09B0": "r",   // র
	"\u09B2": "l",   // ল
	"\u09B6": "sh",  // শ
	"\u09B7": "s",   // ষ
	"\u09B8": "s",   // স
	"\u09B9": "h",   // হ
	"\u09CE": "t",   // ৎ

	// nukta forms, NFC spelling first
	"\u09A1\u09BC": "r",  // ড়
	"\u09A2\u09BC": "rh", // ঢ়
	"\u09AF\u09BC": "y",  // য়
	"\u09DC":       "r",  // ড়
	"\u09DD":       "rh", // ঢ়
	"\u09DF":       "y",  // য়
	"\u09BC":       "",   // ◌়

	// conjuncts
	"\u0995\u09CD\u09B7": "ksh", // ক্ষ
	"\u099C\u09CD\u099E": "gy",  // জ্ঞ

	// vowel signs
	"\u09BE":       "aa",  // ◌া
	"\u09BF":       "i",   // ◌ি
	"\u09C0":       "ii",  // ◌ী
	"\u09C1":       "u",   // ◌ু
	"\u09C2":       "uu",  // ◌ূ
	"\u09C3":       "ri",  // ◌ৃ
	"\u09C4":       "rri", // ◌ৄ
	"\u09E2":       "li",  // ◌ৢ
	"\u09E3":       "lli", // ◌ৣ
	"\u09C7":       "e",   // ◌ে
	"\u09C8":       "oi",  // ◌ৈ
	"\u09CB":       "o",   // ◌ো
	"\u09CC":       "ou",  // ◌ৌ
	"\u09C7\u09BE": "o",   // ◌ো
	"\u09C7\u09D7": "ou",  // ◌ৌ
	"\u09CD":       "",    // ◌্

	// diacritics
	"\u0981": "n",  // ◌ঁ
	"\u0982": "ng", // ◌ং
	"\u0983": "h",  // ◌ঃ
	"\u09BD": "",   // ঽ

	// digits
	"\u09E6": "0", // ০
	"\u09E7": "1", // ১
	"\u09E8": "2", // ২
	"\u09E9": "3", // ৩
	"\u09EA": "4", // ৪
	"\u09EB": "5", // ৫
	"\u09EC": "6", // ৬
	"\u09ED": "7", // ৭
	"\u09EE": "8", // ৮
	"\u09EF": "9", // ৯
}

const virama = '\u09CD'

var (
	maxKeyLen    int
	sourceLetter = make(map[rune]bool)
)

func init() {
	for key := range table {
		runes := []rune(key)
		maxKeyLen = max(maxKeyLen, len(runes))
		for _, r := range runes {
			if !IsSourceDigit(r) {
				sourceLetter[r] = true
			}
		}
	}
}

func isBengaliConsonant(r rune) bool {
	return (r >= '\u0995' && r <= '\u09B9') || r == '\u09CE' || (r >= '\u09DC' && r <= '\u09DF')
}
