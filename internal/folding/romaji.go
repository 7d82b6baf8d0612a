// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// maxSyllable is the length of the longest romaji syllable, e.g. "xtsu".
const maxSyllable = 4

// syllables maps Hepburn and Kunrei romaji syllables to hiragana.
var syllables = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",

	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"sa": "さ", "si": "し", "shi": "し", "su": "す", "se": "せ", "so": "そ",
	"ta": "た", "ti": "ち", "chi": "ち", "tu": "つ", "tsu": "つ", "te": "て", "to": "と",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "hu": "ふ", "fu": "ふ", "he": "へ", "ho": "ほ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wi": "ゐ", "we": "ゑ", "wo": "を",

	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"za": "ざ", "zi": "じ", "ji": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",

	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"sha": "しゃ", "shu": "しゅ", "she": "しぇ", "sho": "しょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"cha": "ちゃ", "chu": "ちゅ", "che": "ちぇ", "cho": "ちょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"zya": "じゃ", "zyu": "じゅ", "zyo": "じょ",
	"ja": "じゃ", "ju": "じゅ", "je": "じぇ", "jo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",

	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"ti'": "てぃ", "di'": "でぃ",

	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"la": "ぁ", "li": "ぃ", "lu": "ぅ", "le": "ぇ", "lo": "ぉ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ",
	"lya": "ゃ", "lyu": "ゅ", "lyo": "ょ",
	"xtu": "っ", "ltu": "っ", "xtsu": "っ", "ltsu": "っ",
	"xwa": "ゎ", "lwa": "ゎ",

	"-": "ー",
}

// RomajiFolder converts romaji to hiragana. ASCII letters are matched case
// insensitively. A doubled consonant becomes っ and an n that does not start
// a syllable becomes ん. Letters that do not form a syllable and all other
// runes are copied unchanged.
type RomajiFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (RomajiFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c := src[nSrc]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(src[nSrc:])
			if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		// Syllables are decided with up to maxSyllable bytes of lookahead.
		rest := src[nSrc:]
		if !atEOF && len(rest) < maxSyllable {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, n := romajiSyllable(asciiLower(rest[:min(len(rest), maxSyllable)]))
		if n == 0 {
			out, n = string(c), 1
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += n
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (RomajiFolder) Reset() {}

// romajiSyllable returns the kana for the syllable at the start of s and the
// number of bytes it spans, or 0 when s does not start with romaji.
func romajiSyllable(s string) (string, int) {
	for n := min(len(s), maxSyllable); n > 0; n-- {
		if kana, ok := syllables[s[:n]]; ok {
			return kana, n
		}
	}

	if len(s) > 1 && isConsonant(s[0]) {
		switch {
		case s[0] == 'n':
		case s[0] == s[1]:
			return "っ", 1
		case s[0] == 't' && strings.HasPrefix(s[1:], "ch"):
			return "っ", 1
		}
	}

	if s[0] == 'n' {
		switch {
		case len(s) > 1 && s[1] == '\'':
			return "ん", 2
		case len(s) > 1 && s[1] == 'n' && (len(s) == 2 || !isSyllableStart(s[2])):
			return "ん", 2
		}
		return "ん", 1
	}
	return "", 0
}

// asciiLower returns the leading ASCII bytes of b in lower case.
func asciiLower(b []byte) string {
	var s strings.Builder
	for _, c := range b {
		if c >= utf8.RuneSelf {
			break
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		s.WriteByte(c)
	}
	return s.String()
}

func isConsonant(c byte) bool {
	return 'a' <= c && c <= 'z' && !isVowel(c)
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiou", c) >= 0
}

// isSyllableStart reports whether c can follow n inside a syllable.
func isSyllableStart(c byte) bool {
	return isVowel(c) || c == 'y'
}

// Romaji returns s with romaji converted to hiragana.
func Romaji(s string) string {
	out, _, err := transform.String(RomajiFolder{}, s)
	if err != nil {
		return s
	}
	return out
}
