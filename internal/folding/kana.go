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

// Package folding implements text transformers used to fold dictionary keys
// and kana strings.
package folding

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

const (
	// katakanaFirst and katakanaLast bound the katakana that have a hiragana
	// counterpart at a fixed distance (ァ through ヶ).
	katakanaFirst = 'ァ'
	katakanaLast  = 'ヶ'

	// kanaOffset is the distance between a katakana and its hiragana.
	kanaOffset = 'ア' - 'あ'
)

// ToHiragana maps a single katakana rune to hiragana. Runes without a
// hiragana counterpart, such as ヷ or the prolonged sound mark ー, are
// returned unchanged.
func ToHiragana(r rune) rune {
	switch {
	case katakanaFirst <= r && r <= katakanaLast:
		return r - kanaOffset
	case r == 'ヽ' || r == 'ヾ':
		return r - kanaOffset
	}
	return r
}

// ToKatakana maps a single hiragana rune to katakana.
func ToKatakana(r rune) rune {
	switch {
	case katakanaFirst-kanaOffset <= r && r <= katakanaLast-kanaOffset:
		return r + kanaOffset
	case r == 'ゝ' || r == 'ゞ':
		return r + kanaOffset
	}
	return r
}

// KanaFolder converts between the two kana syllabaries. The zero value
// folds katakana to hiragana.
type KanaFolder struct {
	// Katakana reverses the direction of the fold.
	Katakana bool
}

// Transform implements [transform.Transformer.Transform].
func (k KanaFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if c == utf8.RuneError && size == 1 {
			// Pass invalid bytes through.
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}

		if k.Katakana {
			c = ToKatakana(c)
		} else {
			c = ToHiragana(c)
		}
		// Hiragana and katakana share the same encoded length.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (KanaFolder) Reset() {}

// Hiragana returns s with katakana folded to hiragana.
func Hiragana(s string) string {
	out, _, err := transform.String(KanaFolder{}, s)
	if err != nil {
		return s
	}
	return out
}

// Katakana returns s with hiragana folded to katakana.
func Katakana(s string) string {
	out, _, err := transform.String(KanaFolder{Katakana: true}, s)
	if err != nil {
		return s
	}
	return out
}

// Query returns a transformer suitable for folding user supplied search
// queries and dictionary keys: half-width katakana and full-width ASCII are
// folded to their canonical widths and whitespace is removed.
func Query() transform.Transformer {
	return transform.Chain(width.Fold, WhitespaceStripper{})
}
