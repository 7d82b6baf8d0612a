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

package furigana

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-edict/internal/folding"
	"github.com/ianlewis/go-edict/kanjidic"
)

// iterationMark repeats the preceding character.
const iterationMark = '々'

// longVowels maps the last mora of a reading to the kana that lengthens it,
// e.g. ひ becomes ひい and こ becomes こう.
var longVowels = map[rune]string{}

func init() {
	for vowel, row := range map[string]string{
		"あ": "あかさたなはまやらわがざだばぱぁゃ",
		"い": "いきしちにひみりぎじぢびぴぃ" + "えけせてねへめれげぜでべぺぇ",
		"う": "うくすつぬふむゆるぐずづぶぷぅゅ" + "おこそとのほもよろをごぞどぼぽぉょ",
	} {
		for _, r := range row {
			longVowels[r] = vowel
		}
	}
}

// Pair is a unit of the spelling, usually a single kanji, along with the part
// of the reading it is read as. Reading is always a substring of the kana
// being aligned, so a katakana unit matched against hiragana keeps the
// hiragana, e.g. ア[あ].
type Pair struct {
	Unit    string
	Reading string
}

// Match is an alignment of a spelling with its reading.
type Match []Pair

// Aligner aligns spellings with readings. An Aligner is safe for concurrent
// use.
type Aligner struct {
	dict *kanjidic.Dict
}

// New returns a new Aligner using the readings in d. A nil d is allowed, in
// which case every character is only read as itself.
func New(d *kanjidic.Dict) *Aligner {
	return &Aligner{dict: d}
}

// Furigana returns the ruby text for kanji read as kana.
func (a *Aligner) Furigana(kanji, kana string) string {
	return Render(a.Align(kanji, kana))
}

// Align returns the first alignment of kanji with kana. When no character
// by character alignment exists the whole spelling is paired with the whole
// reading.
func (a *Aligner) Align(kanji, kana string) Match {
	for m := range a.Matches(kanji, kana) {
		return m
	}
	// Matches always yields the trivial alignment last.
	return Match{{Unit: kanji, Reading: kana}}
}

type state struct {
	prefix Match
	kanji  string
	kana   string
}

// Matches returns an iterator over every alignment of kanji with kana, in
// the order they are found by a breadth-first search. The trivial alignment
// pairing the whole spelling with the whole reading is always yielded last.
// The search is performed lazily as the iterator is consumed.
func (a *Aligner) Matches(kanji, kana string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		queue := []state{{kanji: kanji, kana: kana}}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]

			if s.kanji == "" && s.kana == "" {
				if !yield(s.prefix) {
					return
				}
			}
			if s.kanji == "" || s.kana == "" {
				continue
			}

			c, size := utf8.DecodeRuneInString(s.kanji)
			unit := s.kanji[:size]
			for _, r := range a.candidates(c, s.prefix) {
				reading, ok := consume(s.kana, r)
				if !ok {
					continue
				}
				queue = append(queue, state{
					prefix: append(slices.Clip(s.prefix), Pair{Unit: unit, Reading: reading}),
					kanji:  s.kanji[size:],
					kana:   s.kana[len(reading):],
				})
			}
		}

		yield(Match{{Unit: kanji, Reading: kana}})
	}
}

// candidates returns the readings to try for c, most likely first.
func (a *Aligner) candidates(c rune, prefix Match) []string {
	var base []string
	switch k, ok := a.dict.Lookup(c); {
	case c == iterationMark && len(prefix) > 0:
		// NOTE: the repeated character may be voiced (e.g. 時々) which is
		// not handled.
		base = []string{prefix[len(prefix)-1].Reading}
	case ok:
		base = k.Readings
	default:
		base = []string{string(c)}
	}

	readings := slices.Clone(base)
	for _, r := range base {
		last, _ := utf8.DecodeLastRuneInString(r)
		if v, ok := longVowels[last]; ok && !slices.Contains(readings, r+v) {
			readings = append(readings, r+v)
		}
	}
	return readings
}

// consume reports whether kana starts with the reading r and returns the
// consumed part of kana. A katakana r also matches its hiragana.
func consume(kana, r string) (string, bool) {
	if strings.HasPrefix(kana, r) {
		return r, true
	}
	first, size := utf8.DecodeRuneInString(kana)
	if string(folding.ToKatakana(first)) == r {
		return kana[:size], true
	}
	return "", false
}
