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

package kanjidic

import (
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-edict/internal/folding"
)

// rendaku maps the first mora of a reading to its voiced counterparts. The
// は row has two, e.g. ほん becomes ぼん or ぽん.
var rendaku = map[rune][]rune{
	'か': {'が'}, 'き': {'ぎ'}, 'く': {'ぐ'}, 'け': {'げ'}, 'こ': {'ご'},
	'さ': {'ざ'}, 'し': {'じ'}, 'す': {'ず'}, 'せ': {'ぜ'}, 'そ': {'ぞ'},
	'た': {'だ'}, 'ち': {'ぢ'}, 'つ': {'づ'}, 'て': {'で'}, 'と': {'ど'},
	'は': {'ば', 'ぱ'}, 'ひ': {'び', 'ぴ'}, 'ふ': {'ぶ', 'ぷ'}, 'へ': {'べ', 'ぺ'}, 'ほ': {'ぼ', 'ぽ'},
}

// Normalize normalizes a raw KANJIDIC reading token. The okurigana suffix
// and the prefix/suffix markers are removed, katakana is converted to
// hiragana and a final づ is written ず. Normalize is idempotent.
//
//	Normalize("くぼ.む") == "くぼ"
//	Normalize("-カタ") == "かた"
func Normalize(reading string) string {
	if i := strings.IndexByte(reading, '.'); i >= 0 {
		reading = reading[:i]
	}
	reading = strings.ReplaceAll(reading, "-", "")
	reading = folding.Hiragana(reading)
	if strings.HasSuffix(reading, "づ") {
		reading = strings.TrimSuffix(reading, "づ") + "ず"
	}
	return reading
}

// geminate replaces the last mora of the reading with a small つ, e.g. がく
// becomes がっ as in 学校 (がっこう).
func geminate(reading string) string {
	_, size := utf8.DecodeLastRuneInString(reading)
	return reading[:len(reading)-size] + "っ"
}

// voice returns the voiced variants of the reading, e.g. かみ gives がみ as
// in 手紙 (てがみ).
func voice(reading string) []string {
	first, size := utf8.DecodeRuneInString(reading)
	var variants []string
	for _, v := range rendaku[first] {
		variants = append(variants, string(v)+reading[size:])
	}
	return variants
}

// expand returns the normalized readings followed by their gemination
// variants and then their voiced variants. Empty readings are dropped and
// only the first occurrence of each reading is kept.
func expand(raw []string) []string {
	var readings []string
	seen := map[string]bool{}
	add := func(r string) {
		if r == "" || seen[r] {
			return
		}
		seen[r] = true
		readings = append(readings, r)
	}

	for _, r := range raw {
		add(Normalize(r))
	}
	base := len(readings)
	for _, r := range readings[:base] {
		add(geminate(r))
	}
	for _, r := range readings[:base] {
		for _, v := range voice(r) {
			add(v)
		}
	}
	return readings
}
