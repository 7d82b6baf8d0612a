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

package edict

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/ianlewis/go-edict/furigana"
)

// ErrNoSense indicates that an entry has no gloss left once markers are
// removed.
var ErrNoSense = errors.New("entry has no sense")

const (
	popularMarker  = "(P)"
	sequencePrefix = "EntL"
)

// Type is a bitmask of the conjugation classes of a word. It is used to
// match inflected forms against dictionary entries.
type Type uint8

const (
	// TypeV1 is an ichidan verb.
	TypeV1 Type = 1 << 0

	// TypeV5 is a godan verb of any row.
	TypeV5 Type = 1 << 1

	// TypeAdjI is an i-adjective.
	TypeAdjI Type = 1 << 2

	// TypeVK is the irregular verb 来る.
	TypeVK Type = 1 << 3

	// TypeVS is a noun or participle taking the auxiliary verb する.
	TypeVS Type = 1 << 4

	// TypeAny is set for every word.
	TypeAny Type = 1 << 7

	// TypeAll matches every word.
	TypeAll Type = TypeV1 | TypeV5 | TypeAdjI | TypeVK | TypeVS | TypeAny
)

var typePatterns = []struct {
	t  Type
	re *regexp.Regexp
}{
	{TypeV1, regexp.MustCompile(`\bv1\b`)},
	{TypeV5, regexp.MustCompile(`\bv5.\b`)},
	{TypeAdjI, regexp.MustCompile(`\badj-i\b`)},
	{TypeVK, regexp.MustCompile(`\bvk\b`)},
	{TypeVS, regexp.MustCompile(`\bvs\b`)},
}

// Aligner computes furigana for a spelling and its reading.
type Aligner interface {
	Furigana(kanji, kana string) string
}

// Word is a dictionary entry.
type Word struct {
	// Writings are the spellings of the word. The first is the most common.
	Writings []string

	// Readings are the kana readings of the word. Readings is empty when the
	// word is spelled in kana.
	Readings []string

	// Glosses is the unparsed gloss field, without the enclosing slashes.
	Glosses string

	// Entry is the dictionary line the word was parsed from.
	Entry string

	// Offset is the byte offset of the line in the dictionary file.
	Offset int64

	aligner Aligner

	furiganaOnce sync.Once
	furigana     string
}

// String returns the word's main spelling.
func (w *Word) String() string {
	return w.Kanji()
}

// Kanji returns the word's main spelling.
func (w *Word) Kanji() string {
	return w.Writings[0]
}

// Kana returns the word's main reading.
func (w *Word) Kana() string {
	if len(w.Readings) > 0 {
		return w.Readings[0]
	}
	return w.Kanji()
}

// Furigana returns the main spelling annotated with the main reading, e.g.
// 牛[ぎゅう]肉[にく]. The result is computed once.
func (w *Word) Furigana() string {
	w.furiganaOnce.Do(func() {
		if w.aligner != nil {
			w.furigana = w.aligner.Furigana(w.Kanji(), w.Kana())
			return
		}
		w.furigana = furigana.Render(furigana.Match{{Unit: w.Kanji(), Reading: w.Kana()}})
	})
	return w.furigana
}

// SequenceNumber returns the JMdict entry sequence number (e.g.
// EntL1467640X) if the entry has one.
func (w *Word) SequenceNumber() (string, bool) {
	i := strings.LastIndexByte(w.Glosses, '/')
	last := w.Glosses[i+1:]
	if strings.HasPrefix(last, sequencePrefix) {
		return last, true
	}
	return "", false
}

// Meanings returns the senses of the word. Glosses are grouped by sense
// number and the glosses of a sense are joined with semicolons. Leading
// part of speech tags are removed.
func (w *Word) Meanings() ([]string, error) {
	var meanings []string
	var current []string
	n := 0
	for _, g := range strings.Split(w.Glosses, "/") {
		if g == popularMarker || strings.HasPrefix(g, sequencePrefix) {
			continue
		}
		n++

		_, g = cutTag(g, isNatureTag)
		sense, g := cutTag(g, isSenseTag)
		if sense != "" && len(current) > 0 {
			meanings = append(meanings, strings.Join(current, "; "))
			current = nil
		}
		current = append(current, g)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSense, w.Entry)
	}
	return append(meanings, strings.Join(current, "; ")), nil
}

// MeaningsHTML returns the senses of the word as an HTML ordered list. A
// single sense is returned as is.
func (w *Word) MeaningsHTML() (string, error) {
	meanings, err := w.Meanings()
	if err != nil {
		return "", err
	}
	if len(meanings) == 1 {
		return meanings[0], nil
	}

	var b strings.Builder
	b.WriteString("<ol>")
	for _, m := range meanings {
		b.WriteString("<li>")
		b.WriteString(m)
		b.WriteString("</li>")
	}
	b.WriteString("</ol>")
	return b.String(), nil
}

// Type returns the conjugation classes of the word based on the part of
// speech tags in its glosses.
func (w *Word) Type() Type {
	t := TypeAny
	for _, p := range typePatterns {
		if p.re.MatchString(w.Glosses) {
			t |= p.t
		}
	}
	return t
}

// cutTag removes a leading "(tag) " from s if valid(tag) and returns the tag
// and the rest of s.
func cutTag(s string, valid func(string) bool) (string, string) {
	if !strings.HasPrefix(s, "(") {
		return "", s
	}
	// The tag ends with the first whitespace, which must be a space
	// preceded by the closing parenthesis.
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 3 || s[end] != ' ' || s[end-1] != ')' {
		return "", s
	}
	tag := s[1 : end-1]
	if !valid(tag) {
		return "", s
	}
	return tag, s[end+1:]
}

// isNatureTag reports whether tag is a part of speech or usage tag such as
// "n" or "v5k,vt".
func isNatureTag(tag string) bool {
	return tag[0] < '0' || tag[0] > '9'
}

// isSenseTag reports whether tag is a sense number.
func isSenseTag(tag string) bool {
	for i := 0; i < len(tag); i++ {
		if tag[i] < '0' || tag[i] > '9' {
			return false
		}
	}
	return true
}
