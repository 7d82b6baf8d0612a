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
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Render returns the ruby text for m. Pairs read as themselves are written
// as is and other pairs are written as unit[reading]. A space separates a
// bracketed pair from plain text before it so that the reading is attached
// to the right characters, e.g. お 茶[ちゃ].
func Render(m Match) string {
	var b strings.Builder
	lastWasKana := false
	for _, p := range m {
		if p.Unit == p.Reading {
			b.WriteString(p.Reading)
			lastWasKana = true
			continue
		}
		if lastWasKana {
			b.WriteByte(' ')
		}
		b.WriteString(p.Unit)
		b.WriteByte('[')
		b.WriteString(p.Reading)
		b.WriteByte(']')
		lastWasKana = false
	}
	return b.String()
}

// segment is a whitespace separated piece of ruby text.
type segment struct {
	text    string
	reading string
	ruby    bool
}

// parse splits ruby text into segments.
func parse(s string) []segment {
	var segs []segment
	for s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if unicode.IsSpace(r) {
			s = s[size:]
			continue
		}

		if seg, n, ok := parseRuby(s); ok {
			segs = append(segs, seg)
			s = s[n:]
			continue
		}

		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		segs = append(segs, segment{text: s[:end]})
		s = s[end:]
	}
	return segs
}

// parseRuby parses a unit[reading] segment at the start of s and returns it
// with its length.
func parseRuby(s string) (segment, int, bool) {
	open := strings.IndexFunc(s, func(r rune) bool {
		return r == '[' || unicode.IsSpace(r)
	})
	if open <= 0 || s[open] != '[' {
		return segment{}, 0, false
	}
	end := strings.IndexByte(s[open:], ']')
	if end <= 1 {
		return segment{}, 0, false
	}
	end += open
	return segment{
		text:    s[:open],
		reading: s[open+1 : end],
		ruby:    true,
	}, end + 1, true
}

// Kana returns the reading of ruby text, e.g. "私[わたし]は" gives
// "わたしは".
func Kana(s string) string {
	var b strings.Builder
	for _, seg := range parse(s) {
		if seg.ruby {
			b.WriteString(seg.reading)
		} else {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// Kanji returns the spelling of ruby text, e.g. "私[わたし]は" gives "私は".
func Kanji(s string) string {
	var b strings.Builder
	for _, seg := range parse(s) {
		b.WriteString(seg.text)
	}
	return b.String()
}

// Ruby converts ruby text to HTML ruby markup.
func Ruby(s string) string {
	var b strings.Builder
	b.WriteString("<ruby>")
	for _, seg := range parse(s) {
		b.WriteString(html.EscapeString(seg.text))
		b.WriteString("<rp>(</rp><rt>")
		b.WriteString(html.EscapeString(seg.reading))
		b.WriteString("</rt><rp>)</rp>")
	}
	b.WriteString("</ruby>")
	return b.String()
}
