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
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// maxLineSize is the maximum size of a single KANJIDIC record.
const maxLineSize = 1 << 20

// Scanner scans a KANJIDIC table from start to end, one character record at
// a time. Lines that are not character records are skipped.
type Scanner struct {
	s     *bufio.Scanner
	kanji *Kanji
}

// NewScanner returns a new Scanner reading the table from r. The data is
// decoded using the encoding in options.
func NewScanner(r io.Reader, options *Options) *Scanner {
	if options == nil {
		options = DefaultOptions
	}
	if options.Encoding != nil {
		r = transform.NewReader(r, options.Encoding.NewDecoder())
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{s: s}
}

// Scan advances to the next character record. It returns false when the
// scan stops, either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		if k, ok := parseLine(s.s.Text()); ok {
			s.kanji = k
			return true
		}
	}
	s.kanji = nil
	return false
}

// Kanji returns the most recent record read by Scan.
func (s *Scanner) Kanji() *Kanji {
	return s.kanji
}

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning kanjidic: %w", err)
	}
	return nil
}

// parseLine parses a single record. The second return value is false when
// the line does not follow the record grammar.
func parseLine(line string) (*Kanji, bool) {
	// Meanings start at the first brace. Nothing before it may contain one.
	brace := strings.IndexByte(line, '{')
	if brace < 0 {
		return nil, false
	}
	meanings, ok := parseMeanings(line[brace:])
	if !ok {
		return nil, false
	}

	fields := strings.Fields(line[:brace])
	if len(fields) < 2 {
		return nil, false
	}

	c, size := utf8.DecodeRuneInString(fields[0])
	if c == utf8.RuneError || size != len(fields[0]) {
		return nil, false
	}
	if !isJISCode(fields[1]) {
		return nil, false
	}

	fields = fields[2:]
	for len(fields) > 0 && isPropertyTag(fields[0]) {
		fields = fields[1:]
	}

	var readings []string
	for _, f := range fields {
		if isNanoriMarker(f) {
			break
		}
		readings = append(readings, f)
	}

	return &Kanji{
		Character: c,
		Readings:  expand(readings),
		Meanings:  meanings,
	}, true
}

// parseMeanings parses a run of space separated {...} tokens. Anything
// following the last token is ignored.
func parseMeanings(s string) ([]string, bool) {
	var meanings []string
	for strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			break
		}
		meanings = append(meanings, s[1:end])
		s = s[end+1:]
		if !strings.HasPrefix(s, " {") {
			break
		}
		s = s[1:]
	}
	return meanings, len(meanings) > 0
}

func isJISCode(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9') && !('A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// isNanoriMarker reports whether s is the T1 (nanori) or T2 (radical name)
// marker.
func isNanoriMarker(s string) bool {
	if len(s) < 2 || s[0] != 'T' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isPropertyTag(s string) bool {
	return s != "" && 'A' <= s[0] && s[0] <= 'Z' && !isNanoriMarker(s)
}
