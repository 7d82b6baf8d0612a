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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
)

// ErrMalformedLine indicates that a dictionary line does not follow the
// EDICT format.
var ErrMalformedLine = errors.New("malformed line")

// ParseLine parses a single dictionary line. The offset is the position of
// the line in the dictionary file.
func ParseLine(line string, offset int64, options *Options) (*Word, error) {
	options = options.orDefault()
	line = strings.TrimRight(line, "\r\n")

	// Writings are separated from the rest of the line by a single space.
	sp := strings.IndexByte(line, ' ')
	if sp <= 0 || strings.ContainsFunc(line[:sp], unicode.IsSpace) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	writings := splitField(line[:sp])
	rest := line[sp+1:]

	var readings []string
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "] ")
		if end < 0 || strings.ContainsFunc(rest[1:end], unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if end > 1 {
			readings = splitField(rest[1:end])
		}
		rest = rest[end+2:]
	}

	// The glosses are enclosed in slashes. Anything after the final slash
	// is ignored.
	last := strings.LastIndexByte(rest, '/')
	if !strings.HasPrefix(rest, "/") || last == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return &Word{
		Writings: writings,
		Readings: readings,
		Glosses:  rest[1:last],
		Entry:    line,
		Offset:   offset,
		aligner:  options.Aligner,
	}, nil
}

// splitField removes parenthesized annotations such as (P) or (iK) from a
// writings or readings field and splits it on semicolons.
func splitField(s string) []string {
	var b strings.Builder
	for s != "" {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(s[open:], ')')
		if closing < 0 {
			break
		}
		b.WriteString(s[:open])
		s = s[open+closing+1:]
	}
	b.WriteString(s)
	return strings.Split(b.String(), ";")
}

// Scanner scans a dictionary from start to end. The header line and
// malformed lines are skipped.
type Scanner struct {
	r       *bufio.Reader
	dec     *encoding.Decoder
	options *Options

	offset int64
	header bool
	word   *Word
	err    error
}

// NewScanner returns a new Scanner reading the dictionary from r.
func NewScanner(r io.Reader, options *Options) *Scanner {
	options = options.orDefault()
	return &Scanner{
		r:       bufio.NewReader(r),
		dec:     options.NewDecoder(),
		options: options,
		header:  true,
	}
}

// Scan advances to the next word. It returns false when the scan stops,
// either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	s.word = nil
	for s.err == nil {
		raw, err := s.r.ReadBytes('\n')
		offset := s.offset
		s.offset += int64(len(raw))
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("reading dictionary: %w", err)
				return false
			}
			s.err = io.EOF
			if len(raw) == 0 {
				return false
			}
		}

		if s.header {
			s.header = false
			continue
		}

		line, err := s.dec.Bytes(bytes.TrimRight(raw, "\r\n"))
		if err != nil {
			continue
		}
		w, err := ParseLine(string(line), offset, s.options)
		if err != nil {
			continue
		}
		s.word = w
		return true
	}
	return false
}

// Word returns the most recent word read by Scan.
func (s *Scanner) Word() *Word {
	return s.word
}

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}
