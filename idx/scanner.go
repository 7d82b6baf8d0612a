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

package idx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidRecord indicates that an index line is not a valid record.
var ErrInvalidRecord = errors.New("invalid index record")

// Record is an index entry.
type Record struct {
	// Key is the folded search key.
	Key string

	// Offsets are the byte offsets of the dictionary lines for Key.
	Offsets []int64
}

// String returns the record as an index line without the trailing newline.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.Key)
	for _, o := range r.Offsets {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(o, 10))
	}
	return b.String()
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, " ")
	if len(fields) < 2 || fields[0] == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidRecord, line)
	}

	r := Record{
		Key:     fields[0],
		Offsets: make([]int64, 0, len(fields)-1),
	}
	for _, f := range fields[1:] {
		o, err := strconv.ParseInt(f, 10, 64)
		if err != nil || o < 0 {
			return Record{}, fmt.Errorf("%w: %q", ErrInvalidRecord, line)
		}
		r.Offsets = append(r.Offsets, o)
	}
	return r, nil
}

// Scanner scans an index from start to end.
type Scanner struct {
	s      *bufio.Scanner
	record Record
	err    error
}

// NewScanner return a new index scanner that scans the index from start to
// end.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{
		s: s,
	}
}

// Scan advances the index to the next record. It returns false if the scan
// stops either by reaching the end of the index or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil || !s.s.Scan() {
		return false
	}
	s.record, s.err = parseRecord(s.s.Text())
	return s.err == nil
}

// Record returns the most recent record generated by a call to Scan.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("reading index: %w", err)
	}
	return nil
}
