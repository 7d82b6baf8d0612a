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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Kanji is a KANJIDIC character record.
type Kanji struct {
	// Character is the kanji.
	Character rune

	// Readings are the normalized readings of the character. Readings found
	// in the table come first, in table order, followed by the gemination
	// and voicing variants derived from them.
	Readings []string

	// Meanings are the English meanings of the character.
	Meanings []string
}

// String returns the character.
func (k *Kanji) String() string {
	return string(k.Character)
}

// Options are options for reading a KANJIDIC table.
type Options struct {
	// Encoding is the character encoding of the table. A nil Encoding
	// reads the table as UTF-8.
	Encoding encoding.Encoding
}

// DefaultOptions is the default options for reading KANJIDIC. The table is
// distributed in EUC-JP.
var DefaultOptions = &Options{
	Encoding: japanese.EUCJP,
}

// Dict is an in-memory reading table keyed by character. A Dict is never
// modified after it is built and is safe for concurrent use.
type Dict struct {
	kanji map[rune]*Kanji
}

// New reads a KANJIDIC table from r. Records that cannot be parsed are
// skipped.
func New(r io.Reader, options *Options) (*Dict, error) {
	d := &Dict{
		kanji: map[rune]*Kanji{},
	}

	s := NewScanner(r, options)
	for s.Scan() {
		k := s.Kanji()
		d.kanji[k.Character] = k
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// Open reads the KANJIDIC table at path. Files ending in .gz are
// decompressed.
func Open(path string, options *Options) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening kanjidic: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.ToLower(filepath.Ext(path)) == ".gz" {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	d, err := New(r, options)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Lookup returns the record for the character c.
func (d *Dict) Lookup(c rune) (*Kanji, bool) {
	if d == nil {
		return nil, false
	}
	k, ok := d.kanji[c]
	return k, ok
}

// Len returns the number of characters in the table.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.kanji)
}
