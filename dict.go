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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Dict is an in-memory dictionary. Every writing and reading of a word is a
// search key. A Dict is never modified after it is built and is safe for
// concurrent use.
type Dict struct {
	words   map[string][]*Word
	count   int
	options *Options
}

// New reads a dictionary from r.
func New(r io.Reader, options *Options) (*Dict, error) {
	options = options.orDefault()
	d := &Dict{
		words:   map[string][]*Word{},
		options: options,
	}

	s := NewScanner(r, options)
	for s.Scan() {
		w := s.Word()
		keys, err := w.Keys(options)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			d.words[k] = append(d.words[k], w)
		}
		d.count++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// Open reads the dictionary at path. Files ending in .gz or .dz are
// decompressed.
func Open(path string, options *Options) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".dz":
		// dictzip files are valid gzip files.
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

// Search returns the words with a writing or reading equal to key, in
// dictionary order. Search returns no words and no error when key is not in
// the dictionary.
func (d *Dict) Search(key string) ([]*Word, error) {
	folded, err := d.options.Fold(key)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.words[folded]), nil
}

// Len returns the number of words in the dictionary.
func (d *Dict) Len() int {
	return d.count
}

// Keys returns the folded search keys of the word: its writings followed by
// its readings, without duplicates.
func (w *Word) Keys(options *Options) ([]string, error) {
	var keys []string
	for _, k := range slices.Concat(w.Writings, w.Readings) {
		folded, err := options.Fold(k)
		if err != nil {
			return nil, err
		}
		if folded != "" && !slices.Contains(keys, folded) {
			keys = append(keys, folded)
		}
	}
	return keys, nil
}
