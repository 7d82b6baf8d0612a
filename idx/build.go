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
	"compress/gzip"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ianlewis/go-edict"
)

// Build reads an EDICT dictionary from r and writes its index to w. Keys are
// folded with the options' Folder.
func Build(w io.Writer, r io.Reader, options *edict.Options) error {
	offsets := map[string][]int64{}

	s := edict.NewScanner(r, options)
	for s.Scan() {
		word := s.Word()
		keys, err := word.Keys(options)
		if err != nil {
			return err
		}
		for _, k := range keys {
			// A key must be a single field of the record.
			if strings.ContainsAny(k, " \n") {
				continue
			}
			offsets[k] = append(offsets[k], word.Offset)
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, k := range slices.Sorted(maps.Keys(offsets)) {
		r := Record{
			Key:     k,
			Offsets: offsets[k],
		}
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return fmt.Errorf("writing index: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// BuildFile builds the index of the dictionary at dictPath and writes it to
// indexPath. Dictionaries ending in .gz or .dz are decompressed. The index is
// written to a temporary file first and renamed into place so that a failed
// build never leaves a partial index behind.
func BuildFile(dictPath, indexPath string, options *edict.Options) (err error) {
	f, err := os.Open(dictPath)
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(dictPath)) {
	case ".gz", ".dz":
		z, zErr := gzip.NewReader(f)
		if zErr != nil {
			return fmt.Errorf("opening %q: %w", dictPath, zErr)
		}
		defer z.Close()
		r = z
	}

	tmp, err := os.CreateTemp(filepath.Dir(indexPath), filepath.Base(indexPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating index: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Build(tmp, r, options); err != nil {
		return fmt.Errorf("building index of %q: %w", dictPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	if err = os.Rename(tmp.Name(), indexPath); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
