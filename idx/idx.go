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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-edict"
)

// ErrNoRandomAccess indicates that the dictionary file is compressed in a
// format that cannot be read at arbitrary offsets.
var ErrNoRandomAccess = errors.New("dictionary does not support random access")

// chunkSize is the number of bytes read at a time when reading a line.
const chunkSize = 512

// Index is an on-disk index of a dictionary. An Index is safe for concurrent
// use.
type Index struct {
	index io.ReaderAt
	size  int64
	dict  io.ReaderAt

	closers []io.Closer
	options *edict.Options
}

// lockedReaderAt serializes reads of a reader that keeps internal state
// between reads.
type lockedReaderAt struct {
	mu sync.Mutex
	r  io.ReaderAt
}

func (l *lockedReaderAt) ReadAt(p []byte, off int64) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.ReadAt(p, off)
}

// Open opens the index at indexPath for the dictionary at dictPath.
// Dictionaries ending in .dz are read with dictzip random access and
// dictionaries ending in .gz are not supported. The
// options must match the options the index was built with.
func Open(dictPath, indexPath string, options *edict.Options) (*Index, error) {
	if strings.EqualFold(filepath.Ext(dictPath), ".gz") {
		return nil, fmt.Errorf("%w: %q: use dictzip instead of gzip", ErrNoRandomAccess, dictPath)
	}

	x := &Index{
		options: options,
	}

	indexFile, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	x.closers = append(x.closers, indexFile)
	info, err := indexFile.Stat()
	if err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("opening index: %w", err)
	}
	x.index = indexFile
	x.size = info.Size()

	dictFile, err := os.Open(dictPath)
	if err != nil {
		_ = x.Close()
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	x.closers = append(x.closers, dictFile)
	x.dict = dictFile

	if strings.EqualFold(filepath.Ext(dictPath), ".dz") {
		z, err := dictzip.NewReader(dictFile)
		if err != nil {
			_ = x.Close()
			return nil, fmt.Errorf("opening %q: %w", dictPath, err)
		}
		// The dictzip reader is closed before the file.
		x.closers = append([]io.Closer{z}, x.closers...)
		x.dict = &lockedReaderAt{r: z}
	}

	return x, nil
}

// Offsets returns the byte offsets of the dictionary lines for key. Offsets
// returns no offsets and no error when key is not in the index.
func (x *Index) Offsets(key string) ([]int64, error) {
	folded, err := x.options.Fold(key)
	if err != nil {
		return nil, err
	}
	if folded == "" {
		return nil, nil
	}

	var searchErr error
	pos := sort.Search(int(x.size), func(pos int) bool {
		if searchErr != nil {
			return true
		}
		line, err := x.lineAt(int64(pos))
		if errors.Is(err, io.EOF) {
			return true
		}
		if err != nil {
			searchErr = err
			return true
		}
		k, _, _ := bytes.Cut(line, []byte{' '})
		return string(k) >= folded
	})
	if searchErr != nil {
		return nil, fmt.Errorf("searching index: %w", searchErr)
	}

	line, err := x.lineAt(int64(pos))
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	r, err := parseRecord(string(line))
	if err != nil {
		return nil, err
	}
	if r.Key != folded {
		return nil, nil
	}
	return r.Offsets, nil
}

// Search returns the words with a writing or reading equal to key, in
// dictionary order. Search returns no words and no error when key is not in
// the index.
func (x *Index) Search(key string) ([]*edict.Word, error) {
	offsets, err := x.Offsets(key)
	if err != nil {
		return nil, err
	}

	var words []*edict.Word
	for _, o := range offsets {
		w, err := x.wordAt(o)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}

// Close closes the index and dictionary files.
func (x *Index) Close() error {
	var errs []error
	for _, c := range x.closers {
		if err := c.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
	}
	x.closers = nil
	return errors.Join(errs...)
}

func (x *Index) wordAt(offset int64) (*edict.Word, error) {
	raw, err := readLine(x.dict, offset)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary at %d: %w", offset, err)
	}
	line, err := x.options.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding dictionary at %d: %w", offset, err)
	}
	return edict.ParseLine(string(line), offset, x.options)
}

// lineAt returns the first complete index line starting at or after pos.
func (x *Index) lineAt(pos int64) ([]byte, error) {
	if pos > 0 {
		// Skip the rest of the line that contains pos-1.
		partial, err := readLine(x.index, pos-1)
		if err != nil {
			return nil, err
		}
		pos += int64(len(partial))
	}
	return readLine(x.index, pos)
}

// readLine reads the line starting at off without its newline. It returns
// io.EOF when off is at or past the end of r.
func readLine(r io.ReaderAt, off int64) ([]byte, error) {
	var line []byte
	buf := make([]byte, chunkSize)
	for {
		n, err := r.ReadAt(buf, off)
		if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
			return append(line, buf[:i]...), nil
		}
		line = append(line, buf[:n]...)
		off += int64(n)

		switch {
		case errors.Is(err, io.EOF):
			if len(line) == 0 {
				return nil, io.EOF
			}
			return line, nil
		case err != nil:
			return nil, err
		case n == 0:
			return nil, io.ErrNoProgress
		}
	}
}
