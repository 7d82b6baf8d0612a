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

package idx_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-edict"
	"github.com/ianlewis/go-edict/idx"
	"github.com/ianlewis/go-edict/internal/testutil"
)

// lineOffsets returns the byte offset of each line in data.
func lineOffsets(data []byte) []int64 {
	var offsets []int64
	var off int64
	for _, line := range bytes.SplitAfter(data, []byte("\n")) {
		offsets = append(offsets, off)
		off += int64(len(line))
	}
	return offsets
}

// build writes the dictionary and its index to a temporary directory.
func build(t *testing.T, name string, data []byte) (string, string) {
	t.Helper()

	var dictPath string
	if strings.HasSuffix(name, ".dz") {
		dictPath = testutil.WriteDictzip(t, name, data)
	} else {
		dictPath = testutil.WriteFile(t, name, data)
	}
	indexPath := filepath.Join(filepath.Dir(dictPath), name+".idx")
	if err := idx.BuildFile(dictPath, indexPath, nil); err != nil {
		t.Fatalf("BuildFile: %v", err)
	}
	return dictPath, indexPath
}

func TestBuild(t *testing.T) {
	t.Parallel()

	data := testutil.EncodeEUCJP(t, testutil.Edict)
	offsets := lineOffsets(data)

	var b bytes.Buffer
	if err := idx.Build(&b, bytes.NewReader(data), nil); err != nil {
		t.Fatalf("Build: %v", err)
	}

	var records []idx.Record
	s := idx.NewScanner(&b)
	for s.Scan() {
		records = append(records, s.Record())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Key)
	}
	if !slices.IsSorted(keys) {
		t.Fatalf("keys are not sorted: %v", keys)
	}

	expected := []idx.Record{
		{Key: "いえ", Offsets: []int64{offsets[10]}},
		{Key: "うち", Offsets: []int64{offsets[10], offsets[11]}},
		{Key: "かく", Offsets: []int64{offsets[6]}},
		{Key: "ぎゅうにく", Offsets: []int64{offsets[2]}},
		{Key: "くる", Offsets: []int64{offsets[8]}},
		{Key: "け", Offsets: []int64{offsets[10]}},
		{Key: "たかい", Offsets: []int64{offsets[7]}},
		{Key: "たべる", Offsets: []int64{offsets[4]}},
		{Key: "ねこ", Offsets: []int64{offsets[1], offsets[9]}},
		{Key: "ひがえり", Offsets: []int64{offsets[3]}},
		{Key: "來る", Offsets: []int64{offsets[8]}},
		{Key: "内", Offsets: []int64{offsets[11]}},
		{Key: "喰べる", Offsets: []int64{offsets[4]}},
		{Key: "家", Offsets: []int64{offsets[10]}},
		{Key: "日がえり", Offsets: []int64{offsets[3]}},
		{Key: "日帰り", Offsets: []int64{offsets[3]}},
		{Key: "書く", Offsets: []int64{offsets[6]}},
		{Key: "来る", Offsets: []int64{offsets[8]}},
		{Key: "牛肉", Offsets: []int64{offsets[2]}},
		{Key: "猫", Offsets: []int64{offsets[1]}},
		{Key: "食べる", Offsets: []int64{offsets[4]}},
		{Key: "高い", Offsets: []int64{offsets[7]}},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Fatalf("Build (-want, +got):\n%s", diff)
	}
}

func TestIndex_Offsets(t *testing.T) {
	t.Parallel()

	data := testutil.EncodeEUCJP(t, testutil.Edict)
	offsets := lineOffsets(data)
	dictPath, indexPath := build(t, "edict2", data)

	x, err := idx.Open(dictPath, indexPath, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = x.Close() })

	tests := []struct {
		name     string
		key      string
		expected []int64
	}{
		{
			name:     "first key",
			key:      "いえ",
			expected: []int64{offsets[10]},
		},
		{
			name:     "last key",
			key:      "高い",
			expected: []int64{offsets[7]},
		},
		{
			name:     "multiple offsets",
			key:      "ねこ",
			expected: []int64{offsets[1], offsets[9]},
		},
		{
			name:     "before first key",
			key:      "あ",
			expected: nil,
		},
		{
			name:     "after last key",
			key:      "龍",
			expected: nil,
		},
		{
			name:     "between keys",
			key:      "いぬ",
			expected: nil,
		},
		{
			name:     "prefix of a key",
			key:      "日",
			expected: nil,
		},
		{
			name:     "empty",
			key:      "",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := x.Offsets(test.key)
			if err != nil {
				t.Fatalf("Offsets: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Offsets (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	data := testutil.EncodeEUCJP(t, testutil.Edict)
	d, err := edict.New(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("edict.New: %v", err)
	}

	var b bytes.Buffer
	if err := idx.Build(&b, bytes.NewReader(data), nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	var keys []string
	s := idx.NewScanner(bytes.NewReader(b.Bytes()))
	for s.Scan() {
		keys = append(keys, s.Record().Key)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	queries := append(keys, "いぬ")

	for _, name := range []string{"edict2", "edict2.dz"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dictPath, indexPath := build(t, name, data)
			x, err := idx.Open(dictPath, indexPath, nil)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer x.Close()

			// Every key finds the same words as the in-memory dictionary.
			for _, k := range queries {
				expected, err := d.Search(k)
				if err != nil {
					t.Fatalf("Dict.Search(%q): %v", k, err)
				}
				got, err := x.Search(k)
				if err != nil {
					t.Fatalf("Index.Search(%q): %v", k, err)
				}
				if diff := cmp.Diff(expected, got, cmpopts.IgnoreUnexported(edict.Word{})); diff != "" {
					t.Fatalf("Search(%q) (-want, +got):\n%s", k, diff)
				}
			}
		})
	}
}

func TestIndex_Search_word(t *testing.T) {
	t.Parallel()

	dictPath, indexPath := build(t, "edict2.dz", testutil.EncodeEUCJP(t, testutil.Edict))
	x, err := idx.Open(dictPath, indexPath, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer x.Close()

	words, err := x.Search("ひがえり")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("Search: expected 1 word, got %d", len(words))
	}
	if diff := cmp.Diff([]string{"日帰り", "日がえり"}, words[0].Writings); diff != "" {
		t.Fatalf("Writings (-want, +got):\n%s", diff)
	}
	meanings, err := words[0].Meanings()
	if err != nil {
		t.Fatalf("Meanings: %v", err)
	}
	if diff := cmp.Diff([]string{"day trip"}, meanings); diff != "" {
		t.Fatalf("Meanings (-want, +got):\n%s", diff)
	}
}

func TestBuildFile_notExist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	indexPath := filepath.Join(dir, "edict2.idx")
	err := idx.BuildFile(filepath.Join(dir, "edict2"), indexPath, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected %v, got %v", fs.ErrNotExist, err)
	}

	// No index or temporary file is left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("unexpected files: %v", entries)
	}
}

func TestOpen_notExist(t *testing.T) {
	t.Parallel()

	dictPath, _ := build(t, "edict2", testutil.EncodeEUCJP(t, testutil.Edict))

	_, err := idx.Open(dictPath, dictPath+".missing", nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected %v, got %v", fs.ErrNotExist, err)
	}
}

func TestOpen_gzip(t *testing.T) {
	t.Parallel()

	dictPath := testutil.WriteFile(t, "edict2.gz", nil)
	_, err := idx.Open(dictPath, dictPath+".idx", nil)
	if !errors.Is(err, idx.ErrNoRandomAccess) {
		t.Fatalf("expected %v, got %v", idx.ErrNoRandomAccess, err)
	}
}

func TestIndex_Search_concurrent(t *testing.T) {
	t.Parallel()

	data := testutil.EncodeEUCJP(t, testutil.Edict)
	d, err := edict.New(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatalf("edict.New: %v", err)
	}

	dictPath, indexPath := build(t, "edict2.dz", data)
	x, err := idx.Open(dictPath, indexPath, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = x.Close() })

	keys := []string{"うち", "ねこ", "たべる", "日帰り", "高い", "いえ", "くる", "ぎゅうにく"}
	for i := range 4 * len(keys) {
		key := keys[i%len(keys)]
		t.Run(fmt.Sprintf("%d/%s", i, key), func(t *testing.T) {
			t.Parallel()

			expected, err := d.Search(key)
			if err != nil {
				t.Fatalf("Dict.Search: %v", err)
			}
			got, err := x.Search(key)
			if err != nil {
				t.Fatalf("Index.Search: %v", err)
			}
			if diff := cmp.Diff(expected, got, cmpopts.IgnoreUnexported(edict.Word{})); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}
