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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, line string) *Word {
	t.Helper()

	w, err := ParseLine(line, 0, &Options{})
	if err != nil {
		t.Fatalf("ParseLine(%q): %v", line, err)
	}
	return w
}

func TestWord_Meanings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []string
		html     string
	}{
		{
			name:     "single sense",
			line:     "猫 [ねこ] /(n) cat/(P)/EntL1467640X/",
			expected: []string{"cat"},
			html:     "cat",
		},
		{
			name:     "numbered senses",
			line:     "食べる [たべる] /(v1,vt) (1) to eat/(2) to live on (e.g. a salary)/(P)/EntL1358280X/",
			expected: []string{"to eat", "to live on (e.g. a salary)"},
			html:     "<ol><li>to eat</li><li>to live on (e.g. a salary)</li></ol>",
		},
		{
			name:     "grouped glosses",
			line:     "書く [かく] /(v5k,vt) (1) to write/to compose/(2) to draw/(P)/EntL1275830X/",
			expected: []string{"to write; to compose", "to draw"},
			html:     "<ol><li>to write; to compose</li><li>to draw</li></ol>",
		},
		{
			name:     "unnumbered glosses",
			line:     "ねこ /(n) (uk) (col) pussy/puss/EntL2767290X/",
			expected: []string{"(uk) (col) pussy; puss"},
			html:     "(uk) (col) pussy; puss",
		},
		{
			name:     "tag after sense number",
			line:     "内 [うち] /(n) (1) inside/(2) (uk) among/EntL1582710X/",
			expected: []string{"inside", "(uk) among"},
			html:     "<ol><li>inside</li><li>(uk) among</li></ol>",
		},
		{
			name:     "no sequence number",
			line:     "猫 [ねこ] /(n) cat/",
			expected: []string{"cat"},
			html:     "cat",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			w := mustParse(t, test.line)

			meanings, err := w.Meanings()
			if err != nil {
				t.Fatalf("Meanings: %v", err)
			}
			if diff := cmp.Diff(test.expected, meanings); diff != "" {
				t.Fatalf("Meanings (-want, +got):\n%s", diff)
			}

			html, err := w.MeaningsHTML()
			if err != nil {
				t.Fatalf("MeaningsHTML: %v", err)
			}
			if diff := cmp.Diff(test.html, html); diff != "" {
				t.Fatalf("MeaningsHTML (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWord_Meanings_noSense(t *testing.T) {
	t.Parallel()

	w := mustParse(t, "猫 [ねこ] /(P)/EntL1467640X/")
	if _, err := w.Meanings(); !errors.Is(err, ErrNoSense) {
		t.Fatalf("Meanings: expected %v, got %v", ErrNoSense, err)
	}
	if _, err := w.MeaningsHTML(); !errors.Is(err, ErrNoSense) {
		t.Fatalf("MeaningsHTML: expected %v, got %v", ErrNoSense, err)
	}
}

func TestWord_SequenceNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		expected string
		ok       bool
	}{
		{
			line:     "猫 [ねこ] /(n) cat/(P)/EntL1467640X/",
			expected: "EntL1467640X",
			ok:       true,
		},
		{
			line: "猫 [ねこ] /(n) cat/(P)/",
		},
		{
			line: "猫 [ねこ] /(n) EntL/",
		},
	}

	for _, test := range tests {
		seq, ok := mustParse(t, test.line).SequenceNumber()
		if ok != test.ok {
			t.Fatalf("SequenceNumber(%q) ok: want %v, got %v", test.line, test.ok, ok)
		}
		if diff := cmp.Diff(test.expected, seq); diff != "" {
			t.Fatalf("SequenceNumber(%q) (-want, +got):\n%s", test.line, diff)
		}
	}
}

func TestWord_Type(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected Type
	}{
		{
			name:     "noun",
			line:     "猫 [ねこ] /(n) cat/(P)/EntL1467640X/",
			expected: TypeAny,
		},
		{
			name:     "ichidan",
			line:     "食べる [たべる] /(v1,vt) (1) to eat/EntL1358280X/",
			expected: TypeAny | TypeV1,
		},
		{
			name:     "godan",
			line:     "書く [かく] /(v5k,vt) (1) to write/EntL1275830X/",
			expected: TypeAny | TypeV5,
		},
		{
			name:     "godan special class",
			line:     "有る [ある] /(v5r-i,vi) to be/EntL1296400X/",
			expected: TypeAny | TypeV5,
		},
		{
			name:     "adjective",
			line:     "高い [たかい] /(adj-i) (1) high/EntL1279480X/",
			expected: TypeAny | TypeAdjI,
		},
		{
			name:     "kuru",
			line:     "来る [くる] /(vk,vi) (1) to come/EntL1547720X/",
			expected: TypeAny | TypeVK,
		},
		{
			name:     "suru noun",
			line:     "勉強 [べんきょう] /(n,vs) study/(P)/EntL1512120X/",
			expected: TypeAny | TypeVS,
		},
		{
			name:     "tag inside a word",
			line:     "猫 [ねこ] /(n) envs1/",
			expected: TypeAny,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, mustParse(t, test.line).Type()); diff != "" {
				t.Fatalf("Type (-want, +got):\n%s", diff)
			}
		})
	}
}

type fakeAligner struct {
	calls int
}

func (a *fakeAligner) Furigana(kanji, kana string) string {
	a.calls++
	return kanji + "{" + kana + "}"
}

func TestWord_Furigana(t *testing.T) {
	t.Parallel()

	a := &fakeAligner{}
	w, err := ParseLine("牛肉 [ぎゅうにく] /(n) beef/", 0, &Options{Aligner: a})
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}

	for range 2 {
		if diff := cmp.Diff("牛肉{ぎゅうにく}", w.Furigana()); diff != "" {
			t.Fatalf("Furigana (-want, +got):\n%s", diff)
		}
	}
	if a.calls != 1 {
		t.Fatalf("expected furigana to be computed once, got %d calls", a.calls)
	}

	// Without an aligner the whole reading is used.
	w = mustParse(t, "牛肉 [ぎゅうにく] /(n) beef/")
	if diff := cmp.Diff("牛肉[ぎゅうにく]", w.Furigana()); diff != "" {
		t.Fatalf("Furigana (-want, +got):\n%s", diff)
	}
	w = mustParse(t, "ねこ /(n) cat/")
	if diff := cmp.Diff("ねこ", w.Furigana()); diff != "" {
		t.Fatalf("Furigana (-want, +got):\n%s", diff)
	}
}
