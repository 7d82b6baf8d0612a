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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edict/internal/testutil"
)

// run runs the app with the test data files and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dictPath := testutil.WriteFile(t, "edict2", testutil.EncodeEUCJP(t, testutil.Edict))
	kanjidicPath := testutil.WriteFile(t, "kanjidic", testutil.EncodeEUCJP(t, testutil.Kanjidic))
	namesPath := testutil.WriteFile(t, "enamdict", testutil.EncodeEUCJP(t, testutil.Enamdict))

	var out, errOut bytes.Buffer
	app := newEdictApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"edictutil", "--dict", dictPath, "--kanjidic", kanjidicPath, "--names-dict", namesPath}, args...))
	return out.String(), err
}

func TestFurigana(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "furigana",
			args:     []string{"furigana", "牛肉", "ぎゅうにく"},
			expected: "牛[ぎゅう]肉[にく]\n",
		},
		{
			name:     "all",
			args:     []string{"furigana", "--all", "牛肉", "ぎゅうにく"},
			expected: "牛[ぎゅう]肉[にく]\n牛肉[ぎゅうにく]\n",
		},
		{
			name:     "ruby",
			args:     []string{"furigana", "--ruby", "牛", "うし"},
			expected: "<ruby>牛<rp>(</rp><rt>うし</rt><rp>)</rp></ruby>\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff(test.expected, out); diff != "" {
				t.Fatalf("output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "ぎゅうにく")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range []string{"牛肉", "牛[ぎゅう]肉[にく]", "beef"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
}

func TestSearch_index(t *testing.T) {
	dictPath := testutil.WriteFile(t, "edict2", testutil.EncodeEUCJP(t, testutil.Edict))

	if _, err := run(t, "--dict", dictPath, "index"); err != nil {
		t.Fatalf("index: %v", err)
	}
	if _, err := os.Stat(indexPath(dictPath)); err != nil {
		t.Fatalf("index not written: %v", err)
	}

	out, err := run(t, "--dict", dictPath, "search", "--index", "うち")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, s := range []string{"家", "内", "house", "inside"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
}

func TestSearch_missingQuery(t *testing.T) {
	_, err := run(t, "search")
	if !errors.Is(err, ErrFlagParse) {
		t.Fatalf("expected %v, got %v", ErrFlagParse, err)
	}
}

func TestKanji(t *testing.T) {
	out, err := run(t, "kanji", "牛")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range []string{"ぎゅう", "うし", "cattle"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
}

func TestMeaningsText(t *testing.T) {
	dictPath := testutil.WriteFile(t, "edict2", testutil.EncodeEUCJP(t, testutil.Edict))
	out, err := run(t, "--dict", dictPath, "search", "かく")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range []string{"to write; to compose", "to draw"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
	if strings.Contains(out, "<li>") {
		t.Fatalf("unexpected markup in output:\n%s", out)
	}
}

func TestSearch_romaji(t *testing.T) {
	out, err := run(t, "search", "--romaji", "GyuuNiku")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range []string{"牛肉", "ぎゅうにく", "beef"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}
}

func TestSearch_names(t *testing.T) {
	out, err := run(t, "search", "--names", "やまだ")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range []string{"山田", "Yamada"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output:\n%s", s, out)
		}
	}

	// Names are not in the main dictionary.
	out, err = run(t, "search", "やまだ")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out, "山田") {
		t.Fatalf("unexpected name in output:\n%s", out)
	}
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		err      error
	}{
		{
			name:     "unique",
			args:     []string{"guess", "--kanji", "猫", "--kana", "ねこ"},
			expected: "EntL1467640X\n",
		},
		{
			name:     "furigana",
			args:     []string{"guess", "--furigana", "牛[ぎゅう]肉[にく]"},
			expected: "EntL1250920X\n",
		},
		{
			name: "ambiguous",
			args: []string{"guess", "--kana", "うち"},
			expected: "家 [いえ;うち;け] /(n) (1) house/(2) family/(P)/EntL1191730X/\n" +
				"内 [うち] /(n) (1) inside/(2) (uk) among/EntL1582710X/\n",
			err: ErrAmbiguous,
		},
		{
			name:     "definition",
			args:     []string{"guess", "--kana", "うち", "--definition", "<ol><li>inside</li><li>(uk) among</li></ol>"},
			expected: "EntL1582710X\n",
		},
		{
			name:     "not found",
			args:     []string{"guess", "--kanji", "犬"},
			expected: "",
			err:      ErrNoGuess,
		},
		{
			name:     "no word",
			args:     []string{"guess", "--definition", "cat"},
			expected: "",
			err:      ErrFlagParse,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, test.args...)
			if test.err == nil && err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v, got %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, out); diff != "" {
				t.Fatalf("output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictLocations(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EDICT_DATA_DIR", dir)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	loc := dictLocations()
	if len(loc) == 0 || loc[0] != wd {
		t.Fatalf("expected the working directory first, got %v", loc)
	}
	if !slices.Contains(loc, dir) {
		t.Fatalf("expected %q in %v", dir, loc)
	}

	// Data files are found by name in the default locations.
	for name, lines := range map[string][]string{
		"edict2":   testutil.Edict,
		"kanjidic": testutil.Kanjidic,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), testutil.EncodeEUCJP(t, lines), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	app := newEdictApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	if err := app.Run([]string{"edictutil", "search", "ぎゅうにく"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "牛[ぎゅう]肉[にく]") {
		t.Fatalf("expected furigana in output:\n%s", out.String())
	}
}
