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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edict"
	"github.com/ianlewis/go-edict/deinflect"
	"github.com/ianlewis/go-edict/idx"
	"github.com/ianlewis/go-edict/internal/folding"
)

var foldFlag = &cli.BoolFlag{
	Name:               "fold",
	Usage:              "fold character width and strip whitespace from keys",
	DisableDefaultText: true,
}

var namesFlag = &cli.BoolFlag{
	Name:               "names",
	Usage:              "use the proper noun dictionary",
	Aliases:            []string{"n"},
	DisableDefaultText: true,
}

var indexFlag = &cli.BoolFlag{
	Name:               "index",
	Usage:              "search the on-disk index built by the index command",
	Aliases:            []string{"i"},
	DisableDefaultText: true,
}

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "search the dictionary by headword",
	ArgsUsage: "QUERY...",
	Flags: []cli.Flag{
		indexFlag,
		&cli.BoolFlag{
			Name:               "deinflect",
			Usage:              "also search the dictionary forms of inflected words",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "romaji",
			Usage:              "convert romaji in queries to hiragana",
			Aliases:            []string{"r"},
			DisableDefaultText: true,
		},
		namesFlag,
		foldFlag,
	},
	Action: search,
}

// searcher is a dictionary opened for searching.
type searcher interface {
	deinflect.Searcher
	io.Closer
}

type memDict struct {
	*edict.Dict
}

func (memDict) Close() error { return nil }

// dictName returns the name of the dictionary selected by the flags.
func dictName(c *cli.Context) string {
	if c.Bool("names") {
		return c.String("names-dict")
	}
	return c.String("dict")
}

func openSearcher(c *cli.Context, options *edict.Options) (searcher, error) {
	dictPath, err := findFile(c.StringSlice("data-dir"), dictName(c))
	if err != nil {
		return nil, err
	}

	if c.Bool("index") {
		slog.Debug("opening index", "dict", dictPath, "index", indexPath(dictPath))
		x, err := idx.Open(dictPath, indexPath(dictPath), options)
		if err != nil {
			return nil, err
		}
		return x, nil
	}

	slog.Debug("loading dictionary", "path", dictPath)
	d, err := edict.Open(dictPath, options)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded dictionary", "path", dictPath, "words", d.Len())
	return memDict{d}, nil
}

func search(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: missing query", ErrFlagParse)
	}

	options, err := dictOptions(c, true)
	if err != nil {
		return err
	}
	s, err := openSearcher(c, options)
	if err != nil {
		return err
	}
	defer s.Close()

	// Names do not inflect.
	var d deinflect.Deinflector = deinflect.Identity{}
	if c.Bool("deinflect") && !c.Bool("names") {
		k, err := deinflect.NewKagome()
		if err != nil {
			return err
		}
		d = k
	}

	tbl := table.New("Word", "Reading", "Furigana", "Meanings").WithWriter(c.App.Writer)
	for _, query := range c.Args().Slice() {
		if c.Bool("romaji") {
			query = folding.Romaji(query)
		}
		words, err := deinflect.Search(s, d, query)
		if err != nil {
			return err
		}
		if len(words) == 0 {
			slog.Warn("no results", "query", query)
		}
		for _, w := range words {
			meanings, err := meaningsText(w)
			if err != nil {
				return err
			}
			tbl.AddRow(w.Kanji(), w.Kana(), w.Furigana(), meanings)
		}
	}
	tbl.Print()

	return nil
}

// meaningsText renders the meanings of w on a single line.
func meaningsText(w *edict.Word) (string, error) {
	html, err := w.MeaningsHTML()
	if errors.Is(err, edict.ErrNoSense) {
		slog.Debug("word has no sense", "entry", w.Entry)
		return "", nil
	}
	if err != nil {
		return "", err
	}

	text := html2text.HTML2Text(html)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " / "), nil
}
