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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edict"
	"github.com/ianlewis/go-edict/furigana"
)

// ErrNoGuess indicates that no dictionary entry matches a guess.
var ErrNoGuess = fmt.Errorf("%w: no matching entry", ErrEdictutil)

// ErrAmbiguous indicates that more than one dictionary entry matches a guess.
var ErrAmbiguous = fmt.Errorf("%w: ambiguous", ErrEdictutil)

var guessCommand = &cli.Command{
	Name:  "guess",
	Usage: "print the sequence number of the entry for a word",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "kanji",
			Usage: "spelling of the word",
		},
		&cli.StringFlag{
			Name:  "kana",
			Usage: "reading of the word",
		},
		&cli.StringFlag{
			Name:  "furigana",
			Usage: "spelling and reading of the word as ruby text, e.g. 牛[ぎゅう]肉[にく]",
		},
		&cli.StringFlag{
			Name:  "definition",
			Usage: "meanings of the word as printed by the dictionary",
		},
		indexFlag,
		foldFlag,
	},
	Action: func(c *cli.Context) error {
		kanji, kana := c.String("kanji"), c.String("kana")
		if f := c.String("furigana"); f != "" {
			kanji, kana = furigana.Kanji(f), furigana.Kana(f)
		}
		if kanji == "" && kana == "" {
			return fmt.Errorf("%w: one of --kanji, --kana or --furigana is required", ErrFlagParse)
		}

		options, err := dictOptions(c, false)
		if err != nil {
			return err
		}
		s, err := openSearcher(c, options)
		if err != nil {
			return err
		}
		defer s.Close()

		words, err := edict.Guess(s, kanji, kana, c.String("definition"))
		if err != nil {
			return err
		}

		switch len(words) {
		case 0:
			return fmt.Errorf("%w: %s %s", ErrNoGuess, kanji, kana)
		case 1:
			id, ok := words[0].SequenceNumber()
			if !ok {
				id = words[0].Entry
			}
			_, err := fmt.Fprintln(c.App.Writer, id)
			return err
		default:
			for _, w := range words {
				if _, err := fmt.Fprintln(c.App.Writer, w.Entry); err != nil {
					return err
				}
			}
			return fmt.Errorf("%w: %d entries", ErrAmbiguous, len(words))
		}
	},
}
