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

	"github.com/ianlewis/go-edict/furigana"
)

var furiganaCommand = &cli.Command{
	Name:      "furigana",
	Usage:     "align a spelling with its reading",
	ArgsUsage: "KANJI KANA",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "all",
			Usage:              "print every alignment in search order",
			Aliases:            []string{"a"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "ruby",
			Usage:              "print HTML ruby markup",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected KANJI and KANA arguments", ErrFlagParse)
		}
		kanji, kana := c.Args().Get(0), c.Args().Get(1)

		kd, err := openKanjidic(c)
		if err != nil {
			return err
		}
		a := furigana.New(kd)

		format := func(s string) string { return s }
		if c.Bool("ruby") {
			format = furigana.Ruby
		}

		if !c.Bool("all") {
			_, err := fmt.Fprintln(c.App.Writer, format(a.Furigana(kanji, kana)))
			return err
		}
		for m := range a.Matches(kanji, kana) {
			if _, err := fmt.Fprintln(c.App.Writer, format(furigana.Render(m))); err != nil {
				return err
			}
		}
		return nil
	},
}
