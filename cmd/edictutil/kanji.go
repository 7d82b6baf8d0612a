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
	"log/slog"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var kanjiCommand = &cli.Command{
	Name:      "kanji",
	Usage:     "print the readings and meanings of characters",
	ArgsUsage: "KANJI...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing characters", ErrFlagParse)
		}

		kd, err := openKanjidic(c)
		if err != nil {
			return err
		}

		tbl := table.New("Kanji", "Readings", "Meanings").WithWriter(c.App.Writer)
		for _, arg := range c.Args().Slice() {
			for _, r := range arg {
				k, ok := kd.Lookup(r)
				if !ok {
					slog.Warn("character not found", "kanji", string(r))
					continue
				}
				tbl.AddRow(k, strings.Join(k.Readings, ", "), strings.Join(k.Meanings, "; "))
			}
		}
		tbl.Print()

		return nil
	},
}
