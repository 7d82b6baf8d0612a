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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edict/idx"
)

var indexCommand = &cli.Command{
	Name:  "index",
	Usage: "build the on-disk index of the dictionary",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the index to `PATH` instead of next to the dictionary",
			Aliases: []string{"o"},
		},
		namesFlag,
		foldFlag,
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
		}

		dictPath, err := findFile(c.StringSlice("data-dir"), dictName(c))
		if err != nil {
			return err
		}
		out := c.String("output")
		if out == "" {
			out = indexPath(dictPath)
		}
		options, err := dictOptions(c, false)
		if err != nil {
			return err
		}

		slog.Debug("building index", "dict", dictPath, "index", out)
		if err := idx.BuildFile(dictPath, out, options); err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.App.Writer, "wrote %s\n", out)
		return err
	},
}

// indexPath returns the default index path of a dictionary.
func indexPath(dictPath string) string {
	return dictPath + ".idx"
}
