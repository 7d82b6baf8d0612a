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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ianlewis/go-edict"
	"github.com/ianlewis/go-edict/furigana"
	"github.com/ianlewis/go-edict/internal/folding"
	"github.com/ianlewis/go-edict/kanjidic"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrEdictutil is a parent error for all command errors.
var ErrEdictutil = errors.New("edictutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrEdictutil)

// ErrNotFound indicates that a data file could not be found.
var ErrNotFound = fmt.Errorf("%w: not found", ErrEdictutil)

var copyrightNames = []string{
	"2021 Google LLC",
	"2025 Ian Lewis",
}

// compressedExts are the extensions tried after a data file's name.
var compressedExts = []string{"", ".gz", ".dz"}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we handle help ourselves.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// findFile returns the first existing file called name, optionally
// compressed, in dirs. A name containing a path separator is used as is.
func findFile(dirs []string, name string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	for _, dir := range dirs {
		for _, ext := range compressedExts {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
			slog.Debug("data file not found", "path", path)
		}
	}
	return "", fmt.Errorf("%w: %q in %s", ErrNotFound, name, strings.Join(dirs, ", "))
}

// fileEncoding returns the encoding named by the encoding flag.
func fileEncoding(c *cli.Context) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(c.String("encoding"))
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %q: %w", ErrFlagParse, c.String("encoding"), err)
	}
	return enc, nil
}

// openKanjidic loads the reading table.
func openKanjidic(c *cli.Context) (*kanjidic.Dict, error) {
	path, err := findFile(c.StringSlice("data-dir"), c.String("kanjidic"))
	if err != nil {
		return nil, err
	}
	enc, err := fileEncoding(c)
	if err != nil {
		return nil, err
	}

	slog.Debug("loading reading table", "path", path)
	d, err := kanjidic.Open(path, &kanjidic.Options{Encoding: enc})
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded reading table", "path", path, "kanji", d.Len())
	return d, nil
}

// dictOptions returns the dictionary options for the command. When align is
// set, words are aligned with the reading table if it can be loaded.
func dictOptions(c *cli.Context, align bool) (*edict.Options, error) {
	enc, err := fileEncoding(c)
	if err != nil {
		return nil, err
	}
	options := &edict.Options{
		Encoding: enc,
	}
	if c.Bool("fold") {
		options.Folder = folding.Query
	}
	if !align {
		return options, nil
	}

	kd, err := openKanjidic(c)
	if err != nil {
		slog.Warn("furigana alignment disabled", "err", err)
	} else {
		options.Aligner = furigana.New(kd)
	}
	return options, nil
}

func newEdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search EDICT dictionaries.",
		Description: strings.Join([]string{
			"EDICT and KANJIDIC utility written in Go.",
			"http://github.com/ianlewis/go-edict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for data files in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
			&cli.StringFlag{
				Name:  "dict",
				Usage: "dictionary file `NAME` or path",
				Value: "edict2",
			},
			&cli.StringFlag{
				Name:  "names-dict",
				Usage: "proper noun dictionary file `NAME` or path",
				Value: "enamdict",
			},
			&cli.StringFlag{
				Name:  "kanjidic",
				Usage: "reading table file `NAME` or path",
				Value: "kanjidic",
			},
			&cli.StringFlag{
				Name:    "encoding",
				Usage:   "character encoding of the data files",
				Aliases: []string{"e"},
				Value:   "euc-jp",
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug logs",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Before: func(c *cli.Context) error {
			newLogger(c.App.ErrWriter, c.Bool("verbose"))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			searchCommand,
			furiganaCommand,
			kanjiCommand,
			guessCommand,
			indexCommand,
		},
	}
}
