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
	"slices"
)

// ErrNoGuessKey indicates that neither a spelling nor a reading was given to
// Guess.
var ErrNoGuessKey = errors.New("no spelling or reading to guess from")

// Searcher searches a dictionary by exact headword. It is implemented by
// [Dict] and [github.com/ianlewis/go-edict/idx.Index].
type Searcher interface {
	Search(key string) ([]*Word, error)
}

// Guess returns the entries of s that may be the word spelled kanji and read
// kana with the given definition. Empty arguments are not used to filter
// the entries. The definition is compared to [Word.MeaningsHTML].
//
// A single result identifies the entry, e.g. through its
// [Word.SequenceNumber]. More than one result is ambiguous.
func Guess(s Searcher, kanji, kana, definition string) ([]*Word, error) {
	key := kanji
	if key == "" {
		key = kana
	}
	if key == "" {
		return nil, ErrNoGuessKey
	}

	words, err := s.Search(key)
	if err != nil {
		return nil, err
	}

	var guesses []*Word
	for _, w := range words {
		keys := slices.Concat(w.Writings, w.Readings)
		if kanji != "" && !slices.Contains(keys, kanji) {
			continue
		}
		if kana != "" && !slices.Contains(keys, kana) {
			continue
		}
		if definition != "" {
			html, err := w.MeaningsHTML()
			if err != nil && !errors.Is(err, ErrNoSense) {
				return nil, err
			}
			if html != definition {
				continue
			}
		}
		guesses = append(guesses, w)
	}
	return guesses, nil
}
