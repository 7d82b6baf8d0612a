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

// Package deinflect searches dictionaries for inflected words.
//
// A [Deinflector] turns an inflected word such as 食べた into candidate
// dictionary forms, each tagged with the conjugation classes it may belong
// to. [Search] looks every candidate up and keeps only the entries whose
// part of speech agrees with the candidate.
package deinflect

import (
	"github.com/ianlewis/go-edict"
)

// Candidate is a possible dictionary form of an inflected word.
type Candidate struct {
	// Word is the dictionary form.
	Word string

	// Type is the set of conjugation classes the dictionary form may belong
	// to.
	Type edict.Type
}

// Deinflector returns the possible dictionary forms of a word.
type Deinflector interface {
	Deinflect(word string) []Candidate
}

// Searcher searches a dictionary by exact headword.
type Searcher = edict.Searcher

// Identity is a Deinflector that returns the word itself as the only
// candidate.
type Identity struct{}

// Deinflect implements [Deinflector.Deinflect].
func (Identity) Deinflect(word string) []Candidate {
	return []Candidate{{Word: word, Type: edict.TypeAll}}
}

// Search returns the entries of s matching a dictionary form of query. An
// entry is returned once even if it matches more than one candidate.
func Search(s Searcher, d Deinflector, query string) ([]*edict.Word, error) {
	var order []string
	types := map[string]edict.Type{}
	for _, c := range d.Deinflect(query) {
		if _, ok := types[c.Word]; !ok {
			order = append(order, c.Word)
		}
		types[c.Word] |= c.Type
	}

	var words []*edict.Word
	seen := map[int64]bool{}
	for _, w := range order {
		found, err := s.Search(w)
		if err != nil {
			return nil, err
		}
		for _, word := range found {
			if word.Type()&types[w] == 0 || seen[word.Offset] {
				continue
			}
			seen[word.Offset] = true
			words = append(words, word)
		}
	}
	return words, nil
}
