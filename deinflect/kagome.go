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

package deinflect

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/ianlewis/go-edict"
)

// IPA dictionary part of speech and conjugation names.
const (
	posVerb      = "動詞"
	posAdjective = "形容詞"
	posNoun      = "名詞"
	posAuxVerb   = "助動詞"
	posParticle  = "助詞"

	posDependent = "非自立"
	posSuffix    = "接尾"
	posSuru      = "サ変接続"
)

var conjugationTypes = []struct {
	prefix string
	t      edict.Type
}{
	{"一段", edict.TypeV1},
	{"五段", edict.TypeV5},
	{"形容詞", edict.TypeAdjI},
	{"カ変", edict.TypeVK},
	{"サ変", edict.TypeVS},
}

// Kagome is a Deinflector backed by the kagome morphological analyzer and
// the IPA dictionary.
type Kagome struct {
	t *tokenizer.Tokenizer
}

// NewKagome returns a new Kagome deinflector.
func NewKagome() (*Kagome, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("creating tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

// Deinflect implements [Deinflector.Deinflect]. The word itself is always
// the first candidate. When the word is an inflecting word followed only by
// auxiliaries and particles, the dictionary form of the inflecting word is
// returned as well.
func (k *Kagome) Deinflect(word string) []Candidate {
	candidates := []Candidate{{Word: word, Type: edict.TypeAll}}

	tokens := k.t.Tokenize(word)
	if len(tokens) == 0 {
		return candidates
	}

	head := tokens[0]
	rest := tokens[1:]
	pos := head.POS()
	if len(pos) == 0 {
		return candidates
	}

	// Nouns taking する, e.g. 勉強した.
	if pos[0] == posNoun && len(pos) > 1 && pos[1] == posSuru && len(rest) > 0 {
		if base, _ := rest[0].BaseForm(); base == "する" && auxiliaries(rest[1:]) {
			candidates = append(candidates, Candidate{Word: head.Surface, Type: edict.TypeVS})
		}
		return candidates
	}

	if pos[0] != posVerb && pos[0] != posAdjective {
		return candidates
	}
	if !auxiliaries(rest) {
		return candidates
	}

	base, ok := head.BaseForm()
	if !ok || base == "*" || base == word {
		return candidates
	}
	var conjugation string
	if f := head.Features(); len(f) > 4 {
		conjugation = f[4]
	}
	for _, c := range conjugationTypes {
		if strings.HasPrefix(conjugation, c.prefix) {
			candidates = append(candidates, Candidate{Word: base, Type: c.t})
			break
		}
	}
	return candidates
}

// auxiliaries reports whether every token is an auxiliary verb, a particle,
// or a dependent verb such as the いる of 食べている.
func auxiliaries(tokens []tokenizer.Token) bool {
	for _, t := range tokens {
		pos := t.POS()
		if len(pos) == 0 {
			return false
		}
		switch pos[0] {
		case posAuxVerb, posParticle:
		case posVerb:
			if len(pos) < 2 || (pos[1] != posDependent && pos[1] != posSuffix) {
				return false
			}
		default:
			return false
		}
	}
	return true
}
