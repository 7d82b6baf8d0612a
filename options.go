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
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Options are options for reading a dictionary.
type Options struct {
	// Encoding is the character encoding of the dictionary file. A nil
	// Encoding reads the file as UTF-8.
	Encoding encoding.Encoding

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// width folding) on dictionary keys and search queries.
	Folder func() transform.Transformer

	// Aligner computes the furigana of words. When nil, words are annotated
	// with their whole reading.
	Aligner Aligner
}

// DefaultOptions is the default options for reading a dictionary. EDICT
// files are distributed in EUC-JP and keys are matched exactly.
var DefaultOptions = &Options{
	Encoding: japanese.EUCJP,
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions
	}
	return o
}

// NewDecoder returns a decoder for the dictionary's encoding.
func (o *Options) NewDecoder() *encoding.Decoder {
	o = o.orDefault()
	if o.Encoding == nil {
		return encoding.Nop.NewDecoder()
	}
	return o.Encoding.NewDecoder()
}

// Fold folds a key or query.
func (o *Options) Fold(s string) (string, error) {
	o = o.orDefault()
	if o.Folder == nil {
		return s, nil
	}
	folded, _, err := transform.String(o.Folder(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
