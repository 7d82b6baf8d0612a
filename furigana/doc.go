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

// Package furigana aligns kanji spellings with their kana readings and
// renders the result as ruby text in the bracket notation used by Anki:
//
//	牛[ぎゅう]肉[にく]
//
// The alignment is a breadth-first search over the ways the reading can be
// split between the characters of the spelling, using the per-character
// readings from a KANJIDIC table.
package furigana
