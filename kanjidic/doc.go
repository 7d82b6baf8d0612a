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

// Package kanjidic implements reading KANJIDIC per-character reading tables.
//
// Each KANJIDIC record occupies one line. For instance, skipping most of the
// property tags, the record for 形 looks like this:
//
//	形 3741 U5f62 B59 G2 S7 ケイ ギョウ かた -がた かたち なり T1 ち {shape} {form} {style}
//
// It is made of:
//  1. The character.
//  2. The JIS X 0208 code in hexadecimal.
//  3. Property tags, each starting with an upper case letter.
//  4. The on (katakana) and kun (hiragana) readings.
//  5. Optionally, nanori readings introduced by T1 or a radical name
//     introduced by T2.
//  6. The meanings, each enclosed in braces.
//
// Readings are normalized to hiragana and extended with the sound changes
// they undergo inside compounds, which is what the furigana aligner needs.
package kanjidic
