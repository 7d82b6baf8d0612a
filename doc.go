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

// Package edict implements a library for searching EDICT dictionaries in pure
// Go.
//
// EDICT files contain one entry per line. Each entry lists the spellings of
// the word, its readings and its glosses:
//
//	食べる(P);喰べる(iK) [たべる(P)] /(v1,vt) (1) to eat/(2) to live on/(P)/EntL1358280X/
//
// The reading block is absent for words spelled in kana only. The first line
// of the file is a header.
//
// A [Dict] loads the whole dictionary in memory. The idx subpackage provides
// a sorted on-disk index for searching large dictionaries without loading
// them.
//
// More info on the dictionary format can be found at this URL:
// https://www.edrdg.org/jmdict/edict_doc.html
package edict
