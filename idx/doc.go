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

// Package idx implements a sorted on-disk index over an EDICT dictionary.
//
// The index is a UTF-8 text file with one record per search key. Each record
// is a line holding the key followed by the byte offsets of the dictionary
// lines that contain it, separated by single spaces:
//
//	うち 20811 20867
//
// Records are sorted by the byte value of their keys and offsets are in
// ascending order. Lookups binary search the index file directly and read
// the matching dictionary lines at their offsets, so neither file is loaded
// into memory.
//
// The index does not detect that the dictionary has changed since it was
// built. Callers must rebuild it.
package idx
