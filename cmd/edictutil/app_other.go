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

//go:build !windows

package main

import (
	"os"
	"path/filepath"
)

// dictLocations returns the directories searched for data files, in order:
// the working directory, the directory of the executable, the system and
// user data directories, EDICT_DATA_DIR and ~/.edict.
func dictLocations() []string {
	var loc []string

	if wd, err := os.Getwd(); err == nil {
		loc = append(loc, wd)
	}

	if execPath, err := os.Executable(); err == nil {
		loc = append(loc, filepath.Dir(execPath))
	}

	loc = append(loc, "/usr/local/share/edict", "/usr/share/edict")

	if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
		loc = append(loc, filepath.Join(xdgDataHome, "edict"))
	}

	if edictDataDir := os.Getenv("EDICT_DATA_DIR"); edictDataDir != "" {
		loc = append(loc, edictDataDir)
	}

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		loc = append(loc, filepath.Join(homeDir, ".edict"))
	}

	return loc
}
