/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package fonts supplies the list of selectable type-face family names.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"

	applog "stampkit/internal/log"
	"stampkit/internal/partition"
)

// LabelSource returns the sorted list of selectable labels. It is queried
// once, when a menu is built.
type LabelSource interface {
	Labels() ([]string, error)
}

// Static is a fixed list of labels.
type Static []string

// Labels returns a sorted, de-duplicated copy.
func (s Static) Labels() ([]string, error) {
	return dedupSorted(append([]string(nil), s...)), nil
}

// DirSource enumerates the family names of the font files found under Dirs.
// Missing directories are skipped; unreadable or unparsable files are logged
// and skipped.
type DirSource struct {
	Dirs []string
}

var fontExts = map[string]bool{".ttf": true, ".otf": true, ".ttc": true, ".otc": true}

// walkErr tolerates entries that vanish during the scan. Only a missing
// directory (or missing root, where e is nil) prunes the walk.
func walkErr(e fs.DirEntry, err error) error {
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if e == nil || e.IsDir() {
		return filepath.SkipDir
	}
	return nil
}

func (d DirSource) Labels() ([]string, error) {
	l := applog.WithComponent("fonts")
	var names []string
	for _, dir := range d.Dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, e fs.DirEntry, err error) error {
			if err != nil {
				return walkErr(e, err)
			}
			if e.IsDir() || !fontExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			fam, ferr := FamilyNames(path)
			if ferr != nil {
				l.Warn("skip font file", slog.String("path", path), slog.Any("err", ferr))
				return nil
			}
			names = append(names, fam...)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan font dir %s: %w", dir, err)
		}
	}
	out := dedupSorted(names)
	l.Debug("font families", slog.Int("files_families", len(names)), slog.Int("unique", len(out)))
	return out, nil
}

// FamilyNames parses a font file or collection and returns the family name
// of every face in it.
func FamilyNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	var buf sfnt.Buffer
	var out []string
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			return nil, fmt.Errorf("font %s[%d]: %w", path, i, err)
		}
		name, err := f.Name(&buf, sfnt.NameIDTypographicFamily)
		if err != nil || strings.TrimSpace(name) == "" {
			name, err = f.Name(&buf, sfnt.NameIDFamily)
		}
		if err != nil {
			return nil, fmt.Errorf("font %s[%d] family name: %w", path, i, err)
		}
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}

func dedupSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	partition.SortLabels(out)
	return out
}
