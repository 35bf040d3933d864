/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package stamper

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ManifestName is the optional file in an icon directory that lists the icons
// to offer, in order.
const ManifestName = "icons.json"

// ErrInvalidManifest is returned when icons.json does not match the schema.
var ErrInvalidManifest = errors.New("stamper: invalid icon manifest")

//go:embed manifest.schema.json
var manifestSchema []byte

// Manifest describes the icons of a directory.
type Manifest struct {
	Version int             `json:"version,omitempty"`
	Icons   []ManifestEntry `json:"icons"`
}

// ManifestEntry is one icon. File defaults to <name>.png and Tooltip to
// StampTooltip.
type ManifestEntry struct {
	Name    string `json:"name"`
	File    string `json:"file,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// DefaultManifest lists names in order with default files and tooltips.
func DefaultManifest(names []string) Manifest {
	m := Manifest{Version: 1}
	for _, n := range names {
		m.Icons = append(m.Icons, ManifestEntry{Name: n})
	}
	return m
}

// ParseManifest validates data against the embedded JSON schema and decodes it.
func ParseManifest(data []byte) (Manifest, error) {
	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(manifestSchema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return Manifest{}, fmt.Errorf("%w: %s", ErrInvalidManifest, strings.Join(msgs, "; "))
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return m, nil
}

// ReadManifest loads dir/icons.json. ok is false when the file does not exist.
func ReadManifest(dir string) (m Manifest, ok bool, err error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if errors.Is(err, os.ErrNotExist) {
		return Manifest{}, false, nil
	}
	if err != nil {
		return Manifest{}, false, fmt.Errorf("read icon manifest: %w", err)
	}
	m, err = ParseManifest(data)
	if err != nil {
		return Manifest{}, true, err
	}
	return m, true, nil
}
