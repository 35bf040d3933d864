/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestFamilyNames(t *testing.T) {
	p := writeFont(t, t.TempDir(), "Go-Regular.ttf", goregular.TTF)
	names, err := FamilyNames(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, names)
}

func TestDirSourceScansRecursivelyAndDedups(t *testing.T) {
	root := t.TempDir()
	writeFont(t, root, "Go-Regular.ttf", goregular.TTF)
	writeFont(t, root, "nested/copy/Go-Regular.TTF", goregular.TTF)
	writeFont(t, root, "nested/Go-Mono.ttf", gomono.TTF)
	writeFont(t, root, "README.txt", []byte("not a font"))
	writeFont(t, root, "broken.otf", []byte("garbage"))

	src := DirSource{Dirs: []string{root, filepath.Join(root, "missing"), ""}}
	names, err := src.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Go Mono"}, names)
}

func TestStaticSortsAndDedups(t *testing.T) {
	var src LabelSource = Static{"serif", "Arial", "  ", "arial", "Arial"}
	names, err := src.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"Arial", "arial", "serif"}, names)
}

func TestWalkErrOnlyPrunesVanishedDirectories(t *testing.T) {
	root := t.TempDir()
	file := writeFont(t, root, "Go-Regular.ttf", goregular.TTF)
	fi, err := os.Stat(file)
	require.NoError(t, err)
	di, err := os.Stat(root)
	require.NoError(t, err)

	gone := &fs.PathError{Op: "open", Path: file, Err: fs.ErrNotExist}
	assert.NoError(t, walkErr(fs.FileInfoToDirEntry(fi), gone), "a vanished file must not skip its siblings")
	assert.Equal(t, filepath.SkipDir, walkErr(fs.FileInfoToDirEntry(di), gone))
	assert.Equal(t, filepath.SkipDir, walkErr(nil, gone))

	denied := errors.New("permission denied")
	assert.Equal(t, denied, walkErr(fs.FileInfoToDirEntry(fi), denied))
}

func TestDirSourceSkipsMissingRoot(t *testing.T) {
	root := t.TempDir()
	writeFont(t, root, "Go-Mono.ttf", gomono.TTF)
	names, err := DirSource{Dirs: []string{filepath.Join(root, "missing"), root}}.Labels()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Mono"}, names)
}
