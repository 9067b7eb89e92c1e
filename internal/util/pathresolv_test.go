//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	hit := filepath.Join(dir, "present.toml")
	require.NoError(t, os.WriteFile(hit, []byte("x"), 0o644))

	resolved, err := ResolveFile(hit)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(hit), resolved)

	miss := filepath.Join(dir, "absent.toml")
	resolved, err = ResolveFile(miss)
	assert.Error(t, err)
	assert.Equal(t, filepath.Clean(miss), resolved)
}

func TestResolveFileCwdRelative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	name := "pathresolv_cwd_test.tmp"
	path := filepath.Join(wd, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	defer os.Remove(path)

	resolved, err := ResolveFile(name)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(path), resolved)
}

func TestResolveFileExecutableRelative(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	name := "pathresolv_exe_test.tmp"
	path := filepath.Join(filepath.Dir(exe), name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Skipf("executable directory not writable in this environment: %v", err)
	}
	defer os.Remove(path)

	resolved, err := ResolveFile(name)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(path), resolved)
}

func TestResolveFileHomeRelative(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	name := "pathresolv_home_test.tmp"
	path := filepath.Join(home, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Skipf("home directory not writable in this environment: %v", err)
	}
	defer os.Remove(path)

	resolved, err := ResolveFile(name)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(path), resolved)
}

func TestResolveFileNotFoundAnywhere(t *testing.T) {
	name := "pathresolv_never_created_anywhere.tmp"
	resolved, err := ResolveFile(name)
	assert.Error(t, err)
	assert.Equal(t, filepath.Clean(name), resolved)
}
