// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yang

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Path was a package-level list of directories to look for .yang files in,
// shared by every caller in the process; it is now the Modules.Path field
// (set in the Modules struct below) so that two Contexts never fight over
// where modules are found.
//
// AddPath adds the directories specified in p, a colon separated list of
// directory names, to ms.Path, if they are not already present.
func (ms *Modules) AddPath(paths ...string) {
	for _, p := range paths {
		for _, dir := range strings.Split(p, ":") {
			if !ms.pathMap[dir] {
				ms.pathMap[dir] = true
				ms.Path = append(ms.Path, dir)
			}
		}
	}
}

// PathsWithModules returns all paths  under and including the
// root containing files with a ".yang" extension, as well as
// any error encountered
func PathsWithModules(root string) (paths []string, err error) {
	pm := map[string]bool{}
	filepath.Walk(root, func(p string, info os.FileInfo, e error) error {
		err = e
		if err == nil {
			if info == nil {
				return nil
			}
			if !info.IsDir() && strings.HasSuffix(p, ".yang") {
				dir := path.Dir(p)
				if !pm[dir] {
					pm[dir] = true
					paths = append(paths, dir)
				}
			}
			return nil
		}
		return err
	})
	return
}

// readFile makes testing of findFile easier.
var readFile = ioutil.ReadFile

// findFile returns the name and contents of the .yin or .yang file
// associated with name, or an error.  If name is a bare module name (no
// extension and no / in it), both name+".yin" (RFC 7950 Appendix C's YIN
// serialization, tried first as the primary format) and name+".yang"
// (native YANG text) are tried.  When the file is found relative to the
// current directory, its directory is added to ms.Path if not already
// present; a file found through ms.Path leaves ms.Path unchanged.
//
// If a path has the form dir/... then dir and all direct or indirect
// subdirectories of dir are searched.
//
// The current directory (.) is always checked first, no matter the value of
// ms.Path.
func (ms *Modules) findFile(name string) (string, string, error) {
	slash := strings.Index(name, "/")

	var candidates []string
	if slash < 0 && !strings.HasSuffix(name, ".yang") && !strings.HasSuffix(name, ".yin") {
		candidates = []string{name + ".yin", name + ".yang"}
	} else {
		candidates = []string{name}
	}

	for _, cand := range candidates {
		if data, err := readFile(cand); err == nil {
			ms.AddPath(path.Dir(cand))
			return cand, string(data), nil
		}
	}
	if slash >= 0 {
		// If there are any /'s in the name then don't search ms.Path.
		return "", "", fmt.Errorf("no such file: %s", name)
	}

	for _, cand := range candidates {
		for _, dir := range ms.Path {
			var n string
			if path.Base(dir) == "..." {
				n = scanDir(path.Dir(dir), cand, true)
			} else {
				n = scanDir(dir, cand, false)
			}
			if n == "" {
				continue
			}
			if data, err := readFile(n); err == nil {
				return n, string(data), nil
			}
		}
	}
	return "", "", fmt.Errorf("no such file: %s", name)
}

// scanDir is a seam over findInDir so tests can stub out the filesystem scan
// independently of readFile.
var scanDir = findInDir

// revisionName matches "base@date.yang", capturing base and date.
var revisionName = regexp.MustCompile(`^(.*)@([0-9]{4}-[0-9]{2}-[0-9]{2})\.yang$`)

// findInDir looks for a file named name, or failing that a revision-qualified
// version of name (e.g. name "red.yang" matches "red@2010-10-10.yang"), in
// dir and -- when recurse is true -- in any of dir's subdirectories.
//
// An exact name match anywhere in the tree wins immediately. Otherwise every
// revision-qualified candidate in the tree is considered together and the
// one with the lexically greatest (most recent) date wins, regardless of
// how deeply nested it is: a newer revision in a subdirectory beats an older
// one in dir itself. Files whose suffix does not parse as "@YYYY-MM-DD.yang"
// are not candidates at all.
func findInDir(dir, name string, recurse bool) string {
	if n := findExactInDir(dir, name, recurse); n != "" {
		return n
	}
	return findBestRevisionInDir(dir, name, recurse)
}

func findExactInDir(dir, name string, recurse bool) string {
	fis, err := ioutil.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, fi := range fis {
		if !fi.IsDir() && fi.Name() == name {
			return path.Join(dir, name)
		}
	}
	if !recurse {
		return ""
	}
	for _, fi := range fis {
		if fi.IsDir() {
			if n := findExactInDir(path.Join(dir, fi.Name()), name, true); n != "" {
				return n
			}
		}
	}
	return ""
}

func findBestRevisionInDir(dir, name string, recurse bool) string {
	base := strings.TrimSuffix(name, ".yang")
	var best, bestDate string
	var walk func(string)
	walk = func(d string) {
		fis, err := ioutil.ReadDir(d)
		if err != nil {
			return
		}
		for _, fi := range fis {
			if fi.IsDir() {
				if recurse {
					walk(path.Join(d, fi.Name()))
				}
				continue
			}
			if m := revisionName.FindStringSubmatch(fi.Name()); m != nil && m[1] == base && m[2] > bestDate {
				bestDate = m[2]
				best = path.Join(d, fi.Name())
			}
		}
	}
	walk(dir)
	return best
}
