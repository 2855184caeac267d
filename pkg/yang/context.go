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

// This file implements the external Loader API: ContextNew, ParseYinMemory,
// SetImplemented, and FindPath. Context is an alias for Modules -- the same
// registry, augmented with the per-Context state described in modules.go --
// so that a Context and the Modules value the rest of this package's tests
// already exercise are always the same object; Context simply names the
// entry points a new caller is expected to use.

import "fmt"

// Context is the session-scoped handle a caller uses to load and query a
// set of YANG modules. Two Contexts share nothing: each owns its own
// module table, type/identity dictionaries, and entry cache.
type Context = Modules

// ContextNew creates an empty Context that will search searchPaths (in
// addition to the current directory) when an import or include needs to
// locate a module by name, and applies opts to everything subsequently
// parsed into it.
func ContextNew(searchPaths []string, opts Options) *Context {
	ctx := NewModules()
	ctx.ParseOptions = opts
	ctx.AddPath(searchPaths...)
	return ctx
}

// ParseYinMemory parses the YIN document in data (the XML serialization of
// a YANG module or submodule, RFC 7950 Appendix C) and adds the resulting
// Module to ctx. name identifies the source for diagnostics; it need not be
// a filename. On success the parsed *Module is returned; it is not yet
// processed (see Context.Process) and so its Entry tree, if queried before
// Process, will be incomplete.
func (ctx *Context) ParseYinMemory(data []byte, name string) (*Module, error) {
	stmt, err := ParseYIN(data, name)
	if err != nil {
		return nil, err
	}
	n, err := BuildAST(stmt)
	if err != nil {
		return nil, err
	}
	mod, ok := n.(*Module)
	if !ok {
		return nil, fmt.Errorf("%s: YIN document did not describe a module or submodule", name)
	}
	if err := ctx.add(mod); err != nil {
		return nil, err
	}
	return mod, nil
}

// Module returns the Module named name that has already been loaded into
// ctx (as a module, not a submodule), or nil if none has been. Unlike
// GetModule, Module never attempts to read a file from disk; it only
// inspects what has already been parsed into ctx.
func (ctx *Context) Module(name string) *Module {
	return ctx.Modules[name]
}

// SetImplemented marks mod implemented (as opposed to merely imported for
// its types/groupings), matching the "implemented" bit RFC 7950 §5.6.5
// used to decide whether a module's own deviations and augments actually
// apply. A module's augments/deviations take effect against their target
// regardless of whether the target module itself is
// implemented; only mod's own status is recorded here. Neither ApplyDeviate
// nor the augment resolver (deviate.go, uses.go) reads this mark: deviate
// and augment statements are applied whether or not the module they come
// from is marked implemented.
func (ctx *Context) SetImplemented(mod *Module) {
	if ctx.implemented == nil {
		ctx.implemented = map[*Module]bool{}
	}
	ctx.implemented[mod] = true
}

// Implemented reports whether mod has been marked implemented by
// SetImplemented.
func (ctx *Context) Implemented(mod *Module) bool {
	return ctx.implemented[mod]
}

// FindPath resolves a schema-node path (the same slash-separated,
// optionally prefix-qualified syntax FindNode accepts) rooted at mod's
// Entry tree, after ensuring ctx has been fully processed. A nil mod
// resolves the path against every top-level module's Entry tree in turn,
// returning the first match.
func (ctx *Context) FindPath(mod *Module, path string) (*Entry, error) {
	if errs := ctx.Process(); len(errs) != 0 {
		return nil, errs[0]
	}
	if mod != nil {
		e := ToEntry(mod)
		return findEntryPath(e, path)
	}
	for _, m := range ctx.Modules {
		if e, err := findEntryPath(ToEntry(m), path); err == nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("FindPath: no module resolves path %q", path)
}

func findEntryPath(e *Entry, path string) (*Entry, error) {
	if e == nil {
		return nil, fmt.Errorf("FindPath: nil entry")
	}
	found := e.Find(path)
	if found == nil {
		return nil, fmt.Errorf("FindPath: %q not found under %s", path, e.Name)
	}
	return found, nil
}
