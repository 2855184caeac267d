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

import "testing"

const contextTestModule = `
	module ctest {
		prefix ct;
		namespace "urn:ctest";

		container top {
			leaf name {
				type string;
			}
			list entry {
				key "id";
				leaf id {
					type uint32;
				}
			}
		}
	}`

func TestContextNewIsolatesState(t *testing.T) {
	a := ContextNew(nil, Options{})
	b := ContextNew(nil, Options{Trusted: true})

	if err := a.Parse(contextTestModule, "ctest"); err != nil {
		t.Fatalf("a.Parse: %v", err)
	}
	if len(b.Modules) != 0 {
		t.Fatalf("b.Modules has %d entries after only a.Parse was called; Contexts must not share state", len(b.Modules))
	}
	if a.ParseOptions.Trusted {
		t.Errorf("a.ParseOptions.Trusted = true, want false")
	}
	if !b.ParseOptions.Trusted {
		t.Errorf("b.ParseOptions.Trusted = false, want true")
	}
}

func TestContextModuleLookup(t *testing.T) {
	ctx := ContextNew(nil, Options{})
	if err := ctx.Parse(contextTestModule, "ctest"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m := ctx.Module("ctest"); m == nil {
		t.Fatalf("Module(%q) = nil after Parse", "ctest")
	}
	if m := ctx.Module("nonesuch"); m != nil {
		t.Errorf("Module(%q) = %v, want nil", "nonesuch", m)
	}
}

func TestContextSetImplemented(t *testing.T) {
	ctx := ContextNew(nil, Options{})
	if err := ctx.Parse(contextTestModule, "ctest"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mod := ctx.Module("ctest")

	if ctx.Implemented(mod) {
		t.Fatalf("Implemented before SetImplemented = true, want false")
	}
	ctx.SetImplemented(mod)
	if !ctx.Implemented(mod) {
		t.Errorf("Implemented after SetImplemented = false, want true")
	}
}

func TestContextFindPath(t *testing.T) {
	ctx := ContextNew(nil, Options{})
	if err := ctx.Parse(contextTestModule, "ctest"); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	e, err := ctx.FindPath(ctx.Module("ctest"), "top/name")
	if err != nil {
		t.Fatalf("FindPath(top/name): %v", err)
	}
	if e == nil || e.Name != "name" {
		t.Fatalf("FindPath(top/name) = %v, want leaf %q", e, "name")
	}

	if _, err := ctx.FindPath(ctx.Module("ctest"), "top/nonesuch"); err == nil {
		t.Errorf("FindPath(top/nonesuch): got no error, want one")
	}

	// A nil module searches every top-level module.
	e, err = ctx.FindPath(nil, "top/entry")
	if err != nil {
		t.Fatalf("FindPath(nil, top/entry): %v", err)
	}
	if e == nil || e.Name != "entry" {
		t.Fatalf("FindPath(nil, top/entry) = %v, want list %q", e, "entry")
	}
}
