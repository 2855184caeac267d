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

func TestCheckStatementOrderAccepts(t *testing.T) {
	const mod = `
		module ordered {
			yang-version 1.1;
			namespace "urn:ordered";
			prefix o;

			import imod { prefix i; }

			organization "acme";
			contact "acme@example.com";
			description "well-ordered module";

			revision 2020-01-01 { description "first"; }

			container top {
				leaf l { type string; }
			}
		}`
	ms := NewModules()
	if err := ms.Parse(`module imod { namespace "urn:imod"; prefix i; }`, "imod"); err != nil {
		t.Fatalf("Parse imod: %v", err)
	}
	if err := ms.Parse(mod, "ordered"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if errs := ms.Process(); len(errs) != 0 {
		t.Fatalf("Process well-ordered module: got errors %v, want none", errs)
	}
}

func TestCheckStatementOrderRejectsOutOfOrder(t *testing.T) {
	const mod = `
		module misordered {
			namespace "urn:misordered";
			prefix m;

			revision 2020-01-01 { description "first"; }

			import imod { prefix i; }

			container top {
				leaf l { type string; }
			}
		}`
	ms := NewModules()
	if err := ms.Parse(`module imod { namespace "urn:imod"; prefix i; }`, "imod"); err != nil {
		t.Fatalf("Parse imod: %v", err)
	}
	if err := ms.Parse(mod, "misordered"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	errs := ms.Process()
	if len(errs) == 0 {
		t.Fatalf("Process misordered module: got no errors, want an OutOfOrderStatement")
	}
	found := false
	for _, err := range errs {
		if _, ok := err.(*OutOfOrderStatement); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("Process errors %v do not include an *OutOfOrderStatement", errs)
	}
}
