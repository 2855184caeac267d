// Copyright 2017 Google Inc.
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

// TestTrustedSkipsSemanticValidation checks that a malformed "when"
// expression, which Process ordinarily reports as a semantic error, is
// accepted without complaint when Options.Trusted is set.
func TestTrustedSkipsSemanticValidation(t *testing.T) {
	const mod = `
		module m {
			prefix m;
			namespace "urn:m";

			container c {
				leaf l {
					type string;
					when "((( not valid xpath";
				}
			}
		}`

	untrusted := NewModules()
	if err := untrusted.Parse(mod, "m"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if errs := untrusted.Process(); len(errs) == 0 {
		t.Fatalf("Process with Trusted unset: got no errors, want a when-syntax error")
	}

	trusted := NewModules()
	trusted.ParseOptions.Trusted = true
	if err := trusted.Parse(mod, "m"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if errs := trusted.Process(); len(errs) != 0 {
		t.Fatalf("Process with Trusted set: got errors %v, want none", errs)
	}
}

// TestStrictRevisionsRejectsMismatch checks that an import naming a
// revision-date that does not match the imported module's actual
// revision is rejected only when Options.StrictRevisions is set.
func TestStrictRevisionsRejectsMismatch(t *testing.T) {
	const base = `
		module base {
			prefix b;
			namespace "urn:b";
			revision 2020-01-01;
		}`
	const user = `
		module user {
			prefix u;
			namespace "urn:u";
			import base { prefix b; revision-date 2019-01-01; }
		}`

	lenient := NewModules()
	if err := lenient.Parse(base, "base"); err != nil {
		t.Fatalf("Parse base: %v", err)
	}
	if err := lenient.Parse(user, "user"); err != nil {
		t.Fatalf("Parse user: %v", err)
	}
	if errs := lenient.Process(); len(errs) != 0 {
		t.Fatalf("Process without StrictRevisions: got errors %v, want none", errs)
	}

	strict := NewModules()
	strict.ParseOptions.StrictRevisions = true
	if err := strict.Parse(base, "base"); err != nil {
		t.Fatalf("Parse base: %v", err)
	}
	if err := strict.Parse(user, "user"); err != nil {
		t.Fatalf("Parse user: %v", err)
	}
	if errs := strict.Process(); len(errs) == 0 {
		t.Fatalf("Process with StrictRevisions: got no errors, want a revision-mismatch error")
	}
}
