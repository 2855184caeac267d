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

func TestIfFeatureRefs(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{expr: "foo", want: []string{"foo"}},
		{expr: "not foo", want: []string{"foo"}},
		{expr: "foo and bar", want: []string{"foo", "bar"}},
		{expr: "(foo or bar) and not baz", want: []string{"foo", "bar", "baz"}},
		{expr: "p:foo and q:bar", want: []string{"p:foo", "q:bar"}},
	}
	for _, tt := range tests {
		got := ifFeatureRefs(tt.expr)
		if len(got) != len(tt.want) {
			t.Fatalf("ifFeatureRefs(%q) = %v, want %v", tt.expr, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ifFeatureRefs(%q)[%d] = %q, want %q", tt.expr, i, got[i], tt.want[i])
			}
		}
	}
}

func TestResolveFeatureCycles(t *testing.T) {
	tests := []struct {
		desc    string
		inMods  map[string]string
		wantErr bool
	}{{
		desc: "acyclic chain",
		inMods: map[string]string{
			"f": `
				module f {
					prefix f;
					namespace "urn:f";

					feature base;
					feature mid { if-feature base; }
					feature top { if-feature mid; }
				}`,
		},
	}, {
		desc: "direct self cycle",
		inMods: map[string]string{
			"f": `
				module f {
					prefix f;
					namespace "urn:f";

					feature a { if-feature a; }
				}`,
		},
		wantErr: true,
	}, {
		desc: "two feature cycle",
		inMods: map[string]string{
			"f": `
				module f {
					prefix f;
					namespace "urn:f";

					feature a { if-feature b; }
					feature b { if-feature a; }
				}`,
		},
		wantErr: true,
	}, {
		desc: "cross-module acyclic with prefix",
		inMods: map[string]string{
			"base": `
				module base {
					prefix b;
					namespace "urn:b";

					feature has-it;
				}`,
			"user": `
				module user {
					prefix u;
					namespace "urn:u";
					import base { prefix b; }

					feature wants-it { if-feature "b:has-it"; }
				}`,
		},
	}, {
		desc: "unknown feature reference",
		inMods: map[string]string{
			"f": `
				module f {
					prefix f;
					namespace "urn:f";

					feature a { if-feature nonesuch; }
				}`,
		},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			ms := NewModules()
			for n, m := range tt.inMods {
				if err := ms.Parse(m, n); err != nil {
					t.Fatalf("cannot parse module %s, err: %v", n, err)
				}
			}

			errs := ms.Process()
			switch {
			case len(errs) == 0 && tt.wantErr:
				t.Fatalf("got no errors, want one")
			case len(errs) > 0 && !tt.wantErr:
				t.Fatalf("got unexpected errors: %v", errs)
			}
		})
	}
}
