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

func TestResolveExtensionInstances(t *testing.T) {
	tests := []struct {
		desc    string
		inMods  map[string]string
		wantErr bool
	}{{
		desc: "well formed extension instance, no argument",
		inMods: map[string]string{
			"ext": `
				module ext {
					prefix e;
					namespace "urn:e";

					extension flag;
				}`,
			"user": `
				module user {
					prefix u;
					namespace "urn:u";
					import ext { prefix e; }

					container c {
						e:flag;
						leaf l { type string; }
					}
				}`,
		},
	}, {
		desc: "well formed extension instance, with argument",
		inMods: map[string]string{
			"ext": `
				module ext {
					prefix e;
					namespace "urn:e";

					extension label {
						argument name;
					}
				}`,
			"user": `
				module user {
					prefix u;
					namespace "urn:u";
					import ext { prefix e; }

					container c {
						e:label "widget";
						leaf l { type string; }
					}
				}`,
		},
	}, {
		desc: "unknown extension",
		inMods: map[string]string{
			"ext": `
				module ext {
					prefix e;
					namespace "urn:e";

					extension flag;
				}`,
			"user": `
				module user {
					prefix u;
					namespace "urn:u";
					import ext { prefix e; }

					container c {
						e:nonesuch;
					}
				}`,
		},
		wantErr: true,
	}, {
		desc: "missing required argument",
		inMods: map[string]string{
			"ext": `
				module ext {
					prefix e;
					namespace "urn:e";

					extension label {
						argument name;
					}
				}`,
			"user": `
				module user {
					prefix u;
					namespace "urn:u";
					import ext { prefix e; }

					container c {
						e:label;
					}
				}`,
		},
		wantErr: true,
	}, {
		desc: "unexpected argument",
		inMods: map[string]string{
			"ext": `
				module ext {
					prefix e;
					namespace "urn:e";

					extension flag;
				}`,
			"user": `
				module user {
					prefix u;
					namespace "urn:u";
					import ext { prefix e; }

					container c {
						e:flag "surprise";
					}
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
