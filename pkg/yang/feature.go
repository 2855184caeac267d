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
	"strings"

	"github.com/openconfig/yin-yang/internal/resolve"
)

// ifFeatureRefs extracts the feature references named by an if-feature
// boolean expression (RFC 7950 §9.10.2's "not"/"and"/"or" grammar over
// feature names, with parentheses for grouping). Operators and grouping
// are discarded; what remains are the individual "prefix:name" or bare
// "name" tokens that must each resolve to a defined feature.
func ifFeatureRefs(expr string) []string {
	var refs []string
	for _, tok := range strings.Fields(expr) {
		tok = strings.Trim(tok, "()")
		switch tok {
		case "", "not", "and", "or":
			continue
		}
		refs = append(refs, tok)
	}
	return refs
}

// resolveFeatureCycles checks that the reference graph among every feature
// statement's if-feature conditions is acyclic, walking it through the
// Unresolved Queue under the resolve.Feature kind: a feature's Item can
// only report Done once every feature it depends on has itself already
// reported Done, so two features that (directly or transitively) depend on
// each other stay mutually Blocked and Run surfaces that as a CycleError,
// the same way a true cyclic dependency would in a topological sort.
func (ms *Modules) resolveFeatureCycles() []error {
	q := resolve.New()
	resolved := map[*Feature]bool{}

	var mods []*Module
	for _, m := range ms.Modules {
		mods = append(mods, m)
	}
	for _, m := range ms.SubModules {
		mods = append(mods, m)
	}

	for _, m := range mods {
		for _, f := range m.Feature {
			m, f := m, f
			q.Push(&resolve.Item{
				Kind:  resolve.Feature,
				Where: resolve.Location{Module: m.Name, Path: f.Name},
				Retry: func() (resolve.Resolution, error) {
					return resolveOneFeature(f, resolved)
				},
			})
		}
	}

	return q.Run()
}

func resolveOneFeature(f *Feature, resolved map[*Feature]bool) (resolve.Resolution, error) {
	for _, iv := range f.IfFeature {
		for _, ref := range ifFeatureRefs(iv.Name) {
			prefix, name := getPrefix(ref)
			defMod := FindModuleByPrefix(f, prefix)
			if defMod == nil {
				return resolve.Failed, fmt.Errorf("%s: feature %q: if-feature %q: unknown module prefix", Source(f), f.Name, iv.Name)
			}

			var target *Feature
			for _, tf := range defMod.Feature {
				if tf.Name == name {
					target = tf
					break
				}
			}
			if target == nil {
				return resolve.Failed, fmt.Errorf("%s: feature %q: if-feature %q: unknown feature", Source(f), f.Name, iv.Name)
			}
			if target == f {
				return resolve.Failed, fmt.Errorf("%s: feature %q: if-feature refers to itself", Source(f), f.Name)
			}
			if !resolved[target] {
				return resolve.Blocked, nil
			}
		}
	}
	resolved[f] = true
	return resolve.Done, nil
}
