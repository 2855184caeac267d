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

// This file implements "refine" statement handling for "uses" expansion.
// ToEntry's *Uses case (entry.go) resolves a use straight to a duplicate
// of its grouping's Entry; applyUsesRefines is the pass that then applies
// Uses.Refine to that duplicate, after which the *Uses case attaches
// Uses.Augment to it.

import "fmt"

// applyUsesRefines applies every refine statement in u to dup, the
// just-expanded (and already dup()'d) copy of u's grouping. Refines are
// applied unconditionally (RFC 7950 §7.13.2 lets a refine override
// whatever the grouping originally specified for that property), unlike
// deviate add/replace which distinguish the two.
func applyUsesRefines(dup *Entry, u *Uses) {
	for _, r := range u.Refine {
		target := dup.Find(r.Name)
		if target == nil {
			dup.addError(fmt.Errorf("%s: refine target not found: %s", Source(r), r.Name))
			continue
		}
		applyOneRefine(target, r)
	}
}

func applyOneRefine(target *Entry, r *Refine) {
	if r.Default != nil {
		target.Default = r.Default.Name
	}
	if r.Description != nil {
		target.Description = r.Description.Name
	}
	if r.Config != nil {
		if b, err := r.Config.asBool(); err == nil {
			if b {
				target.Config = TSTrue
			} else {
				target.Config = TSFalse
			}
		}
	}
	if r.Mandatory != nil {
		if b, err := r.Mandatory.asBool(); err == nil {
			if b {
				target.Mandatory = TSTrue
			} else {
				target.Mandatory = TSFalse
			}
		}
	}
	if r.Presence != nil {
		target.Presence = r.Presence
	}
	if len(r.Must) > 0 {
		for _, m := range r.Must {
			if err := xpathCheckSyntax(m.Name); err == nil {
				target.Must = append(target.Must, m)
			}
		}
	}
	if r.MinElements != nil && target.ListAttr != nil {
		target.ListAttr.MinElements = r.MinElements
	}
	if r.MaxElements != nil && target.ListAttr != nil {
		target.ListAttr.MaxElements = r.MaxElements
	}
}
