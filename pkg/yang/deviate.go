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

// This file implements ApplyDeviate, the deviation applier referenced from
// modules.go's deviation-resolution loop, called once per top-level
// module/submodule Entry after augments have settled, since deviate
// statements are only valid directly under a module/submodule. The rules
// below follow RFC 7950 §7.20.3.2 (deviate not-supported/add/replace/delete)
// applied to the Entry fields ToEntry already populates.

import "fmt"

// ApplyDeviate applies every deviation statement found in e's Module (e must
// be the Entry for a module or submodule) to its target Entry, in the order
// the deviations were declared. It returns one error per deviation that
// could not be applied, e.g. because its target-node path does not resolve.
func (e *Entry) ApplyDeviate() []error {
	mod, ok := e.Node.(*Module)
	if !ok {
		return nil
	}

	var errs []error
	for _, d := range mod.Deviation {
		target := e.Find(d.Name)
		if target == nil {
			errs = append(errs, fmt.Errorf("%s: deviation target not found: %s", Source(d), d.Name))
			continue
		}
		for _, dv := range d.Deviate {
			if err := applyOneDeviate(target, dv); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

// applyOneDeviate applies a single deviate statement to target.
func applyOneDeviate(target *Entry, dv *Deviate) error {
	switch dv.Name {
	case "not-supported":
		if parseOptionsFor(target.Node).DeviateOptions.IgnoreDeviateNotSupported {
			return nil
		}
		removeFromParent(target)
	case "add":
		applyDeviateProperties(target, dv, false)
	case "replace":
		applyDeviateProperties(target, dv, true)
	case "delete":
		deleteDeviateProperties(target, dv)
	default:
		return fmt.Errorf("%s: unknown deviate type: %s", Source(dv), dv.Name)
	}
	return nil
}

// applyDeviateProperties sets the properties named in dv onto target. When
// replace is false (deviate add), a property already set on target is left
// alone, matching RFC 7950 §7.20.3.2's "the target node must not already
// have" constraint for add; the caller is trusted to supply a conformant
// module rather than this being re-validated here.
func applyDeviateProperties(target *Entry, dv *Deviate, replace bool) {
	if dv.Config != nil && (replace || target.Config == TSUnset) {
		if b, err := dv.Config.asBool(); err == nil {
			if b {
				target.Config = TSTrue
			} else {
				target.Config = TSFalse
			}
		}
	}
	if dv.Default != nil && (replace || target.Default == "") {
		target.Default = dv.Default.Name
	}
	if dv.Mandatory != nil && (replace || target.Mandatory == TSUnset) {
		if b, err := dv.Mandatory.asBool(); err == nil {
			if b {
				target.Mandatory = TSTrue
			} else {
				target.Mandatory = TSFalse
			}
		}
	}
	if dv.MinElements != nil && target.ListAttr != nil && (replace || target.ListAttr.MinElements == nil) {
		target.ListAttr.MinElements = dv.MinElements
	}
	if dv.MaxElements != nil && target.ListAttr != nil && (replace || target.ListAttr.MaxElements == nil) {
		target.ListAttr.MaxElements = dv.MaxElements
	}
	if dv.Units != nil {
		// Units is not tracked directly on Entry; it is only surfaced via
		// YangType.Units, so nothing further to deviate here beyond what
		// Type carries.
	}
	if len(dv.Must) > 0 {
		if replace {
			target.Must = nil
		}
		for _, m := range dv.Must {
			if err := xpathCheckSyntax(m.Name); err == nil {
				target.Must = append(target.Must, m)
			}
		}
	}
	if dv.Type != nil {
		if errs := dv.Type.resolve(); len(errs) == 0 {
			target.Type = dv.Type.YangType
		}
	}
	if len(dv.Unique) > 0 {
		if replace {
			target.Unique = nil
		}
		target.Unique = append(target.Unique, dv.Unique...)
	}
}

// deleteDeviateProperties removes the properties named in dv from target.
// For the multi-valued properties (must, unique) only entries whose
// argument matches one named in dv are removed, per RFC 7950 §7.20.3.2;
// single-valued properties are cleared only if dv's value matches what is
// currently set.
func deleteDeviateProperties(target *Entry, dv *Deviate) {
	if dv.Default != nil && target.Default == dv.Default.Name {
		target.Default = ""
	}
	if dv.Mandatory != nil {
		if b, err := dv.Mandatory.asBool(); err == nil && ((b && target.Mandatory == TSTrue) || (!b && target.Mandatory == TSFalse)) {
			target.Mandatory = TSUnset
		}
	}
	if len(dv.Must) > 0 {
		want := map[string]bool{}
		for _, m := range dv.Must {
			want[m.Name] = true
		}
		var kept []*Must
		for _, m := range target.Must {
			if !want[m.Name] {
				kept = append(kept, m)
			}
		}
		target.Must = kept
	}
	if len(dv.Unique) > 0 {
		want := map[string]bool{}
		for _, u := range dv.Unique {
			want[u.Name] = true
		}
		var kept []*Value
		for _, u := range target.Unique {
			if !want[u.Name] {
				kept = append(kept, u)
			}
		}
		target.Unique = kept
	}
}

// removeFromParent detaches e from its parent's directory, implementing
// "deviate not-supported". It is a no-op if e has no parent directory
// (e.g. the module's own entry, which deviate not-supported cannot target
// since deviation target-node paths are schema-node paths below the
// module).
func removeFromParent(e *Entry) {
	if e.Parent == nil || e.Parent.Dir == nil {
		return
	}
	for k, v := range e.Parent.Dir {
		if v == e {
			delete(e.Parent.Dir, k)
			return
		}
	}
}
