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
	"reflect"
	"strings"

	"github.com/openconfig/yin-yang/internal/resolve"
)

// BuildAST (ast.go) squirrels any prefixed ("prefix:keyword { ... }")
// statement under the current node away into that node's Ext field rather
// than rejecting it; this is how YANG's extension instances (RFC 7950
// §7.19) survive into the AST. An unknown keyword without a prefix is
// reported as an error by BuildAST instead. What BuildAST does not do is check the instance
// against its defining "extension" statement: that an extension with the
// given name is actually defined in the module the prefix resolves to,
// and that the instance supplies an argument if and only if the
// extension's own "argument" substatement says it must. That check is
// what this file adds.
//
// Extension instance substatements are not re-run through the Statement
// Reader into typed Nodes; RFC 7950 gives no schema for their shape (that
// is exactly why BuildAST couldn't build one), so there is nothing to
// recurse into beyond the Statement tree addext already captured. An
// instance's raw substatements remain reachable as Statement.SubStatements
// on the *Statement stored in Node.Exts, for a caller that understands the
// specific extension to walk itself.

// extInstance pairs a captured extension-instance statement with the node
// it was found attached to, which is needed both for prefix resolution
// (FindModuleByPrefix walks up from a node, not a bare Statement) and for
// error locations.
type extInstance struct {
	node Node
	stmt *Statement
}

// collectExtInstances walks n and every Node reachable from it through
// yang-tagged fields -- the same traversal ChildNode and PrintNode use --
// appending one extInstance per statement found in each node's Exts().
func collectExtInstances(n Node, seen map[Node]bool, out *[]extInstance) {
	if n == nil || seen[n] {
		return
	}
	seen[n] = true

	for _, s := range n.Exts() {
		*out = append(*out, extInstance{node: n, stmt: s})
	}

	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
Loop:
	for i := 0; i < t.NumField(); i++ {
		ft := t.Field(i)
		yangTag := ft.Tag.Get("yang")
		if yangTag == "" {
			continue
		}
		for _, p := range strings.Split(yangTag, ",")[1:] {
			if p == "nomerge" {
				continue Loop
			}
		}

		f := v.Field(i)
		switch f.Kind() {
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if child, ok := f.Interface().(Node); ok {
				collectExtInstances(child, seen, out)
			}
		case reflect.Slice:
			for j := 0; j < f.Len(); j++ {
				if child, ok := f.Index(j).Interface().(Node); ok {
					collectExtInstances(child, seen, out)
				}
			}
		}
	}
}

// resolveExtensionInstances checks every extension instance reachable from
// ms's top-level modules and submodules against its defining extension
// statement. It is driven through the Unresolved Queue so that an
// instance whose prefix names a module imported later in map-iteration
// order is retried rather than failed outright, the same reasoning
// Process applies to deviation targets.
func (ms *Modules) resolveExtensionInstances() []error {
	q := resolve.New()

	var roots []Node
	for _, m := range ms.Modules {
		roots = append(roots, m)
	}
	for _, m := range ms.SubModules {
		roots = append(roots, m)
	}

	for _, root := range roots {
		root := root
		var insts []extInstance
		collectExtInstances(root, map[Node]bool{}, &insts)
		for _, inst := range insts {
			inst := inst
			q.Push(&resolve.Item{
				Kind:  resolve.Extension,
				Where: resolve.Location{Module: root.NName(), Path: NodePath(inst.node)},
				Retry: func() (resolve.Resolution, error) {
					return resolveOneExtInstance(inst)
				},
			})
		}
	}

	return q.Run()
}

// resolveOneExtInstance resolves inst.stmt's "prefix:identifier" keyword to
// its defining *Extension and checks argument cardinality. A bare keyword
// (no prefix) is returned as Done without any check; BuildAST does not put
// unprefixed statements into Ext, so none reaches here from the AST.
func resolveOneExtInstance(inst extInstance) (resolve.Resolution, error) {
	prefix, ident := getPrefix(inst.stmt.Keyword)
	if prefix == "" {
		return resolve.Done, nil
	}

	defMod := FindModuleByPrefix(inst.node, prefix)
	if defMod == nil {
		return resolve.Blocked, nil
	}

	var def *Extension
	for _, e := range defMod.Extension {
		if e.Name == ident {
			def = e
			break
		}
	}
	if def == nil {
		return resolve.Failed, fmt.Errorf("%s: unknown extension %s:%s", inst.stmt.Location(), prefix, ident)
	}

	wantsArg := def.Argument != nil
	if inst.stmt.HasArgument != wantsArg {
		if wantsArg {
			return resolve.Failed, fmt.Errorf("%s: extension %s:%s requires argument %q", inst.stmt.Location(), prefix, ident, def.Argument.Name)
		}
		return resolve.Failed, fmt.Errorf("%s: extension %s:%s takes no argument, got %q", inst.stmt.Location(), prefix, ident, inst.stmt.Argument)
	}

	return resolve.Done, nil
}
