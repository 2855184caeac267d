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

// This file implements the module-level statement ordering check: a
// module or submodule's top-level substatements must appear in five
// groups -- header, linkage, meta, revision, body -- each group's
// statements contiguous and in that relative order, though statements
// may repeat or be omitted within a group, per RFC 7950 §7.1.1's ABNF.
// lex.go/parse.go/ast.go accept any order at parse time; this check adds
// the ordering constraint as a separate pass over the already-built
// Statement tree.

import "fmt"

// orderGroup is the group a top-level module/submodule statement belongs to,
// per RFC 7950 §7.1.1's ABNF ordering.
type orderGroup int

const (
	groupHeader orderGroup = iota
	groupLinkage
	groupMeta
	groupRevision
	groupBody
	groupUnordered // extension statements and anything unrecognized: unchecked
)

var statementGroup = map[string]orderGroup{
	"yang-version": groupHeader,
	"namespace":    groupHeader,
	"prefix":       groupHeader,
	"belongs-to":   groupHeader,

	"import":  groupLinkage,
	"include": groupLinkage,

	"organization": groupMeta,
	"contact":      groupMeta,
	"description":  groupMeta,
	"reference":    groupMeta,

	"revision": groupRevision,
}

// bodyGroupKeywords are treated as groupBody; anything not listed in
// statementGroup or here falls back to groupUnordered (extensions and
// keywords this checker does not know about are never flagged).
var bodyGroupKeywords = map[string]bool{
	"extension": true, "feature": true, "identity": true, "typedef": true,
	"grouping": true, "container": true, "leaf": true, "leaf-list": true,
	"list": true, "choice": true, "anydata": true, "anyxml": true,
	"uses": true, "augment": true, "rpc": true, "notification": true,
	"deviation": true,
}

// OutOfOrderStatement reports a module/submodule-level statement that
// appears before a statement of an earlier ABNF group, e.g. an import
// found after the first revision statement.
type OutOfOrderStatement struct {
	Location string
	Keyword  string
	After    string // the keyword of the later-group statement it follows
}

func (e *OutOfOrderStatement) Error() string {
	return fmt.Sprintf("%s: out-of-order statement %q follows %q from a later group", e.Location, e.Keyword, e.After)
}

// checkStatementOrder validates the top-level substatement order of a
// module or submodule's source Statement, returning one *OutOfOrderStatement
// per violation found.
func checkStatementOrder(src *Statement) []error {
	if src == nil {
		return nil
	}
	var errs []error
	highest := groupHeader
	highestKeyword := ""
	for _, s := range src.SubStatements() {
		g, ok := statementGroup[s.Keyword]
		if !ok {
			if bodyGroupKeywords[s.Keyword] {
				g = groupBody
			} else {
				g = groupUnordered
			}
		}
		if g == groupUnordered {
			continue
		}
		if g < highest {
			errs = append(errs, &OutOfOrderStatement{
				Location: s.Location(),
				Keyword:  s.Keyword,
				After:    highestKeyword,
			})
			continue
		}
		highest = g
		highestKeyword = s.Keyword
	}
	return errs
}
