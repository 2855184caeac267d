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
	"strings"
	"testing"
)

const testYIN = `<?xml version="1.0" encoding="UTF-8"?>
<module name="ptest" xmlns="urn:ietf:params:xml:ns:yang:yin:1">
  <namespace uri="urn:ptest"/>
  <prefix value="pt"/>
  <revision date="2020-01-01"/>
  <container name="top">
    <leaf name="name">
      <type name="string"/>
    </leaf>
    <leaf name="count">
      <type name="uint32"/>
      <default value="0"/>
    </leaf>
  </container>
</module>
`

func TestParseYINBuildsStatementTree(t *testing.T) {
	stmt, err := ParseYIN([]byte(testYIN), "ptest.yin")
	if err != nil {
		t.Fatalf("ParseYIN: %v", err)
	}
	if stmt.Keyword != "module" {
		t.Fatalf("Keyword = %q, want %q", stmt.Keyword, "module")
	}
	if stmt.Argument != "ptest" {
		t.Fatalf("Argument = %q, want %q", stmt.Argument, "ptest")
	}

	var container *Statement
	for _, s := range stmt.SubStatements() {
		if s.Keyword == "container" {
			container = s
		}
	}
	if container == nil {
		t.Fatalf("no container substatement found")
	}
	if container.Argument != "top" {
		t.Errorf("container.Argument = %q, want %q", container.Argument, "top")
	}
}

func TestParseYINMatchesNativeText(t *testing.T) {
	const native = `
		module ptest {
			prefix pt;
			namespace "urn:ptest";
			revision 2020-01-01;

			container top {
				leaf name {
					type string;
				}
				leaf count {
					type uint32;
					default 0;
				}
			}
		}`

	nativeMS := NewModules()
	if err := nativeMS.Parse(native, "ptest"); err != nil {
		t.Fatalf("Parse (native): %v", err)
	}
	if errs := nativeMS.Process(); len(errs) != 0 {
		t.Fatalf("Process (native): %v", errs)
	}
	nativeEntry := ToEntry(nativeMS.Modules["ptest"])

	ctx := ContextNew(nil, Options{})
	if _, err := ctx.ParseYinMemory([]byte(testYIN), "ptest.yin"); err != nil {
		t.Fatalf("ParseYinMemory: %v", err)
	}
	if errs := ctx.Process(); len(errs) != 0 {
		t.Fatalf("Process (YIN): %v", errs)
	}
	yinEntry := ToEntry(ctx.Modules["ptest"])

	if nativeEntry.Dir["top"] == nil || yinEntry.Dir["top"] == nil {
		t.Fatalf("missing top container: native=%v yin=%v", nativeEntry.Dir["top"], yinEntry.Dir["top"])
	}
	nativeTop, yinTop := nativeEntry.Dir["top"], yinEntry.Dir["top"]
	for _, name := range []string{"name", "count"} {
		if nativeTop.Dir[name] == nil {
			t.Fatalf("native: missing leaf %q", name)
		}
		if yinTop.Dir[name] == nil {
			t.Fatalf("yin: missing leaf %q", name)
		}
		if nativeTop.Dir[name].Type.Name != yinTop.Dir[name].Type.Name {
			t.Errorf("leaf %q: native type %q, yin type %q", name, nativeTop.Dir[name].Type.Name, yinTop.Dir[name].Type.Name)
		}
	}
	if yinTop.Dir["count"].Default != "0" {
		t.Errorf("yin count default = %q, want %q", yinTop.Dir["count"].Default, "0")
	}
}

func TestParseYINMalformedInput(t *testing.T) {
	_, err := ParseYIN([]byte("<module name=\"bad\">"), "bad.yin")
	if err == nil {
		t.Fatalf("ParseYIN: got no error for truncated XML, want one")
	}
	if !strings.Contains(err.Error(), "malformed YIN input") {
		t.Errorf("ParseYIN error = %q, want it to mention malformed YIN input", err.Error())
	}
}

func TestParseYINEmptyInput(t *testing.T) {
	_, err := ParseYIN(nil, "empty.yin")
	if err == nil {
		t.Fatalf("ParseYIN: got no error for empty document, want one")
	}
}

// TestModulesParseDetectsYIN checks that Modules.Parse, the entry point
// Read/GetModule funnel through, recognizes YIN input by content and
// routes it through ParseYIN without the caller naming the format.
func TestModulesParseDetectsYIN(t *testing.T) {
	ms := NewModules()
	if err := ms.Parse(testYIN, "ptest.yin"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ms.Modules["ptest"] == nil {
		t.Fatalf("Parse did not register module %q from YIN input", "ptest")
	}
	if errs := ms.Process(); len(errs) != 0 {
		t.Fatalf("Process: %v", errs)
	}
}

func TestLooksLikeYIN(t *testing.T) {
	tests := []struct {
		data string
		want bool
	}{
		{data: testYIN, want: true},
		{data: "  \n\t<module/>", want: true},
		{data: "module m { }", want: false},
		{data: "", want: false},
		{data: "   ", want: false},
	}
	for _, tt := range tests {
		if got := looksLikeYIN(tt.data); got != tt.want {
			t.Errorf("looksLikeYIN(%q) = %v, want %v", tt.data, got, tt.want)
		}
	}
}
