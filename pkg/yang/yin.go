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

// This file implements ParseYIN, which reads the YIN (XML) serialization of
// a YANG module (RFC 7950 Appendix C) and produces the same *Statement tree
// that Parse produces from native YANG text, so that BuildAST and everything
// downstream of it is unaware of which surface syntax the caller used.
//
// RFC 7950 Appendix C maps each statement's YANG argument onto either an XML
// attribute or the element's text content; yinArgAttr below is that mapping,
// keyed by statement keyword, with "" meaning "use the element text
// content". Extension statements (ones whose keyword contains a colon, i.e.
// a module-prefixed name) always carry their argument as the "name"
// attribute per Appendix C's generic extension rule, and are handled as a
// fallback below rather than being listed individually.

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// yinArgAttr names the XML attribute holding a keyword's YANG argument.
// An entry mapping to "" means the argument is carried as element text
// (description, reference, contact, organization, error-message, and the
// extension-instance argument statement itself).
var yinArgAttr = map[string]string{
	"module":               "name",
	"submodule":            "name",
	"namespace":            "uri",
	"prefix":               "value",
	"belongs-to":           "module",
	"import":               "module",
	"include":              "module",
	"revision":             "date",
	"revision-date":        "date",
	"yang-version":         "value",
	"extension":            "name",
	"argument":             "name",
	"yin-element":          "value",
	"typedef":              "name",
	"type":                 "name",
	"units":                "name",
	"default":              "value",
	"fraction-digits":      "value",
	"range":                "value",
	"length":               "value",
	"pattern":              "value",
	"modifier":             "value",
	"enum":                 "name",
	"bit":                  "name",
	"position":             "value",
	"path":                 "value",
	"require-instance":     "value",
	"base":                 "name",
	"identity":             "name",
	"feature":              "name",
	"if-feature":           "name",
	"container":            "name",
	"leaf":                 "name",
	"leaf-list":             "name",
	"list":                 "name",
	"key":                  "value",
	"unique":               "tag",
	"choice":               "name",
	"case":                 "name",
	"anyxml":               "name",
	"anydata":              "name",
	"grouping":              "name",
	"uses":                 "name",
	"refine":               "target-node",
	"augment":               "target-node",
	"rpc":                  "name",
	"action":               "name",
	"input":                "",
	"output":               "",
	"notification":          "name",
	"deviation":             "target-node",
	"deviate":              "value",
	"must":                 "condition",
	"when":                 "condition",
	"error-message":         "",
	"error-app-tag":         "value",
	"description":           "",
	"reference":             "",
	"contact":              "",
	"organization":          "",
	"config":               "value",
	"mandatory":             "value",
	"presence":              "value",
	"min-elements":          "value",
	"max-elements":          "value",
	"ordered-by":            "value",
	"status":               "value",
}

// ParseYIN parses a single YIN document (the XML serialization of a YANG
// module or submodule, RFC 7950 Appendix C) and returns the equivalent
// *Statement tree Parse would build from the same module's native-text
// source. path names the source for error/location reporting.
func ParseYIN(input []byte, path string) (*Statement, error) {
	dec := xml.NewDecoder(bytes.NewReader(input))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%s: empty YIN document", path)
		}
		if err != nil {
			return nil, &MalformedInput{Path: path, Offset: dec.InputOffset(), Err: err}
		}
		if start, ok := tok.(xml.StartElement); ok {
			return yinElementToStatement(dec, start, path)
		}
	}
}

// MalformedInput reports a YIN document that is not well-formed XML, or
// that uses an XML shape ParseYIN does not recognize. Offset is the byte
// offset (xml.Decoder.InputOffset) at which the decoder was positioned when
// the problem was detected.
type MalformedInput struct {
	Path   string
	Offset int64
	Err    error
}

func (e *MalformedInput) Error() string {
	return fmt.Sprintf("%s: malformed YIN input at byte offset %d: %v", e.Path, e.Offset, e.Err)
}

func (e *MalformedInput) Unwrap() error { return e.Err }

// yinElementToStatement converts one already-opened XML element (and
// everything nested inside it) into a *Statement. dec must be positioned
// immediately after start was read.
func yinElementToStatement(dec *xml.Decoder, start xml.StartElement, path string) (*Statement, error) {
	keyword := localKeyword(start.Name)

	s := &Statement{
		Keyword: keyword,
		file:    path,
	}

	argAttr, known := yinArgAttr[keyword]
	if !known {
		// Unrecognized keyword: treat it as an extension instance, whose
		// argument is conventionally the "name" attribute per RFC 7950
		// Appendix C.9.
		argAttr = "name"
	}
	if argAttr != "" {
		for _, attr := range start.Attr {
			if attr.Name.Local == argAttr {
				s.HasArgument = true
				s.Argument = attr.Value
				break
			}
		}
	}

	var text bytes.Buffer
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &MalformedInput{Path: path, Offset: dec.InputOffset(), Err: fmt.Errorf("unexpected EOF in %q", keyword)}
		}
		if err != nil {
			return nil, &MalformedInput{Path: path, Offset: dec.InputOffset(), Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := yinElementToStatement(dec, t, path)
			if err != nil {
				return nil, err
			}
			s.statements = append(s.statements, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if argAttr == "" && !s.HasArgument {
				s.HasArgument = true
				s.Argument = trimText(text.String())
			}
			return s, nil
		}
	}
}

// localKeyword turns an xml.Name into the colon-form YANG keyword
// (e.g. "when", or "acme:my-extension" for an extension instance whose
// namespace resolves to the "acme" prefix). Namespace-to-prefix resolution
// for extensions happens later, during Statement Reader dispatch (ast.go),
// which already understands "module:identifier" keywords; here we only
// need the local part, since the base YANG statements this function must
// recognize are never namespace-qualified in YIN.
func localKeyword(name xml.Name) string {
	return name.Local
}

// trimText trims the leading/trailing whitespace XML pretty-printing adds
// around text-content arguments (description, reference, and the like)
// without touching internal whitespace, which YANG treats as significant.
func trimText(s string) string {
	start := 0
	for start < len(s) && isXMLSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isXMLSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isXMLSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
