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

// Package indent implements an io.Writer that prefixes every line written
// to it with a fixed string, used throughout pkg/yang to pretty-print
// nested schema/tree output (Entry.Print, PrintNode).
package indent

import "io"

// String returns in with prefix inserted at the start of every line. No
// prefix is added after a final trailing newline, so no new trailing line
// is created.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes is the []byte equivalent of String.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return in
	}
	out := make([]byte, 0, len(in)+len(prefix))
	out = append(out, prefix...)
	for i := 0; i < len(in); i++ {
		out = append(out, in[i])
		if in[i] == '\n' && i != len(in)-1 {
			out = append(out, prefix...)
		}
	}
	return out
}

// Writer prefixes every line written to it with a fixed string before
// forwarding the bytes to an underlying io.Writer. atBOL tracks whether the
// next byte written begins a new line, so the prefix lands correctly no
// matter how the caller chunks its Write calls.
type Writer struct {
	w      io.Writer
	prefix []byte
	atBOL  bool
}

// NewWriter returns a Writer that inserts prefix at the start of every line
// written to it, before forwarding to w.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atBOL: true}
}

// Write implements io.Writer. buf is expanded with prefix bytes inserted,
// written to the underlying writer in a single call, and a short write is
// translated back from expanded-byte count to the count of buf's own bytes
// it represents -- the underlying writer is trusted to report n in its own
// (expanded) byte space, not buf's.
func (iw *Writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var expanded []byte
	consumedAt := make([]int, 0, len(buf)+len(iw.prefix))
	consumed := 0
	put := func(b byte, isInput bool) {
		expanded = append(expanded, b)
		if isInput {
			consumed++
		}
		consumedAt = append(consumedAt, consumed)
	}
	if iw.atBOL {
		for _, p := range iw.prefix {
			put(p, false)
		}
		iw.atBOL = false
	}
	for i, b := range buf {
		put(b, true)
		if b == '\n' {
			if i != len(buf)-1 {
				for _, p := range iw.prefix {
					put(p, false)
				}
			} else {
				iw.atBOL = true
			}
		}
	}
	n, err := iw.w.Write(expanded)
	switch {
	case n <= 0:
		return 0, err
	case n >= len(expanded):
		return len(buf), err
	default:
		return consumedAt[n-1], err
	}
}
