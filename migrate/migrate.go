// Copyright 2026 The Gamera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package migrate rewrites deprecated two-argument Gamera accessor calls
// to the single-Point forms.
//
// The engine is deliberately naive: two regular expressions over the raw
// source text, no C++ parsing. Captures are shortest-match, so nested
// parentheses or commas inside an argument are not balanced, and comments
// and string literals are not exempt. The output is meant to be reviewed
// as a diff, not trusted blindly.
package migrate

import "regexp"

// The argument captures are non-greedy and . does not match a newline,
// so a single call site cannot swallow text past the end of its line
// (except through the whitespace runs, which may contain newlines).
var (
	getPat = regexp.MustCompile(`(\.|->)get\((.*?),(\s+)(.*?)\)`)
	setPat = regexp.MustCompile(`(\.|->)set\((.*?),(\s+)(.*?),(\s+)(.*?)\)`)
)

// A Call describes one matched deprecated accessor call in a source buffer.
type Call struct {
	Start, End int    // byte offsets of the whole match, prefix included
	Prefix     string // "." or "->"
	Row        string // first argument text
	Space      string // whitespace between the first and second arguments
	Col        string // second argument text
	Space2     string // whitespace before the value argument (set only)
	Value      string // value argument text (set only)
}

// FindGet reports the leftmost deprecated get call in src.
// The second result is false when src contains none; that is the
// normal rewrite-loop termination signal, not a failure.
func FindGet(src string) (Call, bool) {
	m := find(getPat, src)
	if m == nil {
		return Call{}, false
	}
	return Call{
		Start:  m[0],
		End:    m[1],
		Prefix: src[m[2]:m[3]],
		Row:    src[m[4]:m[5]],
		Space:  src[m[6]:m[7]],
		Col:    src[m[8]:m[9]],
	}, true
}

// FindSet reports the leftmost deprecated set call in src.
func FindSet(src string) (Call, bool) {
	m := find(setPat, src)
	if m == nil {
		return Call{}, false
	}
	return Call{
		Start:  m[0],
		End:    m[1],
		Prefix: src[m[2]:m[3]],
		Row:    src[m[4]:m[5]],
		Space:  src[m[6]:m[7]],
		Col:    src[m[8]:m[9]],
		Space2: src[m[10]:m[11]],
		Value:  src[m[12]:m[13]],
	}, true
}

// find returns pat's leftmost submatch indexes in src, skipping matches
// whose first argument starts with 'P'. The skip keeps already-migrated
// get(Point(...)) calls, and any other call whose first argument is a
// P-prefixed identifier, out of the rewrite. Go's regexp has no lookahead,
// so the check inspects the byte just past the opening paren and resumes
// the search one byte past a rejected anchor; the next accepted match is
// the same one a (?!P) engine would find.
func find(pat *regexp.Regexp, src string) []int {
	off := 0
	for {
		m := pat.FindStringSubmatchIndex(src[off:])
		if m == nil {
			return nil
		}
		for i, x := range m {
			if x >= 0 {
				m[i] = x + off
			}
		}
		// m[4] is where the first argument starts, immediately after "(".
		if src[m[4]] == 'P' {
			off = m[0] + 1
			continue
		}
		return m
	}
}

// Rewrite replaces every deprecated accessor call in src with its Point
// form and returns the final buffer along with the number of call sites
// rewritten. Each iteration re-scans the whole buffer and handles a get
// match before any set match; the loop stops at the first scan that finds
// neither.
func Rewrite(src string) (string, int) {
	n := 0
	for {
		out, ok := rewriteOne(src)
		if !ok {
			return src, n
		}
		src = out
		n++
	}
}

// rewriteOne performs a single substitution, preferring get over set.
func rewriteOne(src string) (string, bool) {
	if c, ok := FindGet(src); ok {
		repl := c.Prefix + "get(Point(" + c.Col + "," + c.Space + c.Row + "))"
		return src[:c.Start] + repl + src[c.End:], true
	}
	if c, ok := FindSet(src); ok {
		repl := c.Prefix + "set(Point(" + c.Col + "," + c.Space + c.Row + ")," + c.Space2 + c.Value + ")"
		return src[:c.Start] + repl + src[c.End:], true
	}
	return "", false
}
