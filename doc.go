// Copyright 2026 The Gamera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Migratecpp rewrites deprecated Gamera accessor calls in C++ plugin sources.
//
// Usage:
//
//	migratecpp [-diff] [-v] [-w] [file]
//
// Older Gamera plugin code addresses pixels with the two-argument accessors
//
//	image.get(row, col)
//	image.set(row, col, value)
//
// (also through a pointer, image->get(...)). The current API takes a single
// Point argument instead, with the coordinates in x, y order:
//
//	image.get(Point(col, row))
//	image.set(Point(col, row), value)
//
// Migratecpp reads one source file, or standard input when no file is named,
// rewrites every occurrence of the old call forms, and writes the result to
// standard output. With -w the named file is rewritten in place and nothing
// is written to standard output. With -diff a unified diff between the input
// and the result is printed instead of the result. The -v flag reports the
// number of rewritten call sites to standard error.
//
// The whitespace between arguments is preserved exactly, so
//
//	image.get(r,    c)
//
// becomes
//
//	image.get(Point(c,    r))
//
// Calls whose first argument starts with P are left alone. That keeps
// already-migrated get(Point(...)) calls stable, so running migratecpp over
// its own output is a no-op.
//
// Migratecpp does not parse C++. Matching is purely textual: any .get, ->get,
// .set or ->set call with the right argument shape is rewritten, whatever the
// receiver's actual type, including occurrences in comments and string
// literals; and arguments are matched shortest-first, so an argument that
// itself contains a comma followed by whitespace, or an unbalanced
// parenthesis, will be split incorrectly. Review the diff before committing
// the result.
package main
