// Copyright 2026 The Gamera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"golang.org/x/xerrors"

	"github.com/jannschu/gamera/diff"
	"github.com/jannschu/gamera/migrate"
)

var (
	showDiff = flag.Bool("diff", false, "print a diff instead of the rewritten source")
	verbose  = flag.Bool("v", false, "report the number of rewritten calls")
	write    = flag.Bool("w", false, "write result back to the source file instead of standard output")
)

const usageLine = "migratecpp [-diff] [-v] [-w] [file]"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", usageLine)
	os.Exit(2)
}

func main() {
	log.SetPrefix("migratecpp: ")
	log.SetFlags(0)

	flag.Usage = usage
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, os.Stderr, flag.Args()); err != nil {
		if _, ok := err.(*errUsage); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	if len(args) > 1 {
		return newErrUsage(usageLine)
	}
	if *showDiff && *write {
		return newErrUsage("cannot use -diff with -w")
	}
	if *write && len(args) == 0 {
		return newErrUsage("cannot use -w with standard input")
	}

	// The whole input is read up front: a match may start anywhere and every
	// substitution re-scans the entire buffer.
	name := "standard input"
	var old []byte
	var err error
	if len(args) == 1 {
		name = args[0]
		old, err = ioutil.ReadFile(name)
		if err != nil {
			return xerrors.Errorf("reading source: %w", err)
		}
	} else {
		old, err = ioutil.ReadAll(stdin)
		if err != nil {
			return xerrors.Errorf("reading %s: %w", name, err)
		}
	}

	out, n := migrate.Rewrite(string(old))
	if *verbose {
		fmt.Fprintf(stderr, "migratecpp: %d call(s) rewritten\n", n)
	}

	if *showDiff {
		d, err := diff.Diff("old/"+name, old, "new/"+name, []byte(out))
		if err != nil {
			return err
		}
		_, err = stdout.Write(d)
		return err
	}
	if *write {
		if err := ioutil.WriteFile(name, []byte(out), 0666); err != nil {
			return xerrors.Errorf("writing source: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, out)
	return err
}
