// Copyright 2026 The Gamera Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff computes a unified diff of two byte slices by shelling
// out to the diff tool.
package diff

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
)

// Diff returns the unified diff between old and new, with the file header
// rewritten to use oldName and newName. The result is nil when old and new
// are identical.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	f1, err := writeTemp(old)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f1)

	f2, err := writeTemp(new)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f2)

	data, err := exec.Command("diff", "-u", f1, f2).CombinedOutput()
	if err != nil && len(data) == 0 {
		// Exit status 1 just means the files differ; a failure with no
		// output is a real one.
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	// Replace the two temp-file header lines with the caller's names.
	body := data
	for i := 0; i < 2; i++ {
		j := bytes.IndexByte(body, '\n')
		if j < 0 {
			return data, nil
		}
		body = body[j+1:]
	}
	if len(body) == 0 || body[0] != '@' {
		return data, nil
	}
	hdr := fmt.Sprintf("diff %s %s\n--- %s\n+++ %s\n", oldName, newName, oldName, newName)
	return append([]byte(hdr), body...), nil
}

func writeTemp(data []byte) (string, error) {
	f, err := ioutil.TempFile("", "migratecpp-diff")
	if err != nil {
		return "", err
	}
	_, err = f.Write(data)
	if err1 := f.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
