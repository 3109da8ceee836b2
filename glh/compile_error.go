// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrCompile = errors.New("shader compile failed")

// CompileError carries the driver log and the offending source.
type CompileError struct {
	Stage  string
	Source string
	Log    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrCompile, e.Stage, strings.TrimSpace(e.Log))
}

func (e *CompileError) Unwrap() error {
	return ErrCompile
}

// Dump returns the log followed by the source with line numbers, the form
// driver logs refer to.
func (e *CompileError) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s shader:\n%s\n", e.Stage, strings.TrimSpace(e.Log))
	lines := strings.Split(strings.TrimSuffix(e.Source, "\n"), "\n")
	w := len(fmt.Sprint(len(lines)))
	for i, l := range lines {
		fmt.Fprintf(&b, "%*d: %s\n", w, i+1, l)
	}
	return b.String()
}
