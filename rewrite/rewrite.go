/*
NaiveSystems Analyze - A tool for static code analysis
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package rewrite turns the parseable output of the linter into lines an
// IDE can link to: <absolute path>:<line>:<column>: <description>.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/golang/glog"
	"naive.systems/pylint_pycharm/basic"
)

// The file name runs up to the first colon, so "C:\x.py:3: m" never matches.
var messagePattern = regexp.MustCompile(`^(?P<filename>[^:]*):(?P<line_number>\d+)(:(?P<column>\d+))?: (?P<description>.*)`)

type Diagnostic struct {
	Path        string
	Line        string
	Column      string
	Description string
}

// ParseLine matches one line of linter output. A missing column is "0".
func ParseLine(line string) (*Diagnostic, bool) {
	match := messagePattern.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	d := &Diagnostic{
		Path:        match[messagePattern.SubexpIndex("filename")],
		Line:        match[messagePattern.SubexpIndex("line_number")],
		Column:      match[messagePattern.SubexpIndex("column")],
		Description: match[messagePattern.SubexpIndex("description")],
	}
	if d.Column == "" {
		d.Column = "0"
	}
	return d, true
}

func (d *Diagnostic) Format() string {
	return fmt.Sprintf("%s:%s:%s: %s", d.Path, d.Line, d.Column, d.Description)
}

type Rewriter struct {
	// RootDir is where relative file names are resolved.
	RootDir string
	// PassThrough holds doublestar patterns. Diagnostics for matching file
	// names are emitted unchanged.
	PassThrough []string
}

// Rewrite processes text line by line. The output has exactly as many lines
// as the input, in the same order.
func (r *Rewriter) Rewrite(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = r.RewriteLine(line)
	}
	return strings.Join(lines, "\n")
}

func (r *Rewriter) RewriteLine(line string) string {
	d, ok := ParseLine(line)
	if !ok || r.passThrough(d.Path) {
		return line
	}
	d.Path = basic.ToAbsolute(r.RootDir, d.Path)
	return d.Format()
}

func (r *Rewriter) passThrough(path string) bool {
	for _, pattern := range r.PassThrough {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			glog.Error("malformed pass_through pattern ", pattern)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
