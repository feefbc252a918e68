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

package command

import (
	"path/filepath"
	"strings"

	"naive.systems/pylint_pycharm/args"
)

const (
	OutputFormatOption = "--output-format"
	ParseableFormat    = "parseable"

	// MsgTemplate keeps the parseable prefix so that the rewriter still
	// recognizes every message.
	MsgTemplate = "{path}:{line}:{column}: [{msg_id}({symbol}), {obj}] {msg}"
)

// Command is one linter run: Program Target Flags..., optionally inside an
// activated virtualenv.
type Command struct {
	Program    []string
	Target     string
	Flags      []string
	Virtualenv string
}

// Build assembles the linter command for inv. linter is the program and its
// leading arguments, e.g. ["python3", "-m", "pylint"].
func Build(inv *args.Invocation, linter []string) *Command {
	flags := append([]string(nil), inv.Flags...)
	if inv.MsgTemplate != nil {
		flags = args.SetFlag(flags, args.MsgTemplateOption, MsgTemplate)
	} else {
		flags = args.SetFlag(flags, OutputFormatOption, ParseableFormat)
	}
	return &Command{
		Program:    append([]string(nil), linter...),
		Target:     inv.Target,
		Flags:      flags,
		Virtualenv: inv.Virtualenv,
	}
}

// Argv returns the command as an argument vector, without any activation.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.Program)+1+len(c.Flags))
	argv = append(argv, c.Program...)
	argv = append(argv, c.Target)
	return append(argv, c.Flags...)
}

// String renders the command for a POSIX shell.
func (c *Command) String() string {
	return Format(strings.Join(c.Program, " "), c.Target, args.QuoteAll(c.Flags), c.Virtualenv)
}

// ActivateScript is the script sourced to activate virtualenv.
func ActivateScript(virtualenv string) string {
	return filepath.Join(virtualenv, "bin", "activate")
}

// Format joins program, target and the already quoted flags. A non-empty
// virtualenv is activated first and a failed activation stops the run.
func Format(program, target string, quotedFlags []string, virtualenv string) string {
	if virtualenv != "" {
		program = ". " + ActivateScript(virtualenv) + " && " + program
	}
	return strings.Join(append([]string{program, target}, quotedFlags...), " ")
}
