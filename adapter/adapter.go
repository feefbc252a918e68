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

// Package adapter runs the linter on one target and prints its messages in
// the form an IDE turns into links.
package adapter

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/text/message"
	"naive.systems/pylint_pycharm/args"
	"naive.systems/pylint_pycharm/basic"
	"naive.systems/pylint_pycharm/command"
	"naive.systems/pylint_pycharm/i18n"
	"naive.systems/pylint_pycharm/options"
	"naive.systems/pylint_pycharm/rewrite"
)

// UsageExitCode is returned after a usage error was printed.
const UsageExitCode = 2

// Convert runs the linter described by argv and writes the rewritten output
// to out. It returns the exit status to report: the linter's own status, or
// UsageExitCode when argv is malformed, in which case the error and help
// text are written to out and nothing is run. Failures to launch the linter
// are returned as errors.
func Convert(cfg *options.Config, argv []string, out io.Writer) (int, error) {
	runID := uuid.NewString()
	printer := i18n.GetPrinter(cfg.Lang)

	inv, err := args.Parse(argv)
	if err != nil {
		var usageErr *args.UsageError
		if !errors.As(err, &usageErr) {
			return 0, err
		}
		glog.Warningf("[%s] usage error: %v", runID, err)
		if err := writeUsageError(out, printer, usageErr, cfg.HelpText); err != nil {
			return 0, err
		}
		return UsageExitCode, nil
	}

	rootDir, err := basic.RootDir()
	if err != nil {
		return 0, fmt.Errorf("basic.RootDir: %v", err)
	}
	linter, err := cfg.LinterArgv()
	if err != nil {
		return 0, err
	}
	cmd := command.Build(inv, linter)
	glog.Infof("[%s] target: %s, root dir: %s, virtualenv: %q", runID, inv.Target, rootDir, inv.Virtualenv)

	result, err := cfg.NewRunner().Output(cmd)
	if err != nil {
		return 0, fmt.Errorf("failed to run %s: %v", cmd.String(), err)
	}

	rewriter := &rewrite.Rewriter{RootDir: rootDir, PassThrough: cfg.PassThrough}
	if _, err := io.WriteString(out, rewriter.Rewrite(string(result.Stdout))); err != nil {
		return 0, fmt.Errorf("failed to write output: %v", err)
	}
	glog.Infof("[%s] done, linter exit status %d", runID, result.ExitCode)

	// killed by a signal
	if result.ExitCode < 0 {
		return 1, nil
	}
	return result.ExitCode, nil
}

func writeUsageError(out io.Writer, p *message.Printer, usageErr *args.UsageError, helpText string) error {
	if helpText == i18n.DefaultHelpText {
		helpText = p.Sprintf(i18n.DefaultHelpText)
	}
	msg := p.Sprintf(usageErr.Message, usageErr.Args...)
	if _, err := io.WriteString(out, p.Sprintf(i18n.UsageErrorTemplate, msg, helpText)); err != nil {
		return fmt.Errorf("failed to write usage error: %v", err)
	}
	return nil
}
