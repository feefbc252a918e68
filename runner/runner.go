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

package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/exp/slices"
	"naive.systems/pylint_pycharm/command"
)

type Mode string

const (
	// Direct runs the argument vector without a shell. A virtualenv is
	// activated by editing the child environment.
	Direct Mode = "direct"
	// Shell hands the rendered command line to Shell -c and lets the
	// activate script do its work.
	Shell Mode = "shell"
)

var Modes = map[Mode]bool{Direct: true, Shell: true}

type Runner struct {
	Mode  Mode
	Shell string
	// Stderr receives the linter's standard error, which is never captured.
	// Nil means os.Stderr.
	Stderr io.Writer
	// Environ is the environment the linter starts from. Nil means
	// os.Environ().
	Environ []string
}

type Result struct {
	Stdout   []byte
	ExitCode int
}

// Output runs c and blocks until its standard output is closed. A non-zero
// exit status is not an error, the linter uses it to encode what it found.
func (r *Runner) Output(c *command.Command) (*Result, error) {
	cmd, err := r.prepare(c)
	if err != nil {
		return nil, err
	}
	glog.Info("executing: ", cmd.String())
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			glog.Infof("%s exited with status %d", cmd.Path, exitErr.ExitCode())
			return &Result{Stdout: out, ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, fmt.Errorf("cmd.Output: %v", err)
	}
	return &Result{Stdout: out}, nil
}

func (r *Runner) prepare(c *command.Command) (*exec.Cmd, error) {
	env := r.Environ
	if env == nil {
		env = os.Environ()
	}
	var cmd *exec.Cmd
	switch r.Mode {
	case Shell:
		cmd = exec.Command(r.Shell, "-c", c.String())
	case Direct, "":
		argv := c.Argv()
		if c.Virtualenv != "" {
			var err error
			env, argv[0], err = activate(env, c.Virtualenv, argv[0])
			if err != nil {
				return nil, err
			}
		}
		cmd = exec.Command(argv[0], argv[1:]...)
	default:
		return nil, fmt.Errorf("unsupported launch mode: %v", r.Mode)
	}
	cmd.Env = env
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd, nil
}

// activate does what sourcing bin/activate does to the environment and
// looks program up in the virtualenv first.
func activate(env []string, virtualenv, program string) ([]string, string, error) {
	script := command.ActivateScript(virtualenv)
	if _, err := os.Stat(script); err != nil {
		return nil, "", fmt.Errorf("cannot activate virtualenv %s: %v", virtualenv, err)
	}
	abs, err := filepath.Abs(virtualenv)
	if err != nil {
		return nil, "", fmt.Errorf("filepath.Abs: %v", err)
	}
	bin := filepath.Join(abs, "bin")
	path := bin
	if old := getenv(env, "PATH"); old != "" {
		path += string(os.PathListSeparator) + old
	}
	env = setenv(env, "VIRTUAL_ENV", abs)
	env = setenv(env, "PATH", path)
	env = unsetenv(env, "PYTHONHOME")

	if !strings.ContainsRune(program, filepath.Separator) {
		candidate := filepath.Join(bin, program)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			program = candidate
		}
	}
	return env, program, nil
}

func envIndex(env []string, key string) int {
	return slices.IndexFunc(env, func(kv string) bool {
		return strings.HasPrefix(kv, key+"=")
	})
}

func getenv(env []string, key string) string {
	if i := envIndex(env, key); i >= 0 {
		return env[i][len(key)+1:]
	}
	return ""
}

func setenv(env []string, key, value string) []string {
	env = unsetenv(env, key)
	return append(env, key+"="+value)
}

func unsetenv(env []string, key string) []string {
	env = append([]string(nil), env...)
	for i := envIndex(env, key); i >= 0; i = envIndex(env, key) {
		env = slices.Delete(env, i, i+1)
	}
	return env
}
