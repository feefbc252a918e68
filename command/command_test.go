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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/shlex"
	"naive.systems/pylint_pycharm/args"
)

func TestFormat(t *testing.T) {
	for _, testCase := range [...]struct {
		name       string
		virtualenv string
		expected   string
	}{
		{
			name:     "without virtualenv",
			expected: "pylint module_name arg1 arg2",
		},
		{
			name:       "with virtualenv",
			virtualenv: "virtual_path",
			expected:   ". virtual_path/bin/activate && pylint module_name arg1 arg2",
		},
		{
			name:       "with absolute virtualenv",
			virtualenv: "/v",
			expected:   ". /v/bin/activate && pylint module_name arg1 arg2",
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			got := Format("pylint", "module_name", []string{"arg1", "arg2"}, testCase.virtualenv)
			if got != testCase.expected {
				t.Errorf("unexpected command. got: %v. expected: %v.", got, testCase.expected)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	template := "ignored"
	for _, testCase := range [...]struct {
		name         string
		inv          *args.Invocation
		expectedArgv []string
	}{
		{
			name:         "parseable output by default",
			inv:          &args.Invocation{Target: "m", Flags: []string{"--reports=n"}},
			expectedArgv: []string{"pylint", "m", "--reports=n", "--output-format=parseable"},
		},
		{
			name:         "user output format replaced",
			inv:          &args.Invocation{Target: "m", Flags: []string{"--output-format=json"}},
			expectedArgv: []string{"pylint", "m", "--output-format=parseable"},
		},
		{
			name:         "msg template uses the fixed template",
			inv:          &args.Invocation{Target: "m", MsgTemplate: &template, Flags: []string{}},
			expectedArgv: []string{"pylint", "m", "--msg-template=" + MsgTemplate},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			cmd := Build(testCase.inv, []string{"pylint"})
			if diff := cmp.Diff(testCase.expectedArgv, cmd.Argv()); diff != "" {
				t.Errorf("unexpected argv (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildDoesNotModifyInvocation(t *testing.T) {
	inv := &args.Invocation{Target: "m", Flags: []string{"--output-format=json"}}
	Build(inv, []string{"pylint"})
	if inv.Flags[0] != "--output-format=json" {
		t.Errorf("invocation flags modified: %v", inv.Flags)
	}
}

func TestString(t *testing.T) {
	cmd := &Command{
		Program:    []string{"python3", "-m", "pylint"},
		Target:     "pkg",
		Flags:      []string{"--reports=n", "--output-format=parseable"},
		Virtualenv: "/v",
	}
	expected := `. /v/bin/activate && python3 -m pylint pkg "--reports=n" "--output-format=parseable"`
	if got := cmd.String(); got != expected {
		t.Errorf("unexpected command. got: %v. expected: %v.", got, expected)
	}
}

func TestStringTokenizesBackToArgv(t *testing.T) {
	cmd := &Command{
		Program: []string{"pylint"},
		Target:  "pkg",
		Flags:   []string{`--init-hook=import sys; print("a b")`, "--msg-template=" + MsgTemplate},
	}
	tokens, err := shlex.Split(cmd.String())
	if err != nil {
		t.Fatalf("shlex.Split: %v", err)
	}
	if diff := cmp.Diff(cmd.Argv(), tokens); diff != "" {
		t.Errorf("shell rendering does not round trip (-want +got):\n%s", diff)
	}
}
