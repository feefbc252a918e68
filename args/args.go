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

// Package args splits the command line of pylint_pycharm into the target
// to lint, the options consumed by pylint_pycharm itself and the flags
// forwarded to the linter.
package args

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"naive.systems/pylint_pycharm/i18n"
)

const (
	FlagPrefix        = "--"
	VirtualenvOption  = "--virtualenv"
	MsgTemplateOption = "--msg-template"
)

type UsageErrorKind int

const (
	NoTarget UsageErrorKind = iota
	MultipleTargets
	MissingValue
)

// UsageError reports a malformed command line. Message is a printf format
// so that it can be localized before Args are applied.
type UsageError struct {
	Kind    UsageErrorKind
	Message string
	Args    []any
}

func (e *UsageError) Error() string {
	return fmt.Sprintf(e.Message, e.Args...)
}

type Invocation struct {
	// Target is the module, package, file or directory handed to the linter.
	Target string
	// Virtualenv is the environment to activate before running the linter.
	// Empty means none.
	Virtualenv string
	// MsgTemplate is non-nil when --msg-template was given. Its value is
	// not forwarded, a fixed template is used instead.
	MsgTemplate *string
	// Flags are the remaining -- arguments, unquoted, in command line order.
	Flags []string
}

// QuotedFlags returns Flags as shell tokens.
func (inv *Invocation) QuotedFlags() []string {
	return QuoteAll(inv.Flags)
}

// Parse partitions argv. argv[0] is the program name and is ignored.
//
// Options are extracted before the target is searched so that the value
// of "--virtualenv /env" is not mistaken for a second target.
func Parse(argv []string) (*Invocation, error) {
	virtualenv, _, rest, err := PopArg(argv, VirtualenvOption)
	if err != nil {
		return nil, err
	}
	msgTemplate, hasMsgTemplate, rest, err := PopArg(rest, MsgTemplateOption)
	if err != nil {
		return nil, err
	}
	target, err := ModuleName(rest)
	if err != nil {
		return nil, err
	}
	inv := &Invocation{
		Target:     target,
		Virtualenv: virtualenv,
		Flags:      ForwardedFlags(rest),
	}
	if hasMsgTemplate {
		inv.MsgTemplate = &msgTemplate
	}
	return inv, nil
}

// ModuleName returns the only argument after argv[0] that is not a flag.
func ModuleName(argv []string) (string, error) {
	var names []string
	if len(argv) > 1 {
		for _, arg := range argv[1:] {
			if !isFlag(arg) {
				names = append(names, arg)
			}
		}
	}
	if len(names) == 0 {
		return "", &UsageError{Kind: NoTarget, Message: i18n.NoTargetMessage}
	}
	if len(names) > 1 {
		return "", &UsageError{Kind: MultipleTargets, Message: i18n.MultipleTargetsMessage, Args: []any{strings.Join(names, ", ")}}
	}
	return names[0], nil
}

// PopArg extracts the option name from argv, accepting both "name=value"
// and "name value". The "=" form never consumes the following element.
// When the option is repeated the last occurrence wins. rest is a copy of
// argv without the consumed elements.
func PopArg(argv []string, name string) (value string, found bool, rest []string, err error) {
	rest = append([]string(nil), argv...)
	if len(rest) < 2 {
		return "", false, rest, nil
	}
	for {
		i := slices.IndexFunc(rest[1:], func(arg string) bool {
			return matchesOption(arg, name)
		})
		if i < 0 {
			return value, found, rest, nil
		}
		i++
		if eq := strings.IndexByte(rest[i], '='); eq >= 0 {
			value = rest[i][eq+1:]
			rest = slices.Delete(rest, i, i+1)
		} else {
			if i+1 >= len(rest) {
				return "", false, nil, &UsageError{Kind: MissingValue, Message: i18n.MissingValueMessage, Args: []any{name}}
			}
			value = rest[i+1]
			rest = slices.Delete(rest, i, i+2)
		}
		found = true
	}
}

// ForwardedFlags returns the flags after argv[0] that go to the linter
// unchanged.
func ForwardedFlags(argv []string) []string {
	flags := []string{}
	if len(argv) < 2 {
		return flags
	}
	for _, arg := range argv[1:] {
		if !isFlag(arg) || matchesOption(arg, VirtualenvOption) || matchesOption(arg, MsgTemplateOption) {
			continue
		}
		flags = append(flags, arg)
	}
	return flags
}

// SetFlag sets "name=value" in flags, replacing the last flag with the
// same name or appending one.
func SetFlag(flags []string, name, value string) []string {
	param := name + "=" + value
	idx := -1
	for i, flag := range flags {
		if matchesOption(flag, name) {
			idx = i
		}
	}
	if idx > -1 {
		flags[idx] = param
		return flags
	}
	return append(flags, param)
}

// Quote wraps arg in double quotes, escaping the quotes inside it.
func Quote(arg string) string {
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

func QuoteAll(args []string) []string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, Quote(arg))
	}
	return quoted
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, FlagPrefix)
}

func matchesOption(arg, name string) bool {
	return arg == name || strings.HasPrefix(arg, name+"=")
}
