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

package i18n

import "testing"

func TestGetPrinter(t *testing.T) {
	for _, testCase := range [...]struct {
		lang     string
		expected string
	}{
		{lang: "en", expected: "Error: boom\nhelp"},
		{lang: "zh", expected: "错误: boom\nhelp"},
		{lang: "fr", expected: "Error: boom\nhelp"},
	} {
		t.Run(testCase.lang, func(t *testing.T) {
			got := GetPrinter(testCase.lang).Sprintf(UsageErrorTemplate, "boom", "help")
			if got != testCase.expected {
				t.Errorf("unexpected result for %v. got: %q. expected: %q.", testCase.lang, got, testCase.expected)
			}
		})
	}
}

func TestFormattedKeys(t *testing.T) {
	got := GetPrinter("zh").Sprintf(MissingValueMessage, "--virtualenv")
	if got != "--virtualenv 缺少参数值" {
		t.Errorf("unexpected translation %q", got)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("en") || !IsSupported("zh") || IsSupported("") {
		t.Errorf("unexpected supported languages")
	}
}
