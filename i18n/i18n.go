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

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var languageMap = map[string]language.Tag{"en": language.English, "zh": language.Chinese}

// Keys of the catalog. English text is the key itself.
const (
	UsageErrorTemplate     = "Error: %s\n%s"
	NoTargetMessage        = "Can not find module or package name for analyse"
	MultipleTargetsMessage = "More than one module or package name: %s"
	MissingValueMessage    = "Missing value for %s"
	DefaultHelpText        = "Please read README file for more information"
)

var zhCatalog = map[string]string{
	UsageErrorTemplate:     "错误: %s\n%s",
	NoTargetMessage:        "找不到待分析的模块或包名",
	MultipleTargetsMessage: "指定了多个模块或包名: %s",
	MissingValueMessage:    "%s 缺少参数值",
	DefaultHelpText:        "更多信息请阅读 README 文件",
}

func init() {
	for key, msg := range zhCatalog {
		if err := message.SetString(language.Chinese, key, msg); err != nil {
			panic(err)
		}
	}
}

func IsSupported(lang string) bool {
	_, exist := languageMap[lang]
	return exist
}

func GetPrinter(lang string) *message.Printer {
	var langTag language.Tag
	if _, exist := languageMap[lang]; exist {
		langTag = languageMap[lang]
	} else {
		langTag = languageMap["en"]
	}
	return message.NewPrinter(langTag)
}
