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

package options

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/google/shlex"
	"gopkg.in/yaml.v2"
	"naive.systems/pylint_pycharm/i18n"
	"naive.systems/pylint_pycharm/runner"
)

// ConfigEnv names the environment variable holding the config file path.
const ConfigEnv = "PYLINT_PYCHARM_CONFIG"

type Config struct {
	Linter      string   `yaml:"linter"`
	Launch      string   `yaml:"launch"`
	Shell       string   `yaml:"shell"`
	Lang        string   `yaml:"lang"`
	HelpText    string   `yaml:"help_text"`
	PassThrough []string `yaml:"pass_through"`
	Debug       bool     `yaml:"debug"`
	LogDir      string   `yaml:"log_dir"`
}

var Defaults = Config{
	Linter:      "pylint",
	Launch:      string(runner.Direct),
	Shell:       "/bin/sh",
	Lang:        "en",
	HelpText:    i18n.DefaultHelpText,
	PassThrough: nil,
	Debug:       false,
	LogDir:      "",
}

func NewConfig() *Config {
	cfg := Defaults
	cfg.PassThrough = append([]string(nil), Defaults.PassThrough...)
	return &cfg
}

// Load reads the YAML file at path over the defaults. An empty path gives
// the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %v", err)
	}
	if err := yaml.UnmarshalStrict(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %v", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by ConfigEnv.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(ConfigEnv))
}

func (c *Config) Validate() error {
	if !runner.Modes[runner.Mode(c.Launch)] {
		return fmt.Errorf("unsupported launch mode: %v", c.Launch)
	}
	if c.Launch == string(runner.Shell) && c.Shell == "" {
		return fmt.Errorf("shell launch mode needs a shell")
	}
	if !i18n.IsSupported(c.Lang) {
		return fmt.Errorf("unsupported lang: %v", c.Lang)
	}
	if _, err := c.LinterArgv(); err != nil {
		return err
	}
	return nil
}

// LinterArgv splits Linter the way a shell would, so "python3 -m pylint"
// is a valid linter.
func (c *Config) LinterArgv() ([]string, error) {
	argv, err := shlex.Split(c.Linter)
	if err != nil {
		return nil, fmt.Errorf("shlex.Split(%q): %v", c.Linter, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty linter command")
	}
	return argv, nil
}

func (c *Config) NewRunner() *runner.Runner {
	return &runner.Runner{
		Mode:  runner.Mode(c.Launch),
		Shell: c.Shell,
	}
}

// InitLogging configures glog from c. Every argument of the process belongs
// to the linter, so glog's flags are set here instead of being parsed from
// the command line.
func (c *Config) InitLogging() error {
	if err := flag.CommandLine.Parse(nil); err != nil {
		return fmt.Errorf("flag.Parse: %v", err)
	}
	if c.LogDir != "" {
		if err := os.MkdirAll(c.LogDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create log dir: %v", err)
		}
		if err := flag.Set("log_dir", c.LogDir); err != nil {
			return fmt.Errorf("failed to set log_dir: %v", err)
		}
	}
	if !c.Debug {
		if err := flag.Set("stderrthreshold", "FATAL"); err != nil {
			return fmt.Errorf("failed to set stderrthreshold: %v", err)
		}
	} else {
		if err := flag.Set("alsologtostderr", "true"); err != nil {
			return fmt.Errorf("failed to set alsologtostderr: %v", err)
		}
		if err := flag.Set("v", "1"); err != nil {
			return fmt.Errorf("failed to set v: %v", err)
		}
	}
	glog.V(1).Infof("config: %+v", *c)
	return nil
}
