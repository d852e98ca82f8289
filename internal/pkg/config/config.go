// Package config loads the hdrprobe yaml configuration. Fields are pointers
// so an omitted key can be told apart from an explicit zero; ParseConfig
// fills defaults for anything the file leaves unset.
package config

import (
	"os"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

type HPConfig struct {
	FfprobePath      *string `yaml:"ffprobe_path,omitempty"`
	FfprobeExtraArgs *string `yaml:"ffprobe_extra_args,omitempty"`
	LogDirectory     *string `yaml:"log_directory,omitempty"`
	ProbeLimit       *int    `yaml:"probe_limit,omitempty"`
}

// DefaultConfiguration returns a config populated entirely from the per-OS
// default constants.
func DefaultConfiguration() *HPConfig {
	config := &HPConfig{}
	config.applyDefaults()
	return config
}

// ParseConfig reads the yaml file at path and fills defaults for unset
// fields. A missing file yields the default configuration; a file that
// exists but fails to parse returns nil.
func ParseConfig(path string) *HPConfig {
	config := &HPConfig{}

	f, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(f, config); err != nil {
			return nil
		}
	}

	config.applyDefaults()
	return config
}

func (c *HPConfig) applyDefaults() {
	if c.FfprobePath == nil {
		c.FfprobePath = new(string)
		*c.FfprobePath = defaultFfprobePath
	}
	if c.FfprobeExtraArgs == nil {
		c.FfprobeExtraArgs = new(string)
	}
	if c.LogDirectory == nil {
		c.LogDirectory = new(string)
		*c.LogDirectory = defaultLogDirectory
	}
	if c.ProbeLimit == nil {
		c.ProbeLimit = new(int)
		*c.ProbeLimit = defaultProbeLimit
	}
}

// ExtraArgs splits ffprobe_extra_args with shell quoting rules so values
// like `-analyzeduration 6000M -probesize 6000M` become separate arguments.
func (c *HPConfig) ExtraArgs() ([]string, error) {
	if c.FfprobeExtraArgs == nil || *c.FfprobeExtraArgs == "" {
		return nil, nil
	}
	return shellquote.Split(*c.FfprobeExtraArgs)
}
