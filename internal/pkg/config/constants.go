//go:build linux || darwin
// +build linux darwin

package config

const (
	// *nix & darwin defaults
	defaultFfprobePath  = "/usr/bin/ffprobe"
	defaultLogDirectory = "/var/log/hdrprobe"
	defaultProbeLimit   = 4

	DefaultConfigPath = "/etc/hdrprobe/config.yaml"
)
