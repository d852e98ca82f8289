//go:build windows
// +build windows

package config

const (
	// windows defaults
	defaultFfprobePath  = `c:\ffmpeg\ffprobe.exe`
	defaultLogDirectory = `c:\ProgramData\hdrprobe\logs`
	defaultProbeLimit   = 4

	DefaultConfigPath = `c:\ProgramData\hdrprobe\config.yaml`
)
