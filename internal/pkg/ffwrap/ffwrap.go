// Copyright 2024 GearnsC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ffwrap shells out to ffprobe and decodes the single frame of color
// metadata the hdr package consumes.
package ffwrap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/gitgerby/hdrprobe/internal/pkg/hdr"

	"github.com/google/logger"
)

var (
	ffprobebinary = "ffprobe"
	ffprobeextra  []string
)

// SetBinaryLocation overrides the ffprobe binary to invoke; the default
// relies on PATH lookup.
func SetBinaryLocation(ffprobe string) {
	ffprobebinary = ffprobe
}

// SetExtraArgs inserts operator supplied ffprobe arguments, for probe tuning
// flags like -analyzeduration or -probesize on hard to sniff sources.
func SetExtraArgs(args []string) {
	ffprobeextra = args
}

// NotVideoStreamError reports that the selected stream index exists but does
// not carry video, so there is no frame to read color metadata from.
type NotVideoStreamError struct {
	CodecType string
}

func (e *NotVideoStreamError) Error() string {
	return fmt.Sprintf("selected stream is %q, not a video stream", e.CodecType)
}

type probeOutput struct {
	Streams []probeStream   `json:"streams"`
	Frames  []hdr.FrameData `json:"frames"`
}

type probeStream struct {
	Codec_type string `json:"codec_type"`
}

// ProbeFrame extracts the color metadata of the first frame of the selected
// stream. It asks ffprobe for exactly one frame restricted to the color
// entries of interest, decodes the JSON output and returns the frame
// descriptor for the hdr package to parse.
func ProbeFrame(ctx context.Context, source string, stream int) (hdr.FrameData, error) {
	args := append([]string{
		"-hide_banner",
		"-loglevel", "warning",
		"-select_streams", strconv.Itoa(stream),
	}, ffprobeextra...)
	args = append(args,
		"-print_format", "json",
		"-show_frames",
		"-read_intervals", "%+#1",
		"-show_entries", "stream=codec_type:frame=pix_fmt,color_space,color_primaries,color_transfer,side_data_list",
		"-i", source,
	)
	logger.Infof("extracting color metadata, calling ffprobe with args: %#v", args)
	cmd := exec.CommandContext(ctx, ffprobebinary, args...)
	o, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return hdr.FrameData{}, fmt.Errorf("ffprobe exited %d: %s", exitErr.ExitCode(), exitErr.Stderr)
		}
		return hdr.FrameData{}, fmt.Errorf("failed to exec ffprobe: %w", err)
	}
	return parseProbeOutput(o, stream)
}

func parseProbeOutput(o []byte, stream int) (hdr.FrameData, error) {
	var po probeOutput
	if err := json.Unmarshal(o, &po); err != nil {
		return hdr.FrameData{}, fmt.Errorf("failed to unmarshal ffprobe output %q: %w", o, err)
	}
	if len(po.Streams) == 0 {
		return hdr.FrameData{}, fmt.Errorf("no stream %d in ffprobe output", stream)
	}
	if po.Streams[0].Codec_type != "video" {
		return hdr.FrameData{}, &NotVideoStreamError{CodecType: po.Streams[0].Codec_type}
	}
	if len(po.Frames) == 0 {
		return hdr.FrameData{}, fmt.Errorf("ffprobe returned no frames for stream %d", stream)
	}
	return po.Frames[0], nil
}
