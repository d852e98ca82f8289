// Copyright 2024 GearnsC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gitgerby/hdrprobe/internal/pkg/config"
	"github.com/gitgerby/hdrprobe/internal/pkg/ffwrap"
	"github.com/gitgerby/hdrprobe/internal/pkg/hdr"

	"github.com/google/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	inputFiles    []string
	inputStream   int
	ffprobeBinary string
	configPath    string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "hdrprobe [flags] [file ...]",
	Short: "Extract HDR metadata and generate encoder color parameters",
	Long: `hdrprobe reads the HDR colorimetry metadata of a video file's first frame
through ffprobe and translates it into the color parameter syntax of
libx265, libaom-av1 and libsvtav1, plus ffmpeg playback flags.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&inputFiles, "input-file", "i", nil, "video file to extract HDR metadata from; repeatable")
	rootCmd.Flags().IntVarP(&inputStream, "input-stream", "s", 0, "video stream number in the input file")
	rootCmd.Flags().StringVarP(&ffprobeBinary, "ffprobe-binary", "e", "", "ffprobe binary to use; overrides the config file")
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath, "config file location")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log ffprobe invocations to stderr")
	rootCmd.SilenceUsage = true
}

func run(cmd *cobra.Command, args []string) error {
	files := append(inputFiles, args...)
	if len(files) == 0 {
		return errors.New("no input files, pass --input-file or positional arguments")
	}

	cfg := config.ParseConfig(configPath)
	if cfg == nil {
		return fmt.Errorf("failed to parse config file %q", configPath)
	}

	logger.Init("hdrprobe", verbose, false, logSink(*cfg.LogDirectory))

	if ffprobeBinary == "" {
		ffprobeBinary = *cfg.FfprobePath
	}
	ffwrap.SetBinaryLocation(ffprobeBinary)
	extra, err := cfg.ExtraArgs()
	if err != nil {
		return fmt.Errorf("failed to split ffprobe_extra_args: %v", err)
	}
	ffwrap.SetExtraArgs(extra)

	// Each file is an independent probe+parse, so fan out; reports are
	// serialized under a mutex to keep them from interleaving.
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(*cfg.ProbeLimit)
	var mu sync.Mutex
	for _, f := range files {
		g.Go(func() error {
			return processFile(ctx, f, &mu)
		})
	}
	return g.Wait()
}

// processFile probes one file's first frame and prints its report. The
// not-HDR outcome is reported but does not fail the run.
func processFile(ctx context.Context, f string, mu *sync.Mutex) error {
	frame, err := ffwrap.ProbeFrame(ctx, f, inputStream)
	if err != nil {
		return fmt.Errorf("%q: %w", f, err)
	}
	res, err := hdr.ParseFrame(frame)

	mu.Lock()
	defer mu.Unlock()
	var missing *hdr.MissingColorFieldsError
	switch {
	case errors.As(err, &missing):
		fmt.Printf("%s: %v\n", f, missing)
		return nil
	case err != nil:
		return fmt.Errorf("%q: %w", f, err)
	}
	report(f, res)
	return nil
}

// logSink opens the diagnostic log file under the configured directory,
// falling back to a discarded log when the directory is unusable.
func logSink(dir string) io.Writer {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "hdrprobe.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}

func report(file string, res *hdr.Result) {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n\n", file)
	fmt.Fprintf(&b, "Color Data:\n%s\n\n", res.Color)
	for _, md := range res.MasteringDisplays {
		fmt.Fprintf(&b, "Mastering display metadata:\n%s\n\n", md)
	}
	for _, cll := range res.LightLevels {
		fmt.Fprintf(&b, "Content light level metadata:\n%s\n\n", cll)
	}
	fmt.Fprintf(&b, "FFmpeg options: %s\n\n", res.FFmpegOptions)
	fmt.Fprintf(&b, "x265 params: %s\n\n", res.X265Params)
	fmt.Fprintf(&b, "libsvtav1 params: %s\n\n", res.SvtAv1Params)
	fmt.Fprintf(&b, "libaom-av1 params: %s\n", res.LibaomParams)
	fmt.Print(b.String())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hdrprobe: %v\n", err)
		os.Exit(1)
	}
}
