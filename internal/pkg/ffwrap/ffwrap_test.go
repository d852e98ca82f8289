package ffwrap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gitgerby/hdrprobe/internal/pkg/hdr"
)

const hdr10ProbeOutput = `{
    "frames": [
        {
            "pix_fmt": "yuv420p10le",
            "color_space": "bt2020nc",
            "color_primaries": "bt2020",
            "color_transfer": "smpte2084",
            "side_data_list": [
                {
                    "side_data_type": "Mastering display metadata",
                    "red_x": "17/25",
                    "red_y": "8/25",
                    "green_x": "53/200",
                    "green_y": "69/100",
                    "blue_x": "3/20",
                    "blue_y": "3/50",
                    "white_point_x": "3127/10000",
                    "white_point_y": "329/1000",
                    "min_luminance": "1/10000",
                    "max_luminance": "1000/1"
                },
                {
                    "side_data_type": "Content light level metadata",
                    "max_content": 1000,
                    "max_average": 239
                }
            ]
        }
    ],
    "streams": [
        {
            "codec_type": "video"
        }
    ]
}`

func TestParseProbeOutput(t *testing.T) {
	testCases := []struct {
		desc        string
		output      string
		expected    hdr.FrameData
		wantErrType string
		shouldError bool
	}{
		{
			desc:   "HDR10 video stream",
			output: hdr10ProbeOutput,
			expected: hdr.FrameData{
				Pix_fmt:         "yuv420p10le",
				Color_space:     "bt2020nc",
				Color_primaries: "bt2020",
				Color_transfer:  "smpte2084",
				Side_data_list: []hdr.SideData{
					{
						Side_data_type: hdr.SideDataTypeMastering,
						Red_x:          "17/25",
						Red_y:          "8/25",
						Green_x:        "53/200",
						Green_y:        "69/100",
						Blue_x:         "3/20",
						Blue_y:         "3/50",
						White_point_x:  "3127/10000",
						White_point_y:  "329/1000",
						Min_luminance:  "1/10000",
						Max_luminance:  "1000/1",
					},
					{
						Side_data_type: hdr.SideDataTypeLightLevel,
						Max_content:    1000,
						Max_average:    239,
					},
				},
			},
		},
		{
			desc:        "Audio stream selected",
			output:      `{"streams":[{"codec_type":"audio"}],"frames":[{}]}`,
			wantErrType: "NotVideoStreamError",
			shouldError: true,
		},
		{
			desc:        "No matching stream",
			output:      `{"streams":[],"frames":[]}`,
			shouldError: true,
		},
		{
			desc:        "Video stream with no frames",
			output:      `{"streams":[{"codec_type":"video"}],"frames":[]}`,
			shouldError: true,
		},
		{
			desc:        "Garbage output",
			output:      "not json at all",
			shouldError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			got, err := parseProbeOutput([]byte(tc.output), 0)
			if err == nil && tc.shouldError {
				t.Fatalf("%q: expected error but got nil", tc.desc)
			}
			if err != nil {
				if !tc.shouldError {
					t.Fatalf("%q: got error: %v want: nil", tc.desc, err)
				}
				if tc.wantErrType == "NotVideoStreamError" {
					var nvErr *NotVideoStreamError
					if !errors.As(err, &nvErr) {
						t.Errorf("%q: got error type %T want NotVideoStreamError", tc.desc, err)
					}
				}
				return
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%q: frame data mismatch (-want +got):\n%s", tc.desc, diff)
			}
		})
	}
}
