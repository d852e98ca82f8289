package hdr

import "testing"

func TestColorDataFFmpegOptions(t *testing.T) {
	cd := ColorData{
		PixFmt:         "yuv420p10le",
		ColorSpace:     "bt2020nc",
		ColorPrimaries: "bt2020",
		ColorTransfer:  "smpte2084",
	}
	expected := "-pix_fmt yuv420p10le -colorspace bt2020nc -color_trc smpte2084 -color_primaries bt2020"
	if got := cd.FFmpegOptions(); got != expected {
		t.Errorf("FFmpegOptions() = %q want %q", got, expected)
	}
}

func TestColorDataX265Params(t *testing.T) {
	testCases := []struct {
		desc       string
		colorSpace string
		expected   string
	}{
		{
			desc:       "Valid tag passes through",
			colorSpace: "bt2020nc",
			expected:   "colormatrix=bt2020nc",
		},
		{
			desc:       "Unknown passes through",
			colorSpace: "unknown",
			expected:   "colormatrix=unknown",
		},
		{
			desc:       "ffprobe spelling is aliased",
			colorSpace: "bt2020_ncl",
			expected:   "colormatrix=bt2020nc",
		},
		{
			desc:       "Unmappable tag yields an empty fragment",
			colorSpace: "notacolorspace",
			expected:   "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			cd := ColorData{ColorSpace: tc.colorSpace}
			if got := cd.X265Params(); got != tc.expected {
				t.Errorf("%q: X265Params() = %q want %q", tc.desc, got, tc.expected)
			}
		})
	}
}

func TestColorDataLibaomParams(t *testing.T) {
	testCases := []struct {
		desc     string
		cd       ColorData
		expected string
	}{
		{
			desc: "Matrix coefficients appended when aliased",
			cd: ColorData{
				ColorSpace:     "bt2020_ncl",
				ColorPrimaries: "bt2020",
				ColorTransfer:  "smpte2084",
			},
			expected: "color-primaries=bt2020:transfer-characteristics=smpte2084:matrix-coefficients=bt2020ncl",
		},
		{
			desc: "Primaries and transfer pass through raw",
			cd: ColorData{
				ColorSpace:     "bt709",
				ColorPrimaries: "bt709",
				ColorTransfer:  "srgb",
			},
			expected: "color-primaries=bt709:transfer-characteristics=srgb:matrix-coefficients=bt709",
		},
		{
			desc: "Matrix coefficients omitted when unmappable",
			cd: ColorData{
				ColorSpace:     "unknown",
				ColorPrimaries: "bt2020",
				ColorTransfer:  "arib-std-b67",
			},
			expected: "color-primaries=bt2020:transfer-characteristics=arib-std-b67",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := tc.cd.LibaomParams(); got != tc.expected {
				t.Errorf("%q: LibaomParams() = %q want %q", tc.desc, got, tc.expected)
			}
		})
	}
}

func TestColorDataSvtAv1Params(t *testing.T) {
	testCases := []struct {
		desc     string
		cd       ColorData
		expected string
	}{
		{
			desc: "HDR10 tags map to CICP codes with forced matrix",
			cd: ColorData{
				ColorSpace:     "bt2020nc",
				ColorPrimaries: "bt2020",
				ColorTransfer:  "smpte2084",
			},
			expected: "color-primaries=9:transfer-characteristics=16:matrix-coefficients=9",
		},
		{
			desc: "ffprobe bt2020_ncl spelling still forces the matrix",
			cd: ColorData{
				ColorSpace:     "bt2020_ncl",
				ColorPrimaries: "bt2020",
				ColorTransfer:  "hlg",
			},
			expected: "color-primaries=9:transfer-characteristics=18:matrix-coefficients=9",
		},
		{
			desc: "Unknown color space defaults without forcing the matrix",
			cd: ColorData{
				ColorSpace:     "unknown",
				ColorPrimaries: "bt709",
				ColorTransfer:  "smpte2084",
			},
			expected: "color-primaries=1:transfer-characteristics=16",
		},
		{
			desc: "Unmapped tags default to unspecified",
			cd: ColorData{
				ColorSpace:     "ycgco",
				ColorPrimaries: "notaprimary",
				ColorTransfer:  "notatransfer",
			},
			expected: "color-primaries=2:transfer-characteristics=2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			if got := tc.cd.SvtAv1Params(); got != tc.expected {
				t.Errorf("%q: SvtAv1Params() = %q want %q", tc.desc, got, tc.expected)
			}
		})
	}
}
