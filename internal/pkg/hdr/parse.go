// Package hdr converts one frame's HDR colorimetry metadata into the color
// parameter syntax of libx265, libaom-av1 and libsvtav1, plus ffmpeg
// playback flags. It is pure computation over an immutable frame descriptor
// and does no I/O of its own.
package hdr

import (
	"fmt"
	"strings"
)

// MissingColorFieldsError reports a frame that lacks one or more of the four
// mandatory color fields. SDR streams carry no colorimetry metadata, so this
// is an expected outcome for the caller to report, not a processing failure.
type MissingColorFieldsError struct {
	Missing []string
}

func (e *MissingColorFieldsError) Error() string {
	return fmt.Sprintf("missing %s in frame metadata, probably not an HDR stream", strings.Join(e.Missing, ", "))
}

// Result holds everything extracted from one frame: the structured records
// and the four assembled parameter strings, one per target.
type Result struct {
	Color             ColorData
	MasteringDisplays []*MasteringDisplay
	LightLevels       []*ContentLightLevel

	FFmpegOptions string
	X265Params    string
	SvtAv1Params  string
	LibaomParams  string
}

// ParseFrame turns one decoded frame descriptor into per-encoder parameter
// strings. It validates the four mandatory color fields, builds the base
// fragments, then walks the side data list in order appending a ":"-joined
// fragment for every mastering display and content light level block it
// recognizes; blocks with other tags are ignored. A malformed fraction in a
// recognized block aborts the whole frame.
func ParseFrame(frame FrameData) (*Result, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"pix_fmt", frame.Pix_fmt},
		{"color_space", frame.Color_space},
		{"color_primaries", frame.Color_primaries},
		{"color_transfer", frame.Color_transfer},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColorFieldsError{Missing: missing}
	}

	res := &Result{Color: newColorData(frame)}
	res.FFmpegOptions = res.Color.FFmpegOptions()
	res.X265Params = res.Color.X265Params()
	res.SvtAv1Params = res.Color.SvtAv1Params()
	res.LibaomParams = res.Color.LibaomParams()

	for _, sd := range frame.Side_data_list {
		switch sd.Side_data_type {
		case SideDataTypeMastering:
			md, err := NewMasteringDisplay(sd)
			if err != nil {
				return nil, fmt.Errorf("failed to parse mastering display metadata: %w", err)
			}
			res.MasteringDisplays = append(res.MasteringDisplays, md)
			res.X265Params += ":" + md.X265Params()
			res.SvtAv1Params += ":" + md.SvtAv1Params()
		case SideDataTypeLightLevel:
			cll := NewContentLightLevel(sd)
			res.LightLevels = append(res.LightLevels, cll)
			res.X265Params += ":" + cll.X265Params()
			res.SvtAv1Params += ":" + cll.SvtAv1Params()
		}
	}
	return res, nil
}
