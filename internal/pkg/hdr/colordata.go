package hdr

import (
	"fmt"
	"strings"
)

// ColorData is the frame's base color description: pixel format plus the
// color space, primaries and transfer tags as ffprobe reported them. The
// tags are kept raw here; each render method applies its own target's
// vocabulary.
type ColorData struct {
	PixFmt         string
	ColorSpace     string
	ColorPrimaries string
	ColorTransfer  string
}

func newColorData(frame FrameData) ColorData {
	return ColorData{
		PixFmt:         frame.Pix_fmt,
		ColorSpace:     frame.Color_space,
		ColorPrimaries: frame.Color_primaries,
		ColorTransfer:  frame.Color_transfer,
	}
}

// FFmpegOptions renders the playback filter flags with the raw tags passed
// straight through. Flag order is fixed.
func (cd ColorData) FFmpegOptions() string {
	return fmt.Sprintf("-pix_fmt %s -colorspace %s -color_trc %s -color_primaries %s",
		cd.PixFmt, cd.ColorSpace, cd.ColorTransfer, cd.ColorPrimaries)
}

// X265Params renders the colormatrix fragment for libx265, or an empty
// string when the color space has no x265 spelling. x265 tolerates the
// omitted field, so no error is raised.
func (cd ColorData) X265Params() string {
	if m, ok := x265ColorMatrix(cd.ColorSpace); ok {
		return fmt.Sprintf("colormatrix=%s", m)
	}
	return ""
}

// LibaomParams renders the aom-params fragment. Primaries and transfer pass
// through raw; matrix-coefficients is appended only when the color space
// resolves to libaom's vocabulary.
func (cd ColorData) LibaomParams() string {
	res := fmt.Sprintf("color-primaries=%s:transfer-characteristics=%s", cd.ColorPrimaries, cd.ColorTransfer)
	if m, ok := libaomMatrixCoefficients(cd.ColorSpace); ok {
		res += fmt.Sprintf(":matrix-coefficients=%s", m)
	}
	return res
}

// SvtAv1Params renders the svtav1-params fragment with primaries and
// transfer mapped to their CICP codes. SVT-AV1 has no colormatrix alias
// table; matrix-coefficients is forced to 9 whenever the raw color space
// tag contains "bt2020", covering both bt2020nc and bt2020_ncl spellings.
func (cd ColorData) SvtAv1Params() string {
	res := fmt.Sprintf("color-primaries=%d:transfer-characteristics=%d",
		svtav1PrimariesCode(cd.ColorPrimaries), svtav1TransferCode(cd.ColorTransfer))
	if strings.Contains(cd.ColorSpace, "bt2020") {
		res += ":matrix-coefficients=9"
	}
	return res
}

func (cd ColorData) String() string {
	return fmt.Sprintf("pix_fmt: %s\ncolor_space: %s\ncolor_primaries: %s\ncolor_transfer: %s",
		cd.PixFmt, cd.ColorSpace, cd.ColorPrimaries, cd.ColorTransfer)
}
