package hdr

import "fmt"

// Denominators the encoders expect expanded values against. ffprobe divides
// chromaticity by 50000 and luminance by 10000 before simplifying.
const (
	chromaticityDenominator = 50000
	luminanceDenominator    = 10000
)

// MasteringDisplay is the reference monitor record from a
// "Mastering display metadata" side data block: the three color primaries,
// the white point and the luminance range the master was graded with.
type MasteringDisplay struct {
	Red          Chromaticity
	Green        Chromaticity
	Blue         Chromaticity
	WhitePoint   Chromaticity
	MinLuminance Rational
	MaxLuminance Rational
}

// NewMasteringDisplay builds the record from a side data block. All ten
// source fields must be present and parse as "N/D" fractions; any absent or
// malformed field fails construction, there is no partial record.
func NewMasteringDisplay(sd SideData) (*MasteringDisplay, error) {
	red, err := newChromaticity("red", sd.Red_x, sd.Red_y)
	if err != nil {
		return nil, err
	}
	green, err := newChromaticity("green", sd.Green_x, sd.Green_y)
	if err != nil {
		return nil, err
	}
	blue, err := newChromaticity("blue", sd.Blue_x, sd.Blue_y)
	if err != nil {
		return nil, err
	}
	wp, err := newChromaticity("white_point", sd.White_point_x, sd.White_point_y)
	if err != nil {
		return nil, err
	}
	minl, err := ParseRational(sd.Min_luminance)
	if err != nil {
		return nil, fmt.Errorf("failed to eval min luminance: %w", err)
	}
	maxl, err := ParseRational(sd.Max_luminance)
	if err != nil {
		return nil, fmt.Errorf("failed to eval max luminance: %w", err)
	}
	return &MasteringDisplay{
		Red:          red,
		Green:        green,
		Blue:         blue,
		WhitePoint:   wp,
		MinLuminance: minl,
		MaxLuminance: maxl,
	}, nil
}

// X265Params renders the record in libx265's syntax with chromaticity
// expanded to /50000 and luminance to /10000. Field order is fixed: green,
// blue, red, white point, then luminance as (max,min).
func (md *MasteringDisplay) X265Params() string {
	return fmt.Sprintf("display=G%sB%sR%sWP%sL(%d,%d)",
		md.Green.X265(), md.Blue.X265(), md.Red.X265(), md.WhitePoint.X265(),
		md.MaxLuminance.ExpandToRatio(luminanceDenominator),
		md.MinLuminance.ExpandToRatio(luminanceDenominator))
}

// SvtAv1Params renders the same field order in SVT-AV1's syntax, which takes
// the plain ratios with four decimal places instead of expanded integers.
func (md *MasteringDisplay) SvtAv1Params() string {
	return fmt.Sprintf("mastering-display=G%sB%sR%sWP%sL(%.4f,%.4f)",
		md.Green.SvtAv1(), md.Blue.SvtAv1(), md.Red.SvtAv1(), md.WhitePoint.SvtAv1(),
		md.MaxLuminance.Float(), md.MinLuminance.Float())
}

func (md *MasteringDisplay) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s\nmin_luminance: %s\nmax_luminance: %s",
		md.Red, md.Green, md.Blue, md.WhitePoint, md.MinLuminance, md.MaxLuminance)
}
