package hdr

import "fmt"

// Chromaticity is one CIE coordinate pair from a mastering display block,
// named after the axis it came from (red, green, blue or white_point).
type Chromaticity struct {
	Axis string
	X    Rational
	Y    Rational
}

func newChromaticity(axis, rawX, rawY string) (Chromaticity, error) {
	x, err := ParseRational(rawX)
	if err != nil {
		return Chromaticity{}, fmt.Errorf("failed to eval %s x: %w", axis, err)
	}
	y, err := ParseRational(rawY)
	if err != nil {
		return Chromaticity{}, fmt.Errorf("failed to eval %s y: %w", axis, err)
	}
	return Chromaticity{Axis: axis, X: x, Y: y}, nil
}

// X265 renders the pair expanded to the /50000 ratio libx265 expects,
// e.g. "(34000,16000)".
func (c Chromaticity) X265() string {
	return fmt.Sprintf("(%d,%d)", c.X.ExpandToRatio(chromaticityDenominator), c.Y.ExpandToRatio(chromaticityDenominator))
}

// SvtAv1 renders the pair as plain ratios with four decimal places,
// e.g. "(0.6800,0.3200)".
func (c Chromaticity) SvtAv1() string {
	return fmt.Sprintf("(%.4f,%.4f)", c.X.Float(), c.Y.Float())
}

func (c Chromaticity) String() string {
	return fmt.Sprintf("%s_x: %s\n%s_y: %s", c.Axis, c.X, c.Axis, c.Y)
}
