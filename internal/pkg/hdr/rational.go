package hdr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MalformedRationalError reports a side data field that could not be read as
// an "N/D" integer fraction.
type MalformedRationalError struct {
	Raw string
}

func (e *MalformedRationalError) Error() string {
	return fmt.Sprintf("invalid rational fraction: %q", e.Raw)
}

// Rational is an exact fraction parsed from ffprobe's "N/D" form. The raw
// string is kept for display and the float quotient is computed once at
// construction; values are never mutated after ParseRational returns.
type Rational struct {
	Num int
	Den int
	raw string
	fv  float64
}

// ParseRational splits an "N/D" fraction string into its numerator and
// denominator. It returns a MalformedRationalError if the string does not
// split into exactly two integer parts or the denominator is zero.
func ParseRational(raw string) (Rational, error) {
	splits := strings.Split(raw, "/")
	if len(splits) != 2 {
		return Rational{}, &MalformedRationalError{Raw: raw}
	}
	n, err := strconv.Atoi(splits[0])
	if err != nil {
		return Rational{}, &MalformedRationalError{Raw: raw}
	}
	d, err := strconv.Atoi(splits[1])
	if err != nil || d == 0 {
		return Rational{}, &MalformedRationalError{Raw: raw}
	}
	return Rational{Num: n, Den: d, raw: raw, fv: float64(n) / float64(d)}, nil
}

// String returns the original "N/D" form unchanged.
func (r Rational) String() string {
	return r.raw
}

// Float returns the quotient computed at construction time.
func (r Rational) Float() float64 {
	return r.fv
}

// ExpandToRatio rescales the fraction back out to the denominator an encoder
// expects. ffprobe reports chromaticity and luminance fractions already
// simplified, so a value like 17/25 must be expanded to 34000/50000 before
// libx265 will accept it; the result is round(Num * denominator / Den).
func (r Rational) ExpandToRatio(denominator int) int {
	return int(math.Round(float64(r.Num) * float64(denominator) / float64(r.Den)))
}
