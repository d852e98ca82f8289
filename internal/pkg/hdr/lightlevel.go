package hdr

import "fmt"

// ContentLightLevel is the record from a "Content light level metadata" side
// data block: peak and frame-average light levels in nits. Both values are
// already plain integers, no rescaling applies.
type ContentLightLevel struct {
	MaxContent int
	MaxAverage int
}

func NewContentLightLevel(sd SideData) *ContentLightLevel {
	return &ContentLightLevel{MaxContent: sd.Max_content, MaxAverage: sd.Max_average}
}

// X265Params renders the record for libx265, e.g. "max-cll=1000,239".
func (cll *ContentLightLevel) X265Params() string {
	return fmt.Sprintf("max-cll=%d,%d", cll.MaxContent, cll.MaxAverage)
}

// SvtAv1Params renders the record for SVT-AV1, e.g. "content-light=1000,239".
func (cll *ContentLightLevel) SvtAv1Params() string {
	return fmt.Sprintf("content-light=%d,%d", cll.MaxContent, cll.MaxAverage)
}

func (cll *ContentLightLevel) String() string {
	return fmt.Sprintf("max_content: %d, max_average: %d", cll.MaxContent, cll.MaxAverage)
}
