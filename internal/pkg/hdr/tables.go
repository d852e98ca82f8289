package hdr

// Per-encoder vocabularies for the matrix coefficient, color primaries and
// transfer characteristic tags. Each encoder spells these differently, so
// every target gets its own valid set or code table; lookups always check the
// valid set before falling back to the alias map.

// x265 --help, --colormatrix.
var x265ValidColorMatrix = map[string]bool{
	"gbr":               true,
	"bt709":             true,
	"unknown":           true,
	"reserved":          true,
	"fcc":               true,
	"bt470bg":           true,
	"smpte170m":         true,
	"smpte240m":         true,
	"ycgco":             true,
	"bt2020nc":          true,
	"bt2020c":           true,
	"smpte2085":         true,
	"chroma-derived-nc": true,
	"chroma-derived-c":  true,
	"ictcp":             true,
}

// ffprobe tags that x265 spells differently.
var x265ColorMatrixAlias = map[string]string{
	"bt2020_ncl": "bt2020nc",
	"bt2020_cl":  "bt2020c",
}

// x265ColorMatrix resolves an ffprobe color_space tag to x265's colormatrix
// vocabulary. It returns false when the tag has no x265 spelling, in which
// case the colormatrix field is omitted rather than guessed at.
func x265ColorMatrix(colorSpace string) (string, bool) {
	if x265ValidColorMatrix[colorSpace] {
		return colorSpace, true
	}
	if m, ok := x265ColorMatrixAlias[colorSpace]; ok {
		return m, true
	}
	return "", false
}

// aomenc --help, matrix-coefficients (CICP) of input content.
var libaomValidMatrixCoefficients = map[string]bool{
	"bt709":     true,
	"fcc73":     true,
	"bt470bg":   true,
	"bt601":     true,
	"smpte240":  true,
	"ycgco":     true,
	"bt2020ncl": true,
	"bt2020cl":  true,
	"smpte2085": true,
	"chromncl":  true,
	"chromcl":   true,
	"ictcp":     true,
}

var libaomMatrixCoefficientsAlias = map[string]string{
	"fcc":               "fcc73",
	"smpte240m":         "smpte240",
	"bt2020nc":          "bt2020ncl",
	"bt2020_ncl":        "bt2020ncl",
	"bt2020c":           "bt2020cl",
	"bt2020_cl":         "bt2020cl",
	"chroma-derived-nc": "chromncl",
	"chroma-derived-c":  "chromcl",
}

// libaomMatrixCoefficients resolves an ffprobe color_space tag to libaom's
// matrix-coefficients vocabulary; false means the sub-field is omitted.
func libaomMatrixCoefficients(colorSpace string) (string, bool) {
	if libaomValidMatrixCoefficients[colorSpace] {
		return colorSpace, true
	}
	if m, ok := libaomMatrixCoefficientsAlias[colorSpace]; ok {
		return m, true
	}
	return "", false
}

// SVT-AV1 takes numeric CICP codes; 2 means "unspecified" and is the default
// for any tag missing from the tables below.
// https://gitlab.com/AOMediaCodec/SVT-AV1/-/blob/master/Docs/Parameters.md
const cicpUnspecified = 2

var svtav1ColorPrimaries = map[string]int{
	"bt709":    1,
	"bt470m":   4,
	"bt470bg":  5,
	"bt601":    6,
	"smpte240": 7,
	"film":     8,
	"bt2020":   9,
	"xyz":      10,
	"smpte431": 11,
	"smpte432": 12,
	"ebu3213":  22,
}

var svtav1TransferCharacteristics = map[string]int{
	"bt709":         1,
	"bt470m":        4,
	"bt470bg":       5,
	"bt601":         6,
	"smpte240":      7,
	"linear":        8,
	"log100":        9,
	"log100-sqrt10": 10,
	"iec61966":      11,
	"bt1361":        12,
	"srgb":          13,
	"bt2020-10":     14,
	"bt2020-12":     15,
	"smpte2084":     16,
	"smpte428":      17,
	"hlg":           18,
}

func svtav1PrimariesCode(colorPrimaries string) int {
	if c, ok := svtav1ColorPrimaries[colorPrimaries]; ok {
		return c
	}
	return cicpUnspecified
}

func svtav1TransferCode(colorTransfer string) int {
	if c, ok := svtav1TransferCharacteristics[colorTransfer]; ok {
		return c
	}
	return cicpUnspecified
}
