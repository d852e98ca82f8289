package hdr

const (
	SideDataTypeMastering  = "Mastering display metadata"
	SideDataTypeLightLevel = "Content light level metadata"
)

// FrameData mirrors one entry of the "frames" array in ffprobe's JSON output
// restricted to the color entries this tool asks for.
type FrameData struct {
	Pix_fmt         string     `json:"pix_fmt"`
	Color_space     string     `json:"color_space"`
	Color_primaries string     `json:"color_primaries"`
	Color_transfer  string     `json:"color_transfer"`
	Side_data_list  []SideData `json:"side_data_list"`
}

// SideData is one tagged block of the frame's side data list. Mastering
// display blocks fill the "N/D" fraction fields; content light level blocks
// fill the two integer fields. ffprobe omits keys it has no data for, so an
// absent field decodes to its zero value.
type SideData struct {
	Side_data_type string `json:"side_data_type"`
	Red_x          string `json:"red_x"`
	Red_y          string `json:"red_y"`
	Green_x        string `json:"green_x"`
	Green_y        string `json:"green_y"`
	Blue_x         string `json:"blue_x"`
	Blue_y         string `json:"blue_y"`
	White_point_x  string `json:"white_point_x"`
	White_point_y  string `json:"white_point_y"`
	Min_luminance  string `json:"min_luminance"`
	Max_luminance  string `json:"max_luminance"`
	Max_content    int    `json:"max_content"`
	Max_average    int    `json:"max_average"`
}

// Vars used for tests
var (
	validMasteringSideData = SideData{
		Side_data_type: SideDataTypeMastering,
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
	}
	missingMasteringSideData = SideData{
		Side_data_type: SideDataTypeMastering,
		Red_x:          "17/25",
		Red_y:          "8/25",
		Green_x:        "53/200",
		White_point_x:  "3127/10000",
		White_point_y:  "329/1000",
	}
	nanMasteringSideData = SideData{
		Side_data_type: SideDataTypeMastering,
		Red_x:          "17/25",
		Red_y:          "8/25",
		Green_x:        "53/200",
		Green_y:        "69/100",
		Blue_x:         "a/20",
		Blue_y:         "3/50",
		White_point_x:  "3127/10000",
		White_point_y:  "329/1000",
		Min_luminance:  "1/10000",
		Max_luminance:  "a/1",
	}
	validLightSideData = SideData{
		Side_data_type: SideDataTypeLightLevel,
		Max_content:    1000,
		Max_average:    239,
	}
)
