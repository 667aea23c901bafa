package dto

type WaypointResponse struct {
	Index int     `json:"index"`
	Label int     `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type PathResponse struct {
	Rank     int     `json:"rank"`
	Index    int     `json:"index"`
	Stops    []int   `json:"stops"`
	Distance float64 `json:"distance"`
	Lat      string  `json:"lat"`
	Lon      string  `json:"lon"`
}

type StatsResponse struct {
	Evaluated          int `json:"evaluated"`
	RejectedByPosition int `json:"rejected_by_position"`
	RejectedByDistance int `json:"rejected_by_distance"`
	Survived           int `json:"survived"`
}

type ReportResponse struct {
	Waypoints         []WaypointResponse `json:"waypoints"`
	TotalPermutations int                `json:"total_permutations"`
	Stats             StatsResponse      `json:"stats"`
	Best              PathResponse       `json:"best"`
	Paths             []PathResponse     `json:"paths"`
}
