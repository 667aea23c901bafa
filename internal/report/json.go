package report

import (
	"encoding/json"
	"io"
	"waypoint-tour-solver/internal/api/dto"
	"waypoint-tour-solver/internal/domain"
)

// BuildResponse maps a finished search onto the JSON report shape.
func BuildResponse(wps []domain.Waypoint, res *domain.SearchResult, rows []domain.RankedSolution) dto.ReportResponse {
	out := dto.ReportResponse{
		Waypoints:         make([]dto.WaypointResponse, 0, len(wps)),
		TotalPermutations: res.Total,
		Stats: dto.StatsResponse{
			Evaluated:          res.Stats.Evaluated,
			RejectedByPosition: res.Stats.RejectedByPosition,
			RejectedByDistance: res.Stats.RejectedByDistance,
			Survived:           res.Stats.Survived,
		},
		Paths: make([]dto.PathResponse, 0, len(rows)),
	}

	for i, wp := range wps {
		out.Waypoints = append(out.Waypoints, dto.WaypointResponse{
			Index: i,
			Label: wp.Label,
			Lat:   wp.Lat,
			Lon:   wp.Lon,
		})
	}

	for i, row := range rows {
		out.Paths = append(out.Paths, dto.PathResponse{
			Rank:     i + 1,
			Index:    row.Index,
			Stops:    row.Stops,
			Distance: row.Distance,
			Lat:      row.Solution.Lat,
			Lon:      row.Solution.Lon,
		})
	}
	if len(out.Paths) > 0 {
		out.Best = out.Paths[0]
	}

	return out
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
