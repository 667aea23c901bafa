package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDDM(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "origin latitude", in: "N 43° 03.673", want: 43.061217},
		{name: "origin longitude", in: "W 108° 27.504", want: 108.458400},
		{name: "leading zero degrees", in: "W 073° 40.676", want: 73 + 40.676/60},
		{name: "zero minutes", in: "N 42° 00.000", want: 42},
		{name: "extra spaces", in: "  N   42°   30.000 ", want: 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDDM(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestParseDDM_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "missing degree symbol", in: "N 43 03.673"},
		{name: "non-numeric minutes", in: "N 43° 0x.673"},
		{name: "non-numeric degrees", in: "N 4a° 03.673"},
		{name: "minutes at 60", in: "N 43° 60.000"},
		{name: "negative minutes", in: "N 43° -1.000"},
		{name: "unknown hemisphere", in: "Q 43° 03.673"},
		{name: "too many tokens", in: "N 43° 03.673 extra"},
		{name: "joined tokens", in: "N 43°03.673"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDDM(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedCoordinate)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.in, perr.Input)
		})
	}
}

func TestParseDDM_KeepsCause(t *testing.T) {
	_, err := ParseDDM("N 43° abc")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Error(t, perr.Err)
	assert.Contains(t, err.Error(), "invalid minutes")
}

func TestParseWaypoints(t *testing.T) {
	rows := []RawWaypoint{
		{Label: 0, Lat: "N 43° 03.673", Lon: "W 108° 27.504"},
		{Label: 4, Lat: "N 43° 03.105", Lon: "W 108° 28.308"},
	}

	wps, err := ParseWaypoints(rows)
	require.NoError(t, err)
	require.Len(t, wps, 2)

	assert.Equal(t, 0, wps[0].Label)
	assert.InDelta(t, 43.061217, wps[0].Lat, 1e-6)
	assert.InDelta(t, -108.458400, wps[0].Lon, 1e-6)

	assert.Equal(t, 4, wps[1].Label)
	assert.InDelta(t, 43.051750, wps[1].Lat, 1e-6)
	assert.InDelta(t, -108.471800, wps[1].Lon, 1e-6)
}

func TestParseWaypoints_ReportsRow(t *testing.T) {
	rows := []RawWaypoint{
		{Label: 0, Lat: "N 43° 03.673", Lon: "W 108° 27.504"},
		{Label: 1, Lat: "N 43° 03.105", Lon: "W 108 28.308"},
	}

	_, err := ParseWaypoints(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 longitude")
	assert.True(t, errors.Is(err, ErrMalformedCoordinate))
}

func TestParseWaypoints_OutOfRange(t *testing.T) {
	rows := []RawWaypoint{{Label: 0, Lat: "N 95° 00.000", Lon: "W 108° 27.504"}}

	_, err := ParseWaypoints(rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCoordinate)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestParseWaypoints_Hemisphere(t *testing.T) {
	tests := []struct {
		name    string
		row     RawWaypoint
		wantErr string
	}{
		{"southern latitude", RawWaypoint{Lat: "S 33° 52.000", Lon: "W 151° 12.000"}, "row 0 latitude"},
		{"eastern longitude", RawWaypoint{Lat: "N 33° 52.000", Lon: "E 151° 12.000"}, "row 0 longitude"},
		{"longitude letter on latitude", RawWaypoint{Lat: "W 33° 52.000", Lon: "W 151° 12.000"}, "row 0 latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wps, err := ParseWaypoints([]RawWaypoint{tt.row})
			require.Error(t, err)
			assert.Nil(t, wps)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "not supported")

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.ErrorIs(t, err, ErrMalformedCoordinate)
		})
	}
}

func TestPoints(t *testing.T) {
	wps := []Waypoint{
		{Label: 1, Coordinates: Coordinates{Lat: 1, Lon: 2}},
		{Label: 2, Coordinates: Coordinates{Lat: 3, Lon: 4}},
	}

	assert.Equal(t, []Coordinates{{Lat: 1, Lon: 2}, {Lat: 3, Lon: 4}}, Points(wps))
}
