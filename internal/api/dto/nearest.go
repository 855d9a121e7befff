package dto

// Target latitude and longitude arrive as decimal strings, exactly as a
// form would supply them; the handler validates them as plain floats.
type NearestRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	K         int    `json:"k"`
}

type NearestMatchResponse struct {
	RouteResponse
	DistanceKm float64 `json:"distance_km"`
}

type NearestResponse struct {
	TargetLatitude  float64                `json:"target_latitude"`
	TargetLongitude float64                `json:"target_longitude"`
	K               int                    `json:"k"`
	Matches         []NearestMatchResponse `json:"matches"`
	DroppedRows     int                    `json:"dropped_rows"`
}
