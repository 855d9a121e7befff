package dto

type RouteResponse struct {
	RouteID     int     `json:"route_id"`
	Geo         string  `json:"geo"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Name        string  `json:"name"`
	Salesperson string  `json:"salesperson"`
	Supervisor  string  `json:"supervisor"`
	Status      string  `json:"status"`
	VisitDays   string  `json:"visit_days"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

type GeoErrorResponse struct {
	Geo    string `json:"geo"`
	Reason string `json:"reason"`
}

type ListGeoErrorsResponse struct {
	Count  int                `json:"count"`
	Errors []GeoErrorResponse `json:"errors"`
}
