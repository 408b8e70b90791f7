package model

// RunePoolInterval is one bucket of RUNEPool membership.
type RunePoolInterval struct {
	Count     int64 `json:"count"`
	EndTime   int64 `json:"endTime"`
	StartTime int64 `json:"startTime"`
	Units     int64 `json:"units"`
}
