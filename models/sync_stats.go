package models

// SyncStats is the per-state count of queue items, queryable by the UI at any
// time.
type SyncStats struct {
	Pending  int `json:"pending"`
	InFlight int `json:"in_flight"`
	Done     int `json:"done"`
	Failed   int `json:"failed"`
}
