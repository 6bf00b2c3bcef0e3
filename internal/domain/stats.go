package domain

import "time"

// StatsSnapshot is the best-effort runtime statistics dump written on
// shutdown. Counters are advisory, not authoritative.
type StatsSnapshot struct {
	StartTime   time.Time `json:"start_time"`
	TotalUsers  int64     `json:"total_users"`
	TotalOrders int64     `json:"total_orders"`
	Errors      int64     `json:"errors"`
	UptimeHours float64   `json:"uptime_hours"`
}
