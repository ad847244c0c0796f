package entities

type HighRiskAsset struct {
	EquipmentID   uint64 `db:"id"`
	Name          string `db:"name"`
	SerialNumber  string `db:"serial_number"`
	IsUsable      bool   `db:"is_usable"`
	TotalRequests int64  `db:"total_requests"`
	TotalDuration int64  `db:"total_duration"`
}

type TeamPerformance struct {
	TeamID        uint64 `db:"id"`
	TeamName      string `db:"name"`
	RepairedCount int64  `db:"repaired_count"`
	TotalDowntime int64  `db:"total_downtime"`
}

type DashboardSummary struct {
	CriticalEquipment    int64
	OperationalEquipment int64
	TotalEquipment       int64
	PendingRequests      int64
	OverdueRequests      int64
}
