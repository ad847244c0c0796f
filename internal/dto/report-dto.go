package dto

type HighRiskAssetDTO struct {
	EquipmentID   uint64 `json:"equipmentId"`
	Name          string `json:"name"`
	SerialNumber  string `json:"serialNumber"`
	IsUsable      bool   `json:"isUsable"`
	TotalRequests int64  `json:"totalRequests"`
	TotalDuration int64  `json:"totalDuration"`
}

type TeamPerformanceDTO struct {
	TeamID        uint64 `json:"teamId"`
	TeamName      string `json:"teamName"`
	RepairedCount int64  `json:"repairedCount"`
	TotalDowntime int64  `json:"totalDowntime"`
}
