package dto

type DashboardSummaryDTO struct {
	CriticalEquipment    int64 `json:"criticalEquipment"`
	OperationalEquipment int64 `json:"operationalEquipment"`
	TotalEquipment       int64 `json:"totalEquipment"`
	PendingRequests      int64 `json:"pendingRequests"`
	OverdueRequests      int64 `json:"overdueRequests"`
}
