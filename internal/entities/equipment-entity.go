package entities

import (
	"time"

	"gearguard/pkg/types"
)

type Equipment struct {
	ID                   uint64     `json:"id" db:"id"`
	Name                 string     `json:"name" db:"name"`
	SerialNumber         string     `json:"serialNumber" db:"serial_number"`
	Category             *string    `json:"category" db:"category"`
	Location             *string    `json:"location" db:"location"`
	IsUsable             bool       `json:"isUsable" db:"is_usable"`
	MaintenanceTeamID    *uint64    `json:"maintenanceTeamId" db:"maintenance_team_id"`
	AssignedTechnicianID *uint64    `json:"assignedTechnicianId" db:"assigned_technician_id"`
	LastServiceDate      *time.Time `json:"lastServiceDate" db:"last_service_date"`

	types.BaseEntity

	// Связанные данные (не колонки в таблице)
	Team         *Team `db:"-"`
	RequestCount int64 `db:"-"`
}

// EquipmentFilter - разобранные параметры GET /equipment.
type EquipmentFilter struct {
	Search            string
	Category          string
	IsUsable          *bool
	MaintenanceTeamID *uint64
	Limit             uint64
	Offset            uint64
}
