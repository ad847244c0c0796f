package dto

import (
	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name                 string  `json:"name" validate:"required"`
	SerialNumber         string  `json:"serialNumber" validate:"required"`
	Category             *string `json:"category,omitempty"`
	Location             *string `json:"location,omitempty"`
	MaintenanceTeamID    *uint64 `json:"maintenanceTeamId,omitempty" validate:"omitempty,gt=0"`
	AssignedTechnicianID *uint64 `json:"assignedTechnicianId,omitempty" validate:"omitempty,gt=0"`
}

// UpdateEquipmentDTO: отсутствующее поле не меняется, явный null очищает.
// isUsable здесь нет намеренно, его меняет только списание по заявке.
type UpdateEquipmentDTO struct {
	Name                 *string     `json:"name" validate:"omitempty,min=1"`
	SerialNumber         *string     `json:"serialNumber" validate:"omitempty,min=1"`
	Category             null.String `json:"category"`
	Location             null.String `json:"location"`
	MaintenanceTeamID    null.Int    `json:"maintenanceTeamId" validate:"omitempty,gt=0"`
	AssignedTechnicianID null.Int    `json:"assignedTechnicianId" validate:"omitempty,gt=0"`
}

type EquipmentDTO struct {
	ID                   uint64   `json:"id"`
	Name                 string   `json:"name"`
	SerialNumber         string   `json:"serialNumber"`
	Category             *string  `json:"category"`
	Location             *string  `json:"location"`
	IsUsable             bool     `json:"isUsable"`
	MaintenanceTeamID    *uint64  `json:"maintenanceTeamId"`
	AssignedTechnicianID *uint64  `json:"assignedTechnicianId"`
	LastServiceDate      *string  `json:"lastServiceDate"`
	Team                 *TeamDTO `json:"team"`
	RequestCount         int64    `json:"requestCount"`
	CreatedAt            string   `json:"createdAt"`
	UpdatedAt            string   `json:"updatedAt"`
}

// ShortEquipmentDTO - вложенное оборудование в заявке.
type ShortEquipmentDTO struct {
	ID                uint64  `json:"id"`
	Name              string  `json:"name"`
	SerialNumber      string  `json:"serialNumber"`
	Category          *string `json:"category"`
	Location          *string `json:"location"`
	IsUsable          bool    `json:"isUsable"`
	MaintenanceTeamID *uint64 `json:"maintenanceTeamId"`
}

// EquipmentOptionDTO - элемент выпадающего списка в форме заявки.
type EquipmentOptionDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
}
