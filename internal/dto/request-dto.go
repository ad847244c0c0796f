package dto

type CreateRequestDTO struct {
	EquipmentID   uint64  `json:"equipmentId" validate:"required,gt=0"`
	Subject       string  `json:"subject" validate:"required"`
	Type          string  `json:"type,omitempty" validate:"omitempty,request_type"`
	ScheduledDate *string `json:"scheduledDate,omitempty"`
	CreatedBy     *uint64 `json:"createdBy,omitempty" validate:"omitempty,gt=0"`
}

type UpdateRequestStatusDTO struct {
	Status      string  `json:"status" validate:"required,request_status"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,gte=0"`
	EquipmentID *uint64 `json:"equipmentId,omitempty" validate:"omitempty,gt=0"`
}

// RequestFilterDTO - query-параметры списка заявок.
type RequestFilterDTO struct {
	Status        string `query:"status" validate:"omitempty,request_status"`
	Type          string `query:"type" validate:"omitempty,request_type"`
	EquipmentID   uint64 `query:"equipmentId"`
	CreatedBy     uint64 `query:"createdBy"`
	ScheduledFrom string `query:"scheduledFrom"`
	ScheduledTo   string `query:"scheduledTo"`
	Search        string `query:"search"`
	Limit         uint64 `query:"limit"`
	Offset        uint64 `query:"offset"`
}

type RequestDTO struct {
	ID            uint64             `json:"id"`
	Subject       string             `json:"subject"`
	Type          string             `json:"type"`
	Status        string             `json:"status"`
	EquipmentID   uint64             `json:"equipmentId"`
	CreatedBy     *uint64            `json:"createdBy"`
	ScheduledDate *string            `json:"scheduledDate"`
	Duration      *int               `json:"duration"`
	CreatedAt     string             `json:"createdAt"`
	TeamID        *uint64            `json:"teamId"`
	Team          *TeamDTO           `json:"team,omitempty"`
	Equipment     *ShortEquipmentDTO `json:"equipment,omitempty"`
	Creator       *UserDTO           `json:"creator,omitempty"`
}
