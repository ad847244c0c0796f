package entities

import "time"

type Request struct {
	ID            uint64     `json:"id" db:"id"`
	Subject       string     `json:"subject" db:"subject"`
	Type          string     `json:"type" db:"type"`
	Status        string     `json:"status" db:"status"`
	EquipmentID   uint64     `json:"equipmentId" db:"equipment_id"`
	CreatedBy     *uint64    `json:"createdBy" db:"created_by"`
	ScheduledDate *time.Time `json:"scheduledDate" db:"scheduled_date"`
	Duration      *int       `json:"duration" db:"duration"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`

	// Связанные данные (не колонки в таблице)
	Equipment *Equipment `db:"-"`
	Creator   *User      `db:"-"`
	Team      *Team      `db:"-"`
}

// RequestFilter - фильтры ListRequests. Пустые поля не участвуют в запросе.
type RequestFilter struct {
	Status        string
	Type          string
	EquipmentID   *uint64
	CreatedBy     *uint64
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	Search        string
	Limit         uint64
	Offset        uint64
}
