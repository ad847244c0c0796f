package services

import (
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func teamToDTO(t *entities.Team) *dto.TeamDTO {
	if t == nil {
		return nil
	}
	return &dto.TeamDTO{ID: t.ID, Name: t.Name}
}

func userToDTO(u *entities.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	return &dto.UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func equipmentToDTO(e *entities.Equipment) *dto.EquipmentDTO {
	return &dto.EquipmentDTO{
		ID:                   e.ID,
		Name:                 e.Name,
		SerialNumber:         e.SerialNumber,
		Category:             e.Category,
		Location:             e.Location,
		IsUsable:             e.IsUsable,
		MaintenanceTeamID:    e.MaintenanceTeamID,
		AssignedTechnicianID: e.AssignedTechnicianID,
		LastServiceDate:      formatTimePtr(e.LastServiceDate),
		Team:                 teamToDTO(e.Team),
		RequestCount:         e.RequestCount,
		CreatedAt:            formatTime(e.CreatedAt),
		UpdatedAt:            formatTime(e.UpdatedAt),
	}
}

func shortEquipmentToDTO(e *entities.Equipment) *dto.ShortEquipmentDTO {
	if e == nil {
		return nil
	}
	return &dto.ShortEquipmentDTO{
		ID:                e.ID,
		Name:              e.Name,
		SerialNumber:      e.SerialNumber,
		Category:          e.Category,
		Location:          e.Location,
		IsUsable:          e.IsUsable,
		MaintenanceTeamID: e.MaintenanceTeamID,
	}
}

// requestToDTO: teamId берётся из оборудования заявки.
func requestToDTO(r *entities.Request) *dto.RequestDTO {
	out := &dto.RequestDTO{
		ID:            r.ID,
		Subject:       r.Subject,
		Type:          r.Type,
		Status:        r.Status,
		EquipmentID:   r.EquipmentID,
		CreatedBy:     r.CreatedBy,
		ScheduledDate: formatTimePtr(r.ScheduledDate),
		Duration:      r.Duration,
		CreatedAt:     formatTime(r.CreatedAt),
		Team:          teamToDTO(r.Team),
		Equipment:     shortEquipmentToDTO(r.Equipment),
		Creator:       userToDTO(r.Creator),
	}
	if r.Equipment != nil {
		out.TeamID = r.Equipment.MaintenanceTeamID
	}
	return out
}
