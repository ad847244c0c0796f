package services

import (
	"fmt"
	"strconv"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/types"
)

func toString(v interface{}) string { return fmt.Sprint(v) }

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func u64(v uint64) *uint64 { return &v }

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func sampleEquipment(id uint64, teamID *uint64) *entities.Equipment {
	e := &entities.Equipment{
		ID:                id,
		Name:              "CNC Lathe",
		SerialNumber:      fmt.Sprintf("SN-%d", id),
		IsUsable:          true,
		MaintenanceTeamID: teamID,
		BaseEntity:        types.BaseEntity{CreatedAt: fixedNow, UpdatedAt: fixedNow},
	}
	if teamID != nil {
		e.Team = &entities.Team{ID: *teamID, Name: "Mechanics"}
	}
	return e
}
