package request

import (
	"ride-together/internal/usecase/commands"
)

type CreateSlotRequest struct {
	Date       string `json:"date" binding:"required,ymd"`
	StartTime  string `json:"startTime" binding:"required,hhmm"`
	EndTime    string `json:"endTime" binding:"required,hhmm"`
	TrailType  string `json:"trailType" binding:"required,trailtype"`
	Visibility string `json:"visibility" binding:"omitempty,visibility"`
}

// ToInput leaves an omitted visibility empty so the slot falls back to friends only.
func (r *CreateSlotRequest) ToInput() commands.CreateSlotInput {
	return commands.CreateSlotInput{
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		TrailType:  r.TrailType,
		Visibility: r.Visibility,
	}
}
