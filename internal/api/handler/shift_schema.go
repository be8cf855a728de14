package handler

import (
	"time"

	"github.com/naratornb/leave-and-shift-project/internal/core/domain"
)

const dateLayout = "2006-01-02"

type createShiftRequest struct {
	Date          string `json:"date"           validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time"     validate:"required"`
	EndTime       string `json:"end_time"       validate:"required"`
	RequiredStaff int    `json:"required_staff" validate:"required,min=1"`
	Location      string `json:"location"       validate:"required"`
}

// updateShiftRequest uses pointers so an absent field is distinguishable
// from a present-but-zero one; zero values keep the stored field.
type updateShiftRequest struct {
	Date          *string `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	RequiredStaff *int    `json:"required_staff"`
	Location      *string `json:"location"`
}

// shiftResponse carries the stored fields plus the derived start/end
// instants computed from date + time-of-day.
type shiftResponse struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	RequiredStaff int       `json:"required_staff"`
	Location      string    `json:"location"`
	CreatedBy     string    `json:"created_by"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
}

func toShiftResponse(s *domain.Shift) shiftResponse {
	// The stored times were validated on the way in, so the derivations
	// cannot fail here; zero instants would only ever follow a corrupt record.
	startsAt, _ := s.StartInstant()
	endsAt, _ := s.EndInstant()

	return shiftResponse{
		ID:            s.ID,
		Date:          s.Date.Format(dateLayout),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		RequiredStaff: s.RequiredStaff,
		Location:      s.Location,
		CreatedBy:     s.CreatedBy,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
	}
}

func toShiftResponses(shifts []*domain.Shift) []shiftResponse {
	out := make([]shiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftResponse(s))
	}
	return out
}
