package api

import (
	"time"

	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
)

type CreateBookingRequest struct {
	ItemId int64            `json:"itemId" validate:"required,gt=0"`
	Start  *domain.DateTime `json:"start" validate:"required"`
	End    *domain.DateTime `json:"end" validate:"required"`
}

// CheckPeriod applies the rules the gateway enforces on a new booking:
// the start may not be in the past and the end must be in the future.
func (r CreateBookingRequest) CheckPeriod(now time.Time) error {
	// wire timestamps carry whole seconds
	if r.Start.Before(now.Add(-time.Second)) {
		return errors.BadRequest("start must not be in the past")
	}
	if !r.End.After(now) {
		return errors.BadRequest("end must be in the future")
	}
	return nil
}
