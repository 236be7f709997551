package domain

import (
	"fmt"
	"strings"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState is a listing filter, evaluated against the current time.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var bookingStates = []BookingState{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}

// ParseBookingState accepts state names case-insensitively; empty means ALL.
func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return StateAll, nil
	}
	for _, state := range bookingStates {
		if strings.EqualFold(s, string(state)) {
			return state, nil
		}
	}
	return "", fmt.Errorf("Unknown state: %s", s)
}

type Booking struct {
	Id     BookingId     `json:"id"`
	Start  DateTime      `json:"start"`
	End    DateTime      `json:"end"`
	Status BookingStatus `json:"status"`
	Item   Item          `json:"item"`
	Booker User          `json:"booker"`
}

type BookingCreationData struct {
	ItemId   ItemId
	BookerId UserId
	Start    DateTime
	End      DateTime
}

// BookingShort is how bookings are shown inside an item.
type BookingShort struct {
	Id       BookingId `json:"id"`
	BookerId UserId    `json:"bookerId"`
}
