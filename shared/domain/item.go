package domain

type Item struct {
	Id          ItemId     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	RequestId   *RequestId `json:"requestId"`
	OwnerId     UserId     `json:"-"`
}

type ItemCreationData struct {
	Name        string
	Description string
	Available   bool
	OwnerId     UserId
	RequestId   *RequestId
}

// nil fields are left unchanged
type ItemUpdateData struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemWithInfo is an item as shown to users browsing it: with its comments and,
// for the owner, the nearest bookings around now.
type ItemWithInfo struct {
	Item
	LastBooking *BookingShort `json:"lastBooking"`
	NextBooking *BookingShort `json:"nextBooking"`
	Comments    []Comment     `json:"comments"`
}
