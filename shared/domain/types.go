package domain

type (
	UserId    = int64
	ItemId    = int64
	BookingId = int64
	RequestId = int64
	CommentId = int64

	Email = string
)
