package domain

// ItemRequest is a user's public ask for an item nobody has listed yet.
type ItemRequest struct {
	Id          RequestId `json:"id"`
	Description string    `json:"description"`
	Created     DateTime  `json:"created"`
	RequesterId UserId    `json:"-"`
}

type ItemRequestCreationData struct {
	Description string
	RequesterId UserId
	Created     DateTime
}

// ItemRequestWithItems carries the items other users listed in answer to the request.
type ItemRequestWithItems struct {
	ItemRequest
	Items []Item `json:"items"`
}
