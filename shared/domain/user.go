package domain

type User struct {
	Id    UserId `json:"id"`
	Name  string `json:"name"`
	Email Email  `json:"email"`
}

// to iterate thru layers: handler -> service -> storage
type UserCreationData struct {
	Name  string
	Email Email
}

// nil fields are left unchanged
type UserUpdateData struct {
	Name  *string
	Email *Email
}
