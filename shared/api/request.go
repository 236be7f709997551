package api

// CreateItemRequestRequest is the body of POST /requests.
type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required,notblank"`
}
