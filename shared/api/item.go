package api

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestId   *int64 `json:"requestId,omitempty" validate:"omitnil,gt=0"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Description *string `json:"description,omitempty" validate:"omitnil,notblank"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank"`
}
