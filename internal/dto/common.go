package dto

// ErrorResponse is the uniform error body returned by all handlers.
type ErrorResponse struct {
	Detail string `json:"detail" example:"resource not found"`
}

// ListParams carries pagination query parameters.
type ListParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}
