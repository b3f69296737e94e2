package request

type ActivityRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Type  string `json:"type" validate:"required,oneof=worksheet quiz assignment"`
}

type ActivityUpdateRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Type  *string `json:"type,omitempty" validate:"omitempty,oneof=worksheet quiz assignment"`
}
