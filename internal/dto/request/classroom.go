package request

type ClassroomRequest struct {
	ClassroomName string `json:"classroom_name" validate:"required,min=1,max=100"`
}
