package request

type SubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,min=1,max=100"`
}
