package request

type StudentRequest struct {
	Rollno      string `json:"rollno" validate:"required,min=1,max=50"`
	StudentName string `json:"student_name" validate:"required,min=1,max=100"`
	DOB         string `json:"dob" validate:"required,datetime=2006-01-02"`
	Grade       int    `json:"grade" validate:"required,min=1,max=12"`
}

type StudentUpdateRequest struct {
	StudentName *string `json:"student_name,omitempty" validate:"omitempty,min=1,max=100"`
	DOB         *string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Grade       *int    `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
}
