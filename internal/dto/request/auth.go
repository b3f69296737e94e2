package request

type SendVerificationCodeRequest struct {
	Email       string `json:"email" validate:"required,email"`
	TeacherName string `json:"teacher_name" validate:"required,min=1,max=100"`
}

type SignupRequest struct {
	Email            string `json:"email" validate:"required,email"`
	TeacherName      string `json:"teacher_name" validate:"required,min=1,max=100"`
	Password         string `json:"password" validate:"required"`
	VerificationCode string `json:"verification_code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}
