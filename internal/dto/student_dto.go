package dto

// StudentCreateRequest carries every field required to register a student.
// Age is a pointer so that a missing value and an explicit zero are both
// reported as violations rather than silently treated the same.
type StudentCreateRequest struct {
	DNI           string  `json:"dni" binding:"required,len=8"`
	Name          string  `json:"name" binding:"required,min=3"`
	Email         string  `json:"email" binding:"required,email"`
	Age           *int    `json:"age" binding:"required,gt=0,lt=100"`
	Gender        string  `json:"gender" binding:"required"`
	Classroom     string  `json:"classroom" binding:"required"`
	Address       *string `json:"address"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	PhotoURL      *string `json:"photo_url"`
}

// StudentUpdateRequest is a partial update: only fields present in the
// request body are written, omitted fields keep their stored value.
type StudentUpdateRequest struct {
	DNI           *string `json:"dni" binding:"omitempty,len=8"`
	Name          *string `json:"name" binding:"omitempty,min=3"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Age           *int    `json:"age" binding:"omitempty,gt=0,lt=100"`
	Gender        *string `json:"gender"`
	Classroom     *string `json:"classroom"`
	Address       *string `json:"address"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	PhotoURL      *string `json:"photo_url"`
}

type StudentResponse struct {
	ID            string  `json:"id"`
	DNI           string  `json:"dni"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Classroom     string  `json:"classroom"`
	Address       *string `json:"address,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty"`
}
