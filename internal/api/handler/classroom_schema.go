package handler

type createClassroomRequest struct {
	Name       string `json:"name"        validate:"required,min=2,max=100"`
	GradeLevel int    `json:"grade_level" validate:"required,min=1,max=12"`
}

type updateClassroomRequest struct {
	Name       *string `json:"name,omitempty"        validate:"omitempty,min=2,max=100"`
	GradeLevel *int    `json:"grade_level,omitempty" validate:"omitempty,min=1,max=12"`
}

type joinClassroomRequest struct {
	JoinCode string `json:"join_code" validate:"required,len=8"`
}
