package handler

type createLessonRequest struct {
	ClassroomID uint   `json:"classroom_id" validate:"required"`
	Title       string `json:"title"        validate:"required,min=2,max=150"`
	Summary     string `json:"summary"      validate:"max=1000"`
	Position    int    `json:"position"     validate:"min=0"`
}

type updateLessonRequest struct {
	Title    *string `json:"title,omitempty"    validate:"omitempty,min=2,max=150"`
	Summary  *string `json:"summary,omitempty"  validate:"omitempty,max=1000"`
	Position *int    `json:"position,omitempty" validate:"omitempty,min=0"`
}

type blockRequest struct {
	Kind     string `json:"kind"     validate:"required,oneof=text image video exercise"`
	Content  string `json:"content"  validate:"required"`
	Position int    `json:"position" validate:"min=0"`
}

type reorderBlocksRequest struct {
	BlockIDs []uint `json:"block_ids" validate:"required,min=1,dive,required"`
}
