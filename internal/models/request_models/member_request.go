package request_models

type CreateMemberRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age" binding:"required,gt=0"`
	Gender     string `json:"gender" binding:"required"`
	JoinedDate string `json:"joined_date" binding:"required"` // YYYY-MM-DD
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// UpdateMemberRequest carries only the fields to change; nil fields are
// left untouched. Role is deliberately absent.
type UpdateMemberRequest struct {
	Username   *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Name       *string `json:"name"`
	Age        *int    `json:"age" binding:"omitempty,gt=0"`
	Gender     *string `json:"gender"`
	JoinedDate *string `json:"joined_date"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" binding:"omitempty,email"`
}
