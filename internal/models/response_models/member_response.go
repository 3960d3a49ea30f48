package response_models

// MemberResponse never carries the password hash.
type MemberResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	JoinedDate string `json:"joined_date"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}
