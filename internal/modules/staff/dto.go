package staff

type CreateStaffRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
