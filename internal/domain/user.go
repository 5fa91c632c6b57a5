package domain

type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
