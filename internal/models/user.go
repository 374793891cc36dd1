package models

const RoleAdmin = "admin"

type User struct {
	ID           FlexID `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
