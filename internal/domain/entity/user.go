package entity

// RoleNames constants. Role is an open string; these are the conventional values.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// User is the signed-in dashboard user kept in the persisted session.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
