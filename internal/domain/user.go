package domain

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is an account known to the identity collaborator. The core only reads
// users to count renters and to seed the bootstrap admin.
type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedOn    time.Time `json:"created_on"`
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
