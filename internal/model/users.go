package model

type Role string

const (
	RoleOwner       Role = "OWNER"
	RoleAdmin       Role = "ADMIN"
	RoleDeliveryMan Role = "DELIVERY_MAN"
)

// User is the authenticated viewer identity returned by GET /users/me.
// The role is immutable for the lifetime of the session.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

type LoginDTO struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}
