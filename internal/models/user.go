package models

// actor roles carried inside auth token claims
const (
	RoleStudent    = "STUDENT"
	RoleRestaurant = "RESTAURANT"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// TokenPayload is payload of verified auth token.
// Identity is issued by the external auth service, this core only consumes it.
type TokenPayload struct {
	UserID uint64
	Role   string
}

// Student is student entity, owned by the external onboarding flow
type Student struct {
	ID           uint64
	UniversityID uint64
	IsVerified   bool
}
