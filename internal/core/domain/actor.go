package domain

// StaffRole is the fixed role a staff member holds across the deployment.
type StaffRole string

const (
	RoleAdmin        StaffRole = "admin"
	RoleInHouse      StaffRole = "in_house"
	RoleSupervisor   StaffRole = "supervisor"
	RoleCoordinator  StaffRole = "coordinator"
	RoleTalentEscort StaffRole = "talent_escort"
)

// IsValid reports whether the role is one of the known staff roles.
func (r StaffRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleInHouse, RoleSupervisor, RoleCoordinator, RoleTalentEscort:
		return true
	}
	return false
}

// Actor is the already-authenticated identity every core operation receives.
// It is resolved once by the auth middleware from the identity provider's token;
// services never reach into ambient session state.
type Actor struct {
	ID   string    `json:"id"`
	Role StaffRole `json:"role"`
}
