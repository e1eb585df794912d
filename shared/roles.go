package shared

// Single role vocabulary for the whole api. The historical frontend used
// manager/babysitter/parent while the backend knew admin/staff: staff accounts
// are migrated to the babysitter role.
const (
	ROLE_ADMIN      = "administrator"
	ROLE_MANAGER    = "manager"
	ROLE_BABYSITTER = "babysitter"
	ROLE_PARENT     = "parent"
)

var AllRoles = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_BABYSITTER, ROLE_PARENT}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
