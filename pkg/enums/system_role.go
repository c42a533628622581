package enums

// SystemRole mirrors the system_role postgres enum.
type SystemRole string

const (
	SystemRoleAdmin SystemRole = "admin"
)

func (r SystemRole) String() string { return string(r) }
