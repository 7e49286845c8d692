package models

// Role is a job role offered in the practice UI.
type Role struct {
	Value string
	Label string
}

var roles = []Role{
	{Value: "software-developer", Label: "Software Developer"},
	{Value: "ai-ml", Label: "AI/ML Engineer"},
	{Value: "embedded-systems", Label: "Embedded Systems Engineer"},
}

// Roles returns the built-in role catalogue in display order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// RoleLabel resolves a role slug to its display label. Unknown values are returned unchanged.
func RoleLabel(value string) string {
	for _, role := range roles {
		if role.Value == value {
			return role.Label
		}
	}
	return value
}
