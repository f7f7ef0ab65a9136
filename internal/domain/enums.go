package domain

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "ASSIGNED"
	AssignmentStatusDelivered AssignmentStatus = "DELIVERED"
	AssignmentStatusEvaluated AssignmentStatus = "EVALUATED"
)

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusDelivered, AssignmentStatusEvaluated:
		return true
	default:
		return false
	}
}

type WorkKind string

const (
	WorkKindIndividual WorkKind = "INDIVIDUAL"
	WorkKindCollective WorkKind = "COLLECTIVE"
)

func (k WorkKind) IsValid() bool {
	return k == WorkKindIndividual || k == WorkKindCollective
}

type Role string

const (
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
	RoleDirector   Role = "DIRECTOR"
)

func ToRole(role string) (Role, bool) {
	switch Role(role) {
	case RoleInstructor, RoleStudent, RoleDirector:
		return Role(role), true
	default:
		return "", false
	}
}
