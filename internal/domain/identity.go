package domain

import "github.com/google/uuid"

// Identity is the already-authenticated caller. Token resolution happens
// outside this service; handlers only receive the claim.
type Identity struct {
	ID   uuid.UUID
	Role Role
}

func (i Identity) IsInstructor() bool { return i.Role == RoleInstructor }
func (i Identity) IsStudent() bool    { return i.Role == RoleStudent }
func (i Identity) IsDirector() bool   { return i.Role == RoleDirector }
