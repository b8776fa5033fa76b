package auth

// Package auth contains domain-level types for the client session.
// It is pure and free of transport/adapter concerns.

// Role represents the application role derived from the resolved identity.
// Keep string form for easy logging and display.
type Role string

const (
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
	RoleStudent   Role = "student"
	RoleNone      Role = "none"
)

// ProfessorIdentity is the identity resolved from the professor endpoints.
// BackendRole carries the backend's own role field ("professor" or "admin");
// the application Role is derived from it, never trusted from anywhere else.
type ProfessorIdentity struct {
	ID          string
	Name        string
	Email       string
	BackendRole string
	Subjects    []string
}

// IsAdmin reports whether the backend marked this professor as an admin.
func (p ProfessorIdentity) IsAdmin() bool { return p.BackendRole == "admin" }

// StudentIdentity is the identity resolved from the student endpoints.
type StudentIdentity struct {
	ID       string
	Name     string
	Email    string
	Subjects []string
}

// Session is the process-wide authentication state snapshot. At most one of
// Professor/Student is non-nil; Token == "" implies both are nil and Role is
// RoleNone. Values are copied out to subscribers, never shared mutably.
type Session struct {
	Token           string
	Professor       *ProfessorIdentity
	Student         *StudentIdentity
	Role            Role
	IsBootstrapping bool
}

// Empty returns the logged-out rest state.
func Empty() Session {
	return Session{Role: RoleNone}
}

// IsLogged reports whether a token is held.
func (s Session) IsLogged() bool { return s.Token != "" }

// IsStudent reports whether the session resolved to a student.
func (s Session) IsStudent() bool { return s.Role == RoleStudent }

// IsProfessor reports whether the session resolved to a professor, including admins.
func (s Session) IsProfessor() bool { return s.Role == RoleProfessor || s.Role == RoleAdmin }

// IsAdmin reports whether the session resolved to an admin professor.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// ForProfessor builds a session holding a professor identity. The role is
// admin when the backend role field says so, professor otherwise.
func ForProfessor(token string, p ProfessorIdentity) Session {
	role := RoleProfessor
	if p.IsAdmin() {
		role = RoleAdmin
	}
	return Session{Token: token, Professor: &p, Role: role}
}

// ForStudent builds a session holding a student identity.
func ForStudent(token string, st StudentIdentity) Session {
	return Session{Token: token, Student: &st, Role: RoleStudent}
}
