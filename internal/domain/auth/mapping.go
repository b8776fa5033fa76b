package auth

// Validated mapping from backend payloads to identity types. The backend
// serves identities either wrapped ({"professor": {...}}, {"aluno": {...}})
// or bare; both shapes are accepted explicitly and anything else is rejected
// as a MalformedResponseError.

import "encoding/json"

type professorWire struct {
	MongoID  string   `json:"_id"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Subjects []string `json:"disciplinas"`
}

type studentWire struct {
	MongoID  string   `json:"_id"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Subjects []string `json:"disciplinas"`
}

func (w professorWire) identity() ProfessorIdentity {
	return ProfessorIdentity{
		ID:          firstNonEmpty(w.MongoID, w.ID),
		Name:        w.Name,
		Email:       w.Email,
		BackendRole: w.Role,
		Subjects:    w.Subjects,
	}
}

func (w studentWire) identity() StudentIdentity {
	return StudentIdentity{
		ID:       firstNonEmpty(w.MongoID, w.ID),
		Name:     w.Name,
		Email:    w.Email,
		Subjects: w.Subjects,
	}
}

// DecodeProfessor maps a professor identity payload, wrapped or bare.
func DecodeProfessor(endpoint string, data []byte) (ProfessorIdentity, error) {
	var wrapped struct {
		Professor *professorWire `json:"professor"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Professor != nil {
		return validateProfessor(endpoint, *wrapped.Professor)
	}

	var bare professorWire
	if err := json.Unmarshal(data, &bare); err != nil {
		return ProfessorIdentity{}, &MalformedResponseError{Endpoint: endpoint, Reason: "not a JSON object"}
	}
	return validateProfessor(endpoint, bare)
}

// DecodeStudent maps a student identity payload, wrapped or bare.
func DecodeStudent(endpoint string, data []byte) (StudentIdentity, error) {
	var wrapped struct {
		Student *studentWire `json:"aluno"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Student != nil {
		return validateStudent(endpoint, *wrapped.Student)
	}

	var bare studentWire
	if err := json.Unmarshal(data, &bare); err != nil {
		return StudentIdentity{}, &MalformedResponseError{Endpoint: endpoint, Reason: "not a JSON object"}
	}
	return validateStudent(endpoint, bare)
}

// LoginResult is the decoded shape of a login response. Identity fields are
// nil when the backend did not embed the identity alongside the token; the
// caller then resolves it with a follow-up probe.
type LoginResult struct {
	Token     string
	Professor *ProfessorIdentity
	Student   *StudentIdentity
}

// DecodeProfessorLogin maps a professor login response ({token, professor?}).
func DecodeProfessorLogin(endpoint string, data []byte) (LoginResult, error) {
	var wire struct {
		Token     string         `json:"token"`
		Professor *professorWire `json:"professor"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return LoginResult{}, &MalformedResponseError{Endpoint: endpoint, Reason: "not a JSON object"}
	}
	if wire.Token == "" {
		return LoginResult{}, &MalformedResponseError{Endpoint: endpoint, Reason: "missing token"}
	}
	res := LoginResult{Token: wire.Token}
	if wire.Professor != nil {
		p, err := validateProfessor(endpoint, *wire.Professor)
		if err != nil {
			return LoginResult{}, err
		}
		res.Professor = &p
	}
	return res, nil
}

// DecodeStudentLogin maps a student login response ({token, aluno?}).
func DecodeStudentLogin(endpoint string, data []byte) (LoginResult, error) {
	var wire struct {
		Token   string       `json:"token"`
		Student *studentWire `json:"aluno"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return LoginResult{}, &MalformedResponseError{Endpoint: endpoint, Reason: "not a JSON object"}
	}
	if wire.Token == "" {
		return LoginResult{}, &MalformedResponseError{Endpoint: endpoint, Reason: "missing token"}
	}
	res := LoginResult{Token: wire.Token}
	if wire.Student != nil {
		st, err := validateStudent(endpoint, *wire.Student)
		if err != nil {
			return LoginResult{}, err
		}
		res.Student = &st
	}
	return res, nil
}

func validateProfessor(endpoint string, w professorWire) (ProfessorIdentity, error) {
	p := w.identity()
	if p.ID == "" {
		return ProfessorIdentity{}, &MalformedResponseError{Endpoint: endpoint, Reason: "professor identity without id"}
	}
	return p, nil
}

func validateStudent(endpoint string, w studentWire) (StudentIdentity, error) {
	st := w.identity()
	if st.ID == "" {
		return StudentIdentity{}, &MalformedResponseError{Endpoint: endpoint, Reason: "aluno identity without id"}
	}
	return st, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
