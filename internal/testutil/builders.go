package testutil

import (
	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
	"github.com/eduportal/eduportal-mobile/internal/domain/model"
)

// ProfessorIdentity builds a plausible professor identity for tests.
func ProfessorIdentity(id string) domainauth.ProfessorIdentity {
	return domainauth.ProfessorIdentity{
		ID:          id,
		Name:        "Prof " + id,
		Email:       id + "@edu.example.com",
		BackendRole: "professor",
		Subjects:    []string{"math"},
	}
}

// AdminIdentity builds a professor identity with the admin backend role.
func AdminIdentity(id string) domainauth.ProfessorIdentity {
	p := ProfessorIdentity(id)
	p.BackendRole = "admin"
	return p
}

// StudentIdentity builds a plausible student identity for tests.
func StudentIdentity(id string) domainauth.StudentIdentity {
	return domainauth.StudentIdentity{
		ID:       id,
		Name:     "Aluno " + id,
		Email:    id + "@edu.example.com",
		Subjects: []string{"math"},
	}
}

// Post builds a plausible post for tests.
func Post(id string) model.Post {
	return model.Post{
		ID:      id,
		Title:   "Post " + id,
		Content: "conteudo",
		Subject: "math",
		Tags:    []string{"t1"},
		Author:  model.Author{ID: "p1", Name: "Prof p1"},
	}
}
