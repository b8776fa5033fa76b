package ports

import (
	"context"

	"github.com/eduportal/eduportal-mobile/internal/domain/model"
)

// ContentAPI is the posts slice of the portal backend.
type ContentAPI interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPost(ctx context.Context, id string) (model.Post, error)
	CreatePost(ctx context.Context, in model.PostInput) (model.Post, error)
	UpdatePost(ctx context.Context, id string, in model.PostInput) (model.Post, error)
	DeletePost(ctx context.Context, id string) error
}

// DirectoryAPI is the account-management slice of the portal backend.
// All of it is admin-gated server side; the client gates it as well so a
// non-admin never issues the calls.
type DirectoryAPI interface {
	ListProfessors(ctx context.Context) ([]model.Professor, error)
	CreateProfessor(ctx context.Context, in model.ProfessorInput) (model.Professor, error)
	UpdateProfessor(ctx context.Context, id string, in model.ProfessorInput) (model.Professor, error)
	DeleteProfessor(ctx context.Context, id string) error

	ListStudents(ctx context.Context) ([]model.Student, error)
	CreateStudent(ctx context.Context, in model.StudentInput) (model.Student, error)
	UpdateStudent(ctx context.Context, id string, in model.StudentInput) (model.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}
