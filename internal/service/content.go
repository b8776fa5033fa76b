package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/eduportal/eduportal-mobile/internal/domain/model"
	"github.com/eduportal/eduportal-mobile/internal/ports"
)

// ErrNotAllowed is returned when the current session's role does not reach
// the requested operation. The client gates locally so a non-admin never
// issues an admin call.
var ErrNotAllowed = errors.New("current session is not allowed to do this")

// PostService wraps the posts slice of the backend with the local
// precondition checks the manage screens need.
type PostService struct {
	api      ports.ContentAPI
	sessions *SessionManager
}

// NewPostService constructs a PostService.
func NewPostService(api ports.ContentAPI, sessions *SessionManager) *PostService {
	return &PostService{api: api, sessions: sessions}
}

// PostDraft is the screen-level form for creating or editing a post. The
// author is never part of the form; it is attributed from the session.
type PostDraft struct {
	Title   string
	Content string
	Subject string
	Tags    []string
}

// List fetches every post; open to visitors.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.api.ListPosts(ctx)
}

// Get fetches one post; open to visitors.
func (s *PostService) Get(ctx context.Context, id string) (model.Post, error) {
	return s.api.GetPost(ctx, id)
}

// Create publishes a draft attributed to the session's professor identity.
// Without a resolved professor id it fails locally, before any network call.
func (s *PostService) Create(ctx context.Context, draft PostDraft) (model.Post, error) {
	in, err := s.attributed(draft)
	if err != nil {
		return model.Post{}, err
	}
	return s.api.CreatePost(ctx, in)
}

// Update replaces an existing post, re-attributed to the current professor.
func (s *PostService) Update(ctx context.Context, id string, draft PostDraft) (model.Post, error) {
	in, err := s.attributed(draft)
	if err != nil {
		return model.Post{}, err
	}
	return s.api.UpdatePost(ctx, id, in)
}

// Delete removes a post; requires a professor or admin session.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if !s.sessions.Snapshot().IsProfessor() {
		return ErrNotAllowed
	}
	return s.api.DeletePost(ctx, id)
}

func (s *PostService) attributed(draft PostDraft) (model.PostInput, error) {
	snap := s.sessions.Snapshot()
	if snap.Professor == nil || snap.Professor.ID == "" {
		return model.PostInput{}, model.ErrMissingAuthor
	}
	in := model.PostInput{
		Title:    draft.Title,
		Content:  draft.Content,
		Subject:  draft.Subject,
		Tags:     draft.Tags,
		AuthorID: snap.Professor.ID,
	}
	if err := in.Validate(); err != nil {
		return model.PostInput{}, err
	}
	return in, nil
}

// DirectoryService wraps the admin-only account management endpoints.
type DirectoryService struct {
	api      ports.DirectoryAPI
	sessions *SessionManager
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(api ports.DirectoryAPI, sessions *SessionManager) *DirectoryService {
	return &DirectoryService{api: api, sessions: sessions}
}

func (s *DirectoryService) requireAdmin() error {
	if !s.sessions.Snapshot().IsAdmin() {
		return ErrNotAllowed
	}
	return nil
}

// ListProfessors lists professor accounts.
func (s *DirectoryService) ListProfessors(ctx context.Context) ([]model.Professor, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.api.ListProfessors(ctx)
}

// CreateProfessor registers a professor account.
func (s *DirectoryService) CreateProfessor(ctx context.Context, in model.ProfessorInput) (model.Professor, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Professor{}, err
	}
	if err := in.Validate(true); err != nil {
		return model.Professor{}, err
	}
	return s.api.CreateProfessor(ctx, in)
}

// UpdateProfessor updates a professor account.
func (s *DirectoryService) UpdateProfessor(ctx context.Context, id string, in model.ProfessorInput) (model.Professor, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Professor{}, err
	}
	if err := in.Validate(false); err != nil {
		return model.Professor{}, err
	}
	return s.api.UpdateProfessor(ctx, id, in)
}

// DeleteProfessor removes a professor account.
func (s *DirectoryService) DeleteProfessor(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return s.api.DeleteProfessor(ctx, id)
}

// ListStudents lists student accounts.
func (s *DirectoryService) ListStudents(ctx context.Context) ([]model.Student, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.api.ListStudents(ctx)
}

// CreateStudent registers a student account.
func (s *DirectoryService) CreateStudent(ctx context.Context, in model.StudentInput) (model.Student, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Student{}, err
	}
	if err := in.Validate(true); err != nil {
		return model.Student{}, err
	}
	return s.api.CreateStudent(ctx, in)
}

// UpdateStudent updates a student account.
func (s *DirectoryService) UpdateStudent(ctx context.Context, id string, in model.StudentInput) (model.Student, error) {
	if err := s.requireAdmin(); err != nil {
		return model.Student{}, err
	}
	if err := in.Validate(false); err != nil {
		return model.Student{}, err
	}
	return s.api.UpdateStudent(ctx, id, in)
}

// DeleteStudent removes a student account.
func (s *DirectoryService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	return s.api.DeleteStudent(ctx, id)
}

// DirectorySummary is the admin home overview.
type DirectorySummary struct {
	Professors []model.Professor
	Students   []model.Student
}

// Summary fans out the professor and student list calls concurrently and
// returns the first error from either.
func (s *DirectoryService) Summary(ctx context.Context) (DirectorySummary, error) {
	if err := s.requireAdmin(); err != nil {
		return DirectorySummary{}, err
	}

	var summary DirectorySummary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		professors, err := s.api.ListProfessors(gctx)
		if err != nil {
			return fmt.Errorf("list professors: %w", err)
		}
		summary.Professors = professors
		return nil
	})
	g.Go(func() error {
		students, err := s.api.ListStudents(gctx)
		if err != nil {
			return fmt.Errorf("list alunos: %w", err)
		}
		summary.Students = students
		return nil
	})
	if err := g.Wait(); err != nil {
		return DirectorySummary{}, err
	}
	return summary, nil
}
