package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eduportal/eduportal-mobile/internal/domain/model"
	"github.com/eduportal/eduportal-mobile/internal/ports"
)

// Compile-time conformance to the content ports.
var (
	_ ports.ContentAPI   = (*Client)(nil)
	_ ports.DirectoryAPI = (*Client)(nil)
)

const (
	pathPosts      = "/api/posts"
	pathProfessors = "/api/professores"
	pathStudents   = "/api/alunos"
)

// ListPosts fetches every published post.
func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.getJSON(ctx, pathPosts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches one post by id.
func (c *Client) GetPost(ctx context.Context, id string) (model.Post, error) {
	var post model.Post
	if err := c.getJSON(ctx, itemPath(pathPosts, id), &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// CreatePost publishes a new post.
func (c *Client) CreatePost(ctx context.Context, in model.PostInput) (model.Post, error) {
	var post model.Post
	if err := c.sendJSON(ctx, http.MethodPost, pathPosts, in, &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// UpdatePost replaces an existing post.
func (c *Client) UpdatePost(ctx context.Context, id string, in model.PostInput) (model.Post, error) {
	var post model.Post
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(pathPosts, id), in, &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(pathPosts, id), nil)
	return err
}

// ListProfessors fetches the professor directory.
func (c *Client) ListProfessors(ctx context.Context) ([]model.Professor, error) {
	var professors []model.Professor
	if err := c.getJSON(ctx, pathProfessors, &professors); err != nil {
		return nil, err
	}
	return professors, nil
}

// CreateProfessor registers a professor account.
func (c *Client) CreateProfessor(ctx context.Context, in model.ProfessorInput) (model.Professor, error) {
	var professor model.Professor
	if err := c.sendJSON(ctx, http.MethodPost, pathProfessors, in, &professor); err != nil {
		return model.Professor{}, err
	}
	return professor, nil
}

// UpdateProfessor updates a professor account.
func (c *Client) UpdateProfessor(ctx context.Context, id string, in model.ProfessorInput) (model.Professor, error) {
	var professor model.Professor
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(pathProfessors, id), in, &professor); err != nil {
		return model.Professor{}, err
	}
	return professor, nil
}

// DeleteProfessor removes a professor account.
func (c *Client) DeleteProfessor(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(pathProfessors, id), nil)
	return err
}

// ListStudents fetches the student directory.
func (c *Client) ListStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := c.getJSON(ctx, pathStudents, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// CreateStudent registers a student account.
func (c *Client) CreateStudent(ctx context.Context, in model.StudentInput) (model.Student, error) {
	var student model.Student
	if err := c.sendJSON(ctx, http.MethodPost, pathStudents, in, &student); err != nil {
		return model.Student{}, err
	}
	return student, nil
}

// UpdateStudent updates a student account.
func (c *Client) UpdateStudent(ctx context.Context, id string, in model.StudentInput) (model.Student, error) {
	var student model.Student
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(pathStudents, id), in, &student); err != nil {
		return model.Student{}, err
	}
	return student, nil
}

// DeleteStudent removes a student account.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, itemPath(pathStudents, id), nil)
	return err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	data, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if len(data) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
