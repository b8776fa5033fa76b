package model

// Package model contains the content types served by the portal backend.

import (
	"encoding/json"
	"errors"
	"strings"
)

// Author is the post author reference. The backend either populates it as an
// embedded professor document or leaves a bare id string.
type Author struct {
	ID   string
	Name string
}

// UnmarshalJSON accepts both the populated object form and the bare id form.
func (a *Author) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		a.ID = id
		a.Name = ""
		return nil
	}
	var obj struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
		Name    string `json:"name"`
		Nome    string `json:"nome"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.ID = obj.MongoID
	if a.ID == "" {
		a.ID = obj.ID
	}
	a.Name = obj.Name
	if a.Name == "" {
		a.Name = obj.Nome
	}
	return nil
}

// Post is a published content item.
type Post struct {
	ID      string   `json:"_id"`
	Title   string   `json:"titulo"`
	Content string   `json:"conteudo"`
	Subject string   `json:"materia"`
	Tags    []string `json:"tags"`
	Author  Author   `json:"autor"`
}

// PostInput is the request payload for creating or updating a post.
// AuthorID must be the resolved professor id of the current session.
type PostInput struct {
	Title    string   `json:"titulo"`
	Content  string   `json:"conteudo"`
	Subject  string   `json:"materia"`
	Tags     []string `json:"tags"`
	AuthorID string   `json:"autor"`
}

// Validate checks local preconditions before any network call is made.
func (in PostInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("post title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return errors.New("post content is required")
	}
	if strings.TrimSpace(in.AuthorID) == "" {
		return ErrMissingAuthor
	}
	return nil
}

// ErrMissingAuthor signals that the current session has no resolved professor
// identity to attribute the post to. Callers surface it and abort before any
// request is sent.
var ErrMissingAuthor = errors.New("no resolved professor identity")
