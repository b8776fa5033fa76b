package main

import (
	"context"
	"strings"

	"github.com/eduportal/eduportal-mobile/internal/service"
)

// manageScreen is the professor dashboard: create, edit and delete posts.
func (a *app) manageScreen(ctx context.Context) error {
	action, ok := a.prompt("manage action (list/new/edit/delete/back)")
	if !ok {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "list":
		posts, err := a.posts.List(ctx)
		if err != nil {
			return err
		}
		return a.printPostTable(posts)

	case "new":
		draft, ok := a.readDraft(service.PostDraft{})
		if !ok {
			return nil
		}
		post, err := a.posts.Create(ctx, draft)
		if err != nil {
			return err
		}
		a.printf("created post %s\n", post.ID)
		return nil

	case "edit":
		id, ok := a.prompt("post id")
		if !ok || strings.TrimSpace(id) == "" {
			return nil
		}
		existing, err := a.posts.Get(ctx, strings.TrimSpace(id))
		if err != nil {
			return err
		}
		draft, ok := a.readDraft(service.PostDraft{
			Title:   existing.Title,
			Content: existing.Content,
			Subject: existing.Subject,
			Tags:    existing.Tags,
		})
		if !ok {
			return nil
		}
		if _, err := a.posts.Update(ctx, existing.ID, draft); err != nil {
			return err
		}
		a.printf("updated post %s\n", existing.ID)
		return nil

	case "delete":
		id, ok := a.prompt("post id")
		if !ok || strings.TrimSpace(id) == "" {
			return nil
		}
		if err := a.posts.Delete(ctx, strings.TrimSpace(id)); err != nil {
			return err
		}
		a.printf("deleted post %s\n", strings.TrimSpace(id))
		return nil
	}
	return nil
}

// readDraft prompts for the post form fields, keeping existing values when
// the answer is empty.
func (a *app) readDraft(current service.PostDraft) (service.PostDraft, bool) {
	title, ok := a.prompt("title [" + current.Title + "]")
	if !ok {
		return current, false
	}
	if strings.TrimSpace(title) != "" {
		current.Title = strings.TrimSpace(title)
	}

	content, ok := a.prompt("content")
	if !ok {
		return current, false
	}
	if strings.TrimSpace(content) != "" {
		current.Content = content
	}

	subject, ok := a.prompt("subject [" + current.Subject + "]")
	if !ok {
		return current, false
	}
	if strings.TrimSpace(subject) != "" {
		current.Subject = strings.TrimSpace(subject)
	}

	tags, ok := a.prompt("tags (comma separated)")
	if !ok {
		return current, false
	}
	if strings.TrimSpace(tags) != "" {
		current.Tags = splitTags(tags)
	}

	return current, true
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
