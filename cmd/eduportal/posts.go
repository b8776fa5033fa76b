package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/eduportal/eduportal-mobile/internal/domain/model"
)

// postsScreen lists posts and opens one on demand. Open to visitors.
func (a *app) postsScreen(ctx context.Context) error {
	posts, err := a.posts.List(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		a.printf("no posts yet\n")
		return nil
	}

	if err := a.printPostTable(posts); err != nil {
		return err
	}

	id, ok := a.prompt("post id to open (empty to go back)")
	if !ok || strings.TrimSpace(id) == "" {
		return nil
	}
	post, err := a.posts.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	a.printPost(post)
	return nil
}

func (a *app) printPostTable(posts []model.Post) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tAUTHOR")
	for _, p := range posts {
		author := p.Author.Name
		if author == "" {
			author = p.Author.ID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Subject, author)
	}
	return w.Flush()
}

func (a *app) printPost(p model.Post) {
	a.printf("\n%s\n", p.Title)
	if p.Subject != "" {
		a.printf("[%s]", p.Subject)
	}
	if len(p.Tags) > 0 {
		a.printf(" %s", strings.Join(p.Tags, ", "))
	}
	a.printf("\n\n%s\n", p.Content)
	if p.Author.Name != "" {
		a.printf("\n— %s\n", p.Author.Name)
	}
}
