package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/eduportal/eduportal-mobile/internal/domain/model"
)

// adminScreen manages professor and student accounts. Only reachable for
// admin sessions; the services gate again underneath.
func (a *app) adminScreen(ctx context.Context) error {
	action, ok := a.prompt("admin action (summary/professores/alunos/back)")
	if !ok {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "summary":
		summary, err := a.dir.Summary(ctx)
		if err != nil {
			return err
		}
		a.printf("professores: %d, alunos: %d\n", len(summary.Professors), len(summary.Students))
		return nil

	case "professores":
		return a.professorsScreen(ctx)

	case "alunos":
		return a.studentsScreen(ctx)
	}
	return nil
}

func (a *app) professorsScreen(ctx context.Context) error {
	action, ok := a.prompt("professores action (list/add/delete/back)")
	if !ok {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "list":
		professors, err := a.dir.ListProfessors(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSUBJECTS")
		for _, p := range professors {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Email, p.Role, strings.Join(p.Subjects, ", "))
		}
		return w.Flush()

	case "add":
		in, ok := a.readAccountInput(true)
		if !ok {
			return nil
		}
		created, err := a.dir.CreateProfessor(ctx, model.ProfessorInput{
			Name:     in.name,
			Email:    in.email,
			Password: in.password,
			Subjects: in.subjects,
		})
		if err != nil {
			return err
		}
		a.printf("created professor %s\n", created.ID)
		return nil

	case "delete":
		id, ok := a.prompt("professor id")
		if !ok || strings.TrimSpace(id) == "" {
			return nil
		}
		if err := a.dir.DeleteProfessor(ctx, strings.TrimSpace(id)); err != nil {
			return err
		}
		a.printf("deleted professor %s\n", strings.TrimSpace(id))
		return nil
	}
	return nil
}

func (a *app) studentsScreen(ctx context.Context) error {
	action, ok := a.prompt("alunos action (list/add/delete/back)")
	if !ok {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(action)) {
	case "list":
		students, err := a.dir.ListStudents(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSUBJECTS")
		for _, s := range students {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, strings.Join(s.Subjects, ", "))
		}
		return w.Flush()

	case "add":
		in, ok := a.readAccountInput(true)
		if !ok {
			return nil
		}
		created, err := a.dir.CreateStudent(ctx, model.StudentInput{
			Name:     in.name,
			Email:    in.email,
			Password: in.password,
			Subjects: in.subjects,
		})
		if err != nil {
			return err
		}
		a.printf("created aluno %s\n", created.ID)
		return nil

	case "delete":
		id, ok := a.prompt("aluno id")
		if !ok || strings.TrimSpace(id) == "" {
			return nil
		}
		if err := a.dir.DeleteStudent(ctx, strings.TrimSpace(id)); err != nil {
			return err
		}
		a.printf("deleted aluno %s\n", strings.TrimSpace(id))
		return nil
	}
	return nil
}

type accountInput struct {
	name     string
	email    string
	password string
	subjects []string
}

func (a *app) readAccountInput(withPassword bool) (accountInput, bool) {
	var in accountInput
	var ok bool

	if in.name, ok = a.prompt("name"); !ok {
		return in, false
	}
	if in.email, ok = a.prompt("email"); !ok {
		return in, false
	}
	if withPassword {
		if in.password, ok = a.prompt("password"); !ok {
			return in, false
		}
	}
	subjects, ok := a.prompt("subjects (comma separated)")
	if !ok {
		return in, false
	}
	in.subjects = splitTags(subjects)
	in.name = strings.TrimSpace(in.name)
	in.email = strings.TrimSpace(in.email)
	return in, true
}
