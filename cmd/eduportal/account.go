package main

import (
	"context"
	"strings"

	domainauth "github.com/eduportal/eduportal-mobile/internal/domain/auth"
)

// loginScreen signs in as professor or aluno. Only reachable when the
// navigation surface offers the login section.
func (a *app) loginScreen(ctx context.Context) error {
	kind, ok := a.prompt("login as (professor/aluno)")
	if !ok {
		return nil
	}
	email, ok := a.prompt("email")
	if !ok {
		return nil
	}
	password, ok := a.prompt("password")
	if !ok {
		return nil
	}

	var err error
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "professor":
		err = a.sessions.SignInProfessor(ctx, strings.TrimSpace(email), password)
	case "aluno", "student":
		err = a.sessions.SignInAluno(ctx, strings.TrimSpace(email), password)
	default:
		a.printf("unknown account type %q\n", kind)
		return nil
	}
	if err != nil {
		return err
	}

	a.printf("signed in as %s\n", describeSession(a.sessions.Snapshot()))
	return nil
}

// accountScreen shows the resolved identity and offers sign-out and refresh.
func (a *app) accountScreen(ctx context.Context) error {
	snap := a.sessions.Snapshot()
	a.printf("%s\n", describeSession(snap))

	if !snap.IsLogged() {
		return nil
	}

	action, ok := a.prompt("account action (logout/refresh/back)")
	if !ok {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "logout":
		if err := a.sessions.SignOut(ctx); err != nil {
			return err
		}
		a.printf("signed out\n")
	case "refresh":
		a.sessions.Refresh(ctx)
		a.printf("%s\n", describeSession(a.sessions.Snapshot()))
	}
	return nil
}

func describeSession(snap domainauth.Session) string {
	switch {
	case snap.Professor != nil:
		subjects := strings.Join(snap.Professor.Subjects, ", ")
		if subjects == "" {
			subjects = "none"
		}
		return "professor " + snap.Professor.Name + " <" + snap.Professor.Email + "> role=" +
			string(snap.Role) + " subjects: " + subjects
	case snap.Student != nil:
		subjects := strings.Join(snap.Student.Subjects, ", ")
		if subjects == "" {
			subjects = "none"
		}
		return "aluno " + snap.Student.Name + " <" + snap.Student.Email + "> subjects: " + subjects
	default:
		return "not signed in"
	}
}
