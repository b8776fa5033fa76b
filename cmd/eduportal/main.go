package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/eduportal/eduportal-mobile/config"
	"github.com/eduportal/eduportal-mobile/internal/bootstrap"
	"github.com/eduportal/eduportal-mobile/internal/service"
)

// app holds the wired client and the terminal I/O for the session.
type app struct {
	logger   *slog.Logger
	cfg      config.AppConfig
	sessions *service.SessionManager
	nav      *service.NavigationComposer
	posts    *service.PostService
	dir      *service.DirectoryService

	in  *bufio.Scanner
	out io.Writer
}

func main() {
	logger := bootstrap.InitLogger()

	noPersist := flag.Bool("no-persist", false, "do not persist the session token")
	flag.Parse()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if *noPersist {
		cfg.Auth.TokenStore = config.TokenStoreMemory
	}

	client, err := bootstrap.BuildAPIClient(cfg.API)
	if err != nil {
		logger.Error("build api client", "error", err)
		os.Exit(1)
	}

	sessions := bootstrap.BuildSessionManager(cfg, client, logger)
	nav := service.NewNavigationComposer(sessions)
	defer nav.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
		nav:      nav,
		posts:    service.NewPostService(client, sessions),
		dir:      service.NewDirectoryService(client, sessions),
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}

	a.printf("restoring session...\n")
	sessions.Bootstrap(ctx)

	if err := a.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}

// run is the navigation loop: show the reachable sections, read a choice,
// enter the matching screen. The surface is re-read every turn so a sign-in
// or sign-out reshapes the menu immediately.
func (a *app) run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		surface := a.nav.Current()
		if surface.Loading {
			// Mid-restore the surface carries neither login nor the
			// authenticated sections; the menu below is the neutral shell.
			a.printf("(still restoring session)\n")
		}

		a.printf("\nsections: %s  (or quit)\n", sectionList(surface))
		line, ok := a.readLine("> ")
		if !ok {
			return nil
		}

		choice := service.Section(strings.ToLower(strings.TrimSpace(line)))
		if choice == "quit" || choice == "q" {
			return nil
		}
		if choice == "" {
			continue
		}
		if !surface.Has(choice) {
			a.printf("unknown section %q\n", string(choice))
			continue
		}

		var err error
		switch choice {
		case service.SectionPosts:
			err = a.postsScreen(ctx)
		case service.SectionLogin:
			err = a.loginScreen(ctx)
		case service.SectionManage:
			err = a.manageScreen(ctx)
		case service.SectionAdmin:
			err = a.adminScreen(ctx)
		case service.SectionAccount:
			err = a.accountScreen(ctx)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			a.printf("error: %v\n", userMessage(err))
		}
	}
}

func sectionList(surface service.NavigationSurface) string {
	names := make([]string, 0, len(surface.Sections))
	for _, s := range surface.Sections {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine prompts and reads one line; ok is false on EOF.
func (a *app) readLine(prompt string) (string, bool) {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *app) prompt(label string) (string, bool) {
	return a.readLine(label + ": ")
}

// userMessage unwraps the friendly text of known error types.
func userMessage(err error) string {
	return err.Error()
}
