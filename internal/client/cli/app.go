// Package cli implements the interactive terminal client for the notes
// backend: a small REPL for registering, logging in, and working with notes.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/forgeapi/notes/internal/client/api"
	"github.com/forgeapi/notes/internal/client/config"
	"github.com/forgeapi/notes/internal/common"
)

type App struct {
	config *config.Config
	api    *api.Client
	token  string
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerBaseURL),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "anonymous"
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, name, password); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			printlnFn("User name already taken")
			return err
		}
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Registered. You can log in now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, name, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Invalid credentials")
			return err
		}
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.token = token
	printlnFn("Logged in. Note: the token expires after a short while, log in again when it does.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	// Tokens are stateless; forgetting the local copy is all a logout can do.
	a.token = ""
	printlnFn("Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {
	notes, err := a.api.ListNotes(ctx)
	if err != nil {
		printlnFn("Listing notes failed:", err.Error())
		return err
	}
	if len(notes) == 0 {
		printlnFn("No notes yet")
		return nil
	}
	for _, n := range notes {
		printlnFn(fmt.Sprintf("%s  %s", n.ID, n.Text))
	}
	return nil
}

func (a *App) AddNote(ctx context.Context) error {
	text, err := GetSimpleText(a.reader, "Enter note text", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.api.CreateNote(ctx, text)
	if err != nil {
		printlnFn("Creating note failed:", err.Error())
		return err
	}
	printlnFn("Created note", note.ID)
	return nil
}

func (a *App) UpdateNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Enter new text", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.api.UpdateNote(ctx, a.token, id, text)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Token rejected, log in again")
			return err
		}
		printlnFn("Updating note failed:", err.Error())
		return err
	}
	printlnFn("Updated note", note.ID)
	return nil
}

func (a *App) DeleteNote(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteNote(ctx, a.token, id); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Token rejected, log in again")
			return err
		}
		printlnFn("Deleting note failed:", err.Error())
		return err
	}
	printlnFn("Deleted note", id)
	return nil
}
