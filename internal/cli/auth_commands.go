package cli

import (
	"errors"
	"fmt"

	"github.com/TWRT/taskdeck/internal/repository"
)

func (a *App) login(args []string) error {
	if err := wantArgs(args, 2, "login <email> <password>"); err != nil {
		return err
	}

	token, user, err := a.Auth.Login(args[0], args[1])
	if err != nil {
		return err
	}

	err = a.Sessions.Save(&repository.Session{
		Token:  token,
		UserID: user.Id,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Logged in as %s\n", user.Email)
	return nil
}

func (a *App) register(args []string) error {
	if err := wantArgs(args, 3, "register <name> <email> <password>"); err != nil {
		return err
	}

	token, user, err := a.Auth.Register(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	err = a.Sessions.Save(&repository.Session{
		Token:  token,
		UserID: user.Id,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Registered and logged in as %s\n", user.Email)
	return nil
}

func (a *App) logout() error {
	if err := a.Sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Logged out.")
	return nil
}

func (a *App) whoami() error {
	session, err := a.Sessions.Get()
	if errors.Is(err, repository.ErrNoSession) {
		fmt.Fprintln(a.Out, "Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s <%s>\n", session.Name, session.Email)
	return nil
}
