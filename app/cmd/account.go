package cmd

import (
	"context"
	"fmt"

	"github.com/Semior001/newsly/app/service"
)

// SignUp is a command to register a local account.
type SignUp struct {
	CommonOpts
	Username string `long:"username" short:"u" required:"true" description:"username"`
	Email    string `long:"email" required:"true" description:"email"`
	Password string `long:"password" short:"p" env:"NEWSLY_PASSWORD" required:"true" description:"password, at least 6 characters"`
}

// Execute runs the command.
func (s *SignUp) Execute(_ []string) error {
	return s.run(func(ctx context.Context, a *app) error {
		user, err := a.accounts.SignUp(ctx, service.SignUpRequest{
			Username: s.Username,
			Email:    s.Email,
			Password: s.Password,
		})
		if err != nil {
			return fmt.Errorf("sign up: %w", err)
		}

		_, err = fmt.Fprintf(s.out(), "signed up and logged in as %s\n", user.Username)
		return err
	})
}

// Login is a command to log in with a local account.
type Login struct {
	CommonOpts
	Username string `long:"username" short:"u" required:"true" description:"username"`
	Password string `long:"password" short:"p" env:"NEWSLY_PASSWORD" required:"true" description:"password"`
}

// Execute runs the command.
func (l *Login) Execute(_ []string) error {
	return l.run(func(ctx context.Context, a *app) error {
		user, err := a.accounts.Login(ctx, l.Username, l.Password)
		if err != nil {
			return fmt.Errorf("log in: %w", err)
		}

		_, err = fmt.Fprintf(l.out(), "logged in as %s\n", user.Username)
		return err
	})
}

// Logout is a command to end the session.
type Logout struct {
	CommonOpts
}

// Execute runs the command.
func (l *Logout) Execute(_ []string) error {
	return l.run(func(ctx context.Context, a *app) error {
		a.accounts.Logout(ctx)
		_, err := fmt.Fprintln(l.out(), "logged out")
		return err
	})
}

// WhoAmI is a command to print the logged in user.
type WhoAmI struct {
	CommonOpts
}

// Execute runs the command.
func (w *WhoAmI) Execute(_ []string) error {
	return w.run(func(_ context.Context, a *app) error {
		st := a.st.State()
		if !st.Auth.IsAuthenticated {
			return ErrNotLoggedIn
		}

		u := st.Auth.User
		_, err := fmt.Fprintf(w.out(), "username: %s\nemail: %s\npicture: %s\nsubscribed: %t\n",
			u.Username, u.Email, u.Picture, st.Subscription.Subscribed)
		return err
	})
}

// Profile is a command to update the profile of the logged in user.
type Profile struct {
	CommonOpts
	Email   string `long:"email" description:"new email"`
	Picture string `long:"picture" description:"new picture url"`
}

// Execute runs the command.
func (p *Profile) Execute(_ []string) error {
	return p.run(func(ctx context.Context, a *app) error {
		username, err := a.username()
		if err != nil {
			return err
		}

		if err = a.accounts.UpdateProfile(ctx, username, service.ProfileUpdate{
			Email:   p.Email,
			Picture: p.Picture,
		}); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		_, err = fmt.Fprintln(p.out(), "profile updated")
		return err
	})
}

// Subscribe is a command to subscribe to the newsletter, or to unsubscribe.
type Subscribe struct {
	CommonOpts
	Off bool `long:"off" description:"unsubscribe"`
}

// Execute runs the command.
func (s *Subscribe) Execute(_ []string) error {
	return s.run(func(ctx context.Context, a *app) error {
		a.svc.SetSubscribed(ctx, !s.Off)

		msg := "subscribed to the newsletter"
		if s.Off {
			msg = "unsubscribed from the newsletter"
		}

		_, err := fmt.Fprintln(s.out(), msg)
		return err
	})
}
