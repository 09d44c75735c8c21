package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Semior001/newsly/app/state"
	"github.com/Semior001/newsly/app/store"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// LocalToken is the session token of locally registered accounts.
const LocalToken = "local-token"

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// Accounts signs readers up and in. The session is echoed into
// the auth slice of the state, there is no remote authority.
type Accounts struct {
	log  *slog.Logger
	accs *store.Accounts
	st   Dispatcher
}

// NewAccounts makes a new Accounts service.
func NewAccounts(lg *slog.Logger, accs *store.Accounts, st Dispatcher) *Accounts {
	return &Accounts{log: lg, accs: accs, st: st}
}

// SignUpRequest defines parameters of a new account.
type SignUpRequest struct {
	Username string
	Email    string
	Password string
}

// SignUp registers a new account and logs it in.
func (a *Accounts) SignUp(ctx context.Context, req SignUpRequest) (store.User, error) {
	ctx = withRequestID(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateCredentials(req.Username, req.Password); err != nil {
		return store.User{}, err
	}

	if req.Email == "" {
		return store.User{}, fmt.Errorf("%w: email is required", ErrValidation)
	}

	if !emailRe.MatchString(req.Email) {
		return store.User{}, fmt.Errorf("%w: email is invalid", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return store.User{}, fmt.Errorf("hash password: %w", err)
	}

	acc := store.Account{
		User:         store.User{ID: uuid.New().String(), Username: req.Username, Email: req.Email},
		PasswordHash: hash,
	}

	if err = a.accs.Create(ctx, acc); err != nil {
		return store.User{}, fmt.Errorf("create account: %w", err)
	}

	a.log.InfoCtx(ctx, "account created", slog.String("username", acc.Username))
	a.st.Dispatch(ctx, state.LoginSucceeded{User: acc.User, Token: LocalToken})

	return acc.User, nil
}

// Login checks credentials and logs the account in.
func (a *Accounts) Login(ctx context.Context, username, password string) (store.User, error) {
	ctx = withRequestID(ctx)
	username = strings.TrimSpace(username)

	if err := validateCredentials(username, password); err != nil {
		return store.User{}, err
	}

	acc, err := a.accs.Get(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return store.User{}, store.ErrInvalidCredentials
	case err != nil:
		return store.User{}, fmt.Errorf("get account: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return store.User{}, store.ErrInvalidCredentials
	}

	a.log.InfoCtx(ctx, "logged in", slog.String("username", acc.Username))
	a.st.Dispatch(ctx, state.LoginSucceeded{User: acc.User, Token: LocalToken})

	return acc.User, nil
}

// Logout ends the session.
func (a *Accounts) Logout(ctx context.Context) {
	a.st.Dispatch(withRequestID(ctx), state.Logout{})
}

// ProfileUpdate defines fields of the profile to change, empty ones are kept.
type ProfileUpdate struct {
	Email   string
	Picture string
}

// UpdateProfile changes the profile of the logged in user and of its
// local account, if there is one.
func (a *Accounts) UpdateProfile(ctx context.Context, username string, upd ProfileUpdate) error {
	ctx = withRequestID(ctx)

	upd.Email = strings.TrimSpace(upd.Email)
	if upd.Email != "" && !emailRe.MatchString(upd.Email) {
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	}

	acc, err := a.accs.Get(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// nothing to update locally
	case err != nil:
		return fmt.Errorf("get account: %w", err)
	default:
		if upd.Email != "" {
			acc.Email = upd.Email
		}
		if upd.Picture != "" {
			acc.Picture = upd.Picture
		}
		if err = a.accs.Update(ctx, acc); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
	}

	a.st.Dispatch(ctx, state.ProfileUpdated{Email: upd.Email, Picture: upd.Picture})
	return nil
}

func validateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}

	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	return nil
}
