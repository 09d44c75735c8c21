package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	// ErrUserExists is returned when an account with the same username is registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when the username or password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const accountsKey = "users"

// Account is a locally registered reader with credentials.
type Account struct {
	User
	PasswordHash []byte `json:"password_hash"`
}

// Accounts keeps locally registered accounts as a single JSON list.
type Accounts struct {
	kv KV
}

// NewAccounts makes a new Accounts over the given KV.
func NewAccounts(kv KV) *Accounts {
	return &Accounts{kv: kv}
}

// Create registers a new account.
func (a *Accounts) Create(ctx context.Context, acc Account) error {
	list, err := a.list(ctx)
	if err != nil {
		return err
	}

	if lo.ContainsBy(list, func(item Account) bool { return item.Username == acc.Username }) {
		return ErrUserExists
	}

	return a.save(ctx, append(list, acc))
}

// Update replaces the stored account with the same username.
func (a *Accounts) Update(ctx context.Context, acc Account) error {
	list, err := a.list(ctx)
	if err != nil {
		return err
	}

	_, idx, ok := lo.FindIndexOf(list, func(item Account) bool { return item.Username == acc.Username })
	if !ok {
		return ErrNotFound
	}

	list[idx] = acc
	return a.save(ctx, list)
}

// Get returns the account by username.
func (a *Accounts) Get(ctx context.Context, username string) (Account, error) {
	list, err := a.list(ctx)
	if err != nil {
		return Account{}, err
	}

	acc, ok := lo.Find(list, func(item Account) bool { return item.Username == username })
	if !ok {
		return Account{}, ErrNotFound
	}

	return acc, nil
}

func (a *Accounts) list(ctx context.Context) ([]Account, error) {
	raw, err := a.kv.Get(ctx, accountsKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	var res []Account
	if err = json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, fmt.Errorf("unmarshal accounts: %w", err)
	}

	return res, nil
}

func (a *Accounts) save(ctx context.Context, list []Account) error {
	bts, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}

	if err = a.kv.Set(ctx, accountsKey, string(bts)); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	return nil
}
