package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the admin account named by the environment on
// first start, or grants the admin role if the user already exists.
// No-op when email or password is empty.
func EnsureAdmin(ctx context.Context, repo *Repo, username, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}
	if username == "" {
		username = "admin"
	}

	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("ensure admin lookup: %w", err)
	}

	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("ensure admin hash: %w", err)
		}

		u := User{
			ID:           uuid.NewString(),
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
		}
		if err := repo.CreateUser(ctx, u); err != nil {
			return err
		}
		existing = &u
	}

	return repo.GrantRole(ctx, existing.ID, RoleAdmin)
}
