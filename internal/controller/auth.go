package controller

import (
	"context"

	"go.uber.org/zap"

	"strive/internal/models"
)

// Login authenticates against the account collection. On success the account
// becomes the session's authenticated account and the session moves to the
// profile picker, or straight to profile creation when the account has no
// profiles yet. On failure the session is unchanged.
func (c *Controller) Login(email, password string) error {
	if !ValidateEmail(email) {
		return ErrInvalidEmail
	}

	for i := range c.accounts {
		if c.accounts[i].Email == email && c.accounts[i].Password == password {
			c.currentAccount = c.accounts[i].ID
			if len(c.accounts[i].Profiles) > 0 {
				c.state = models.StateProfiles
			} else {
				c.state = models.StateCreateProfile
			}
			c.logger.Info("Account logged in", zap.String("account_id", c.accounts[i].ID))
			return nil
		}
	}

	return ErrWrongCredentials
}

// Signup creates a new account with an empty profile collection and signs it
// in. Email must be valid and unused, password at least 6 characters.
func (c *Controller) Signup(ctx context.Context, email, password, name string) error {
	if !ValidateEmail(email) {
		return ErrInvalidEmail
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	for i := range c.accounts {
		if c.accounts[i].Email == email {
			return ErrEmailTaken
		}
	}

	account := models.Account{
		ID:       c.newID(),
		Email:    email,
		Password: password,
		Name:     name,
		Profiles: []models.Profile{},
	}

	c.accounts = append(c.accounts, account)
	c.persist(ctx)

	c.currentAccount = account.ID
	c.state = models.StateCreateProfile
	c.logger.Info("Account created", zap.String("account_id", account.ID))
	return nil
}
