package controller

import (
	"context"

	"go.uber.org/zap"

	"strive/internal/models"
)

// SelectProfile makes the given profile the session's active profile and
// moves to the main app screen
func (c *Controller) SelectProfile(profile models.Profile) {
	p := profile
	c.activeProfile = &p
	c.state = models.StateApp
}

// CreateProfile adds a named profile to the authenticated account. The name
// must be non-empty after trimming and unique within the account's profiles.
// The avatar initial is derived from the name once, at creation.
func (c *Controller) CreateProfile(ctx context.Context, name, photo string) (models.Profile, error) {
	i := c.accountIndex(c.currentAccount)
	if i < 0 {
		return models.Profile{}, ErrNoAccount
	}

	name = trimmed(name)
	if name == "" {
		return models.Profile{}, ErrEmptyProfileName
	}
	for _, p := range c.accounts[i].Profiles {
		if p.Name == name {
			return models.Profile{}, ErrDuplicateProfile
		}
	}

	profile := models.Profile{
		ID:        c.newID(),
		Name:      name,
		Avatar:    avatarInitial(name),
		AccountID: c.accounts[i].ID,
		Photo:     photo,
	}

	c.accounts[i].Profiles = append(c.accounts[i].Profiles, profile)
	c.persist(ctx)

	c.state = models.StateProfiles
	c.logger.Info("Profile created",
		zap.String("account_id", c.accounts[i].ID),
		zap.String("profile_id", profile.ID),
	)
	return profile, nil
}

// DeleteProfile removes the profile with the given name from the
// authenticated account. Deleting a name that does not exist is a no-op.
// When the deleted profile was the active one, the active selection is
// cleared and the session falls back to profile creation; otherwise the
// screen is unchanged.
func (c *Controller) DeleteProfile(ctx context.Context, name string) {
	i := c.accountIndex(c.currentAccount)
	if i < 0 {
		return
	}

	kept := c.accounts[i].Profiles[:0]
	for _, p := range c.accounts[i].Profiles {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	c.accounts[i].Profiles = kept
	c.persist(ctx)

	if c.activeProfile != nil && c.activeProfile.Name == name {
		c.activeProfile = nil
		c.state = models.StateCreateProfile
	}
}
