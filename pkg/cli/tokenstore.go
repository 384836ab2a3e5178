package cli

import (
	"github.com/asilingas/fambudg/pkg/session"
)

// ProfileTokenStore persists the session token under the token key of a
// named profile in ~/.fambudg/config.yaml. Concurrent writers are
// last-write-wins; the config file is not locked.
type ProfileTokenStore struct {
	profile string
}

// NewProfileTokenStore creates a token store bound to the given profile
// name.
func NewProfileTokenStore(profile string) *ProfileTokenStore {
	if profile == "" {
		profile = "default"
	}
	return &ProfileTokenStore{profile: profile}
}

// Load returns the stored token; a missing config file or profile reads
// as an empty token.
func (s *ProfileTokenStore) Load() (string, error) {
	cfg, err := LoadUserConfig()
	if err != nil {
		return "", nil
	}
	return cfg.Profiles[s.profile].Token, nil
}

// Save writes the token into the profile, creating the config as needed.
func (s *ProfileTokenStore) Save(token string) error {
	cfg := loadOrEmptyConfig()
	p := cfg.Profiles[s.profile]
	p.Token = token
	cfg.Profiles[s.profile] = p
	return SaveUserConfig(cfg)
}

// Clear removes the token from the profile.
func (s *ProfileTokenStore) Clear() error {
	cfg := loadOrEmptyConfig()
	p := cfg.Profiles[s.profile]
	p.Token = ""
	cfg.Profiles[s.profile] = p
	return SaveUserConfig(cfg)
}

var _ session.TokenStore = (*ProfileTokenStore)(nil)
