package google

import (
	"encoding/json"
	"fmt"
	"os"
)

// Credential is the persisted OAuth user credential in Google's
// "authorized_user" JSON shape.
type Credential struct {
	Type         string `json:"type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`
}

// Store reads and writes the credential file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored credential, or ok=false if the file is
// missing or unreadable. Absence is not an error: callers treat it as
// the trigger for interactive authorization.
func (s *Store) Load() (*Credential, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, false
	}
	if cred.RefreshToken == "" {
		return nil, false
	}

	return &cred, true
}

// Save persists the credential with owner-only permissions.
func (s *Store) Save(cred *Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	return nil
}
