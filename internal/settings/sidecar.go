package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Profile is the per-user settings sidecar written on profile update. It
// is a best-effort record; the session remains the source of truth after
// login.
type Profile struct {
	DisplayName    string `json:"displayName"`
	Email          string `json:"email"`
	ProfilePicPath string `json:"profilePicPath"`
}

// Dir is where sidecar files live; overridable for tests.
var Dir = "./data/settings"

func path(userID string) string {
	return filepath.Join(Dir, userID+".json")
}

// Write persists the sidecar for a user.
func Write(userID string, p Profile) error {
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path(userID), raw, 0o644)
}

// Read loads the sidecar, or a zero Profile if none was written yet.
func Read(userID string) (Profile, error) {
	raw, err := os.ReadFile(path(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, nil
		}
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
