package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

const recentFile = "recent.json"

// maxRecent caps the recent-files list.
const maxRecent = 10

func recentPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "sudotui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, recentFile), nil
}

// SaveRecent persists the recent puzzle file list, most recent first.
func SaveRecent(names []string) error {
	path, err := recentPath()
	if err != nil {
		return err
	}
	if len(names) > maxRecent {
		names = names[:maxRecent]
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadRecent returns the recent puzzle file list. A missing file is
// not an error, it just means no history yet.
func LoadRecent() ([]string, error) {
	path, err := recentPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Touch moves name to the front of the list, deduplicating.
func Touch(names []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return names
	}
	out := make([]string, 0, len(names)+1)
	out = append(out, name)
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	return out
}
