// Package session persists draft form fields (name, description, query,
// filters) between agent restarts, the way a browser session store would.
// It is a plain key-value side-store, decoupled from the application store.
package session

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Draft field keys.
const (
	DraftName        = "name"
	DraftDescription = "description"
	DraftQuery       = "query"
	DraftFilters     = "filters"
)

// Drafts is the contract the lifecycle handlers use: read a field, write a
// field, or wipe everything after a successful create/update.
type Drafts interface {
	Get(key string) string
	Set(key, value string) error
	Clear() error
}

// DraftStore is a file-backed Drafts implementation. Values are stored one
// per line in KEY=VALUE form; values containing whitespace or '#' are quoted
// with internal quotes and backslashes escaped.
type DraftStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// OpenDraftStore loads the draft file at path, creating an empty store when
// the file does not exist yet. An empty path keeps the store memory-only.
func OpenDraftStore(path string) (*DraftStore, error) {
	s := &DraftStore{path: path, values: make(map[string]string)}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read draft file %s: %w", path, err)
	}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		s.values[key] = unquote(value)
	}
	return s, nil
}

// Get returns the stored value for key, or the empty string.
func (s *DraftStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores the value for key and persists the whole store.
func (s *DraftStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.saveLocked()
}

// Clear wipes every draft field and removes the backing file.
func (s *DraftStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove draft file %s: %w", s.path, err)
	}
	return nil
}

// saveLocked writes the values in deterministic order to ease diffing.
// Callers must hold the mutex.
func (s *DraftStore) saveLocked() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create draft directory: %w", err)
	}

	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, quote(s.values[k]))
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write draft file %s: %w", s.path, err)
	}
	return nil
}

func quote(v string) string {
	if !strings.ContainsAny(v, " \t\n\r#") {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}

func unquote(v string) string {
	if len(v) < 2 || !strings.HasPrefix(v, `"`) || !strings.HasSuffix(v, `"`) {
		return v
	}
	v = v[1 : len(v)-1]
	v = strings.ReplaceAll(v, `\"`, `"`)
	v = strings.ReplaceAll(v, `\\`, `\`)
	return v
}
