package apiclient

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Tokens is the persisted session pair.
type Tokens struct {
	Access  string `json:"token"`
	Refresh string `json:"refreshToken"`
}

type TokenStore interface {
	Load() (Tokens, error)
	Save(Tokens) error
	Clear() error
}

type MemoryTokens struct {
	mu sync.Mutex
	t  Tokens
}

func (m *MemoryTokens) Load() (Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t, nil
}

func (m *MemoryTokens) Save(t Tokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = t
	return nil
}

func (m *MemoryTokens) Clear() error {
	return m.Save(Tokens{})
}

// FileTokens keeps the pair in a JSON file readable only by its owner.
type FileTokens struct {
	Path string
	mu   sync.Mutex
}

func NewFileTokens(path string) *FileTokens {
	return &FileTokens{Path: path}
}

func (f *FileTokens) Load() (Tokens, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var t Tokens
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, err
	}
	err = json.Unmarshal(b, &t)
	return t, err
}

func (f *FileTokens) Save(t Tokens) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}

func (f *FileTokens) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
