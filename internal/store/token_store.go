package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"swiftdrop/internal/domain"
)

const prefsFilename = "prefs.enc"

// Well-known keys inside the prefs blob. These mirror the backend session
// contract: the same names are used across all three apps.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserData     = "user_data"
	keyUserType     = "user_type"
	keyCart         = "cart"
)

// FileStore is the sealed file-backed key-value store for one app
// namespace.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// SaveTokens persists the access and refresh tokens.
func (s *FileStore) SaveTokens(t domain.AuthTokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putAll(map[string]any{
		keyAccessToken:  t.Access,
		keyRefreshToken: t.Refresh,
	})
}

// Token returns the stored access token, if a non-empty one is present.
func (s *FileStore) Token() (string, bool) {
	return s.getString(keyAccessToken)
}

// RefreshToken returns the stored refresh token, if present. No client
// code path spends it; it is kept because the backend issues it.
func (s *FileStore) RefreshToken() (string, bool) {
	return s.getString(keyRefreshToken)
}

// SaveUser caches the identity returned at login.
func (s *FileStore) SaveUser(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putAll(map[string]any{keyUserData: u})
}

// User returns the cached identity. A corrupt blob reads as absent.
func (s *FileStore) User() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var u domain.User
	if !s.get(keyUserData, &u) {
		return domain.User{}, false
	}
	return u, true
}

// SaveUserType records which role this namespace last logged in as.
func (s *FileStore) SaveUserType(role domain.UserRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putAll(map[string]any{keyUserType: role})
}

// UserType returns the recorded role, if present.
func (s *FileStore) UserType() (domain.UserRole, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.UserRole
	if !s.get(keyUserType, &r) || r == "" {
		return "", false
	}
	return r, true
}

// SaveCart persists the client-local cart wholesale.
func (s *FileStore) SaveCart(c domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.putAll(map[string]any{keyCart: c})
}

// Cart returns the persisted cart; absent or corrupt reads as empty.
func (s *FileStore) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c domain.Cart
	s.get(keyCart, &c)
	return c
}

// Clear wipes the namespace: prefs blob and sealing key both go, so any
// sealed bytes left behind are unrecoverable.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := loadOrCreateKey(s.dir)
	if err != nil {
		key = nil
	}
	rmErr := os.Remove(filepath.Join(s.dir, prefsFilename))
	if errors.Is(rmErr, os.ErrNotExist) {
		rmErr = nil
	}
	if err := destroyKey(s.dir, key); err != nil {
		return err
	}
	return rmErr
}

// LoggedIn reports whether a non-empty access token is stored. Nothing
// else: no expiry or signature check happens client-side.
func (s *FileStore) LoggedIn() bool {
	_, ok := s.Token()
	return ok
}

// ---------- internals ----------

func (s *FileStore) getString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v string
	if !s.get(key, &v) || v == "" {
		return "", false
	}
	return v, true
}

// load reads and opens the prefs blob. Every failure mode reads as an
// empty map: missing file, unreadable envelope, corrupt JSON.
func (s *FileStore) load() map[string]json.RawMessage {
	prefs := map[string]json.RawMessage{}

	b, err := readFile(filepath.Join(s.dir, prefsFilename))
	if err != nil || b == nil {
		return prefs
	}
	key, err := loadOrCreateKey(s.dir)
	if err != nil {
		return prefs
	}
	raw, err := open(key, b)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return map[string]json.RawMessage{}
	}
	return prefs
}

// get decodes one key into out; any failure reads as absent.
func (s *FileStore) get(key string, out any) bool {
	raw, ok := s.load()[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// putAll merges entries into the blob and writes it back sealed.
func (s *FileStore) putAll(entries map[string]any) error {
	prefs := s.load()
	for k, v := range entries {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		prefs[k] = raw
	}
	plain, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	key, err := loadOrCreateKey(s.dir)
	if err != nil {
		return err
	}
	sealed, err := seal(key, plain)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, prefsFilename), sealed, 0o600)
}

// Compile-time assertion that FileStore implements domain.TokenStore.
var _ domain.TokenStore = (*FileStore)(nil)
