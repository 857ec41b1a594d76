package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"

	"swiftdrop/internal/util/memzero"
)

const (
	keyFilename = "store.key"

	// The current supported version of the sealed blob format on disk.
	sealFormatVersion = 1
)

var errSealOpen = errors.New("sealed store unreadable or corrupted")

// blob is the on-disk JSON structure holding the ciphertext.
type blob struct {
	V      int    `json:"v"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// loadOrCreateKey returns the namespace's sealing key, generating it with
// 0600 perms on first use.
func loadOrCreateKey(dir string) ([]byte, error) {
	path := filepath.Join(dir, keyFilename)
	if key, err := readFile(path); err != nil {
		return nil, err
	} else if len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := writeFile(path, key, 0o600); err != nil {
		return nil, err
	}
	return key, nil
}

// seal encrypts raw under key into a JSON blob with a fresh random nonce.
func seal(key, raw []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, nil)
	return json.Marshal(blob{V: sealFormatVersion, Nonce: nonce, Cipher: ct})
}

// open decrypts a JSON blob produced by seal.
func open(key, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, errSealOpen
	}
	if bl.V > sealFormatVersion {
		return nil, fmt.Errorf("unsupported store format version %d", bl.V)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	if len(bl.Nonce) != aead.NonceSize() {
		return nil, errSealOpen
	}
	pt, err := aead.Open(nil, bl.Nonce, bl.Cipher, nil)
	if err != nil {
		return nil, errSealOpen
	}
	return pt, nil
}

// destroyKey wipes and removes the namespace key so sealed data left on
// disk is unrecoverable after Clear.
func destroyKey(dir string, key []byte) error {
	memzero.Zero(key)
	err := os.Remove(filepath.Join(dir, keyFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
