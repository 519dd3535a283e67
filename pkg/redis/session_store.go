package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

const sessionKeyPrefix = "admin_session:"

// ErrSessionNotFound means the session expired or was revoked.
var ErrSessionNotFound = errors.New("session not found")

// SessionData is what an admin login leaves behind in Redis.
type SessionData struct {
	Role      string    `json:"role"`
	ClientIP  string    `json:"clientIp,omitempty"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore keeps admin sessions in Redis, sealed with AES-GCM. The session
// id is bound as associated data, so a sealed value only opens under its own key.
type SessionStore struct {
	aead cipher.AEAD
}

var (
	setSessionValue    = Set
	getSessionValue    = Get
	delSessionValue    = Del
	marshalSessionJSON = json.Marshal
)

// NewSessionStore expects a 32 byte key encoded as 64 hex characters.
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return &SessionStore{aead: aead}, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("session cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	payload, err := marshalSessionJSON(data)
	if err != nil {
		return err
	}
	sealed, err := s.seal(sessionID, payload)
	if err != nil {
		return err
	}
	return setSessionValue(ctx, sessionKeyPrefix+sessionID, sealed, expiration)
}

// GetSession returns ErrSessionNotFound once the key has expired or been deleted.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	sealed, err := getSessionValue(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		if IsNil(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	payload, err := s.open(sessionID, sealed)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &data, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return delSessionValue(ctx, sessionKeyPrefix+sessionID)
}

// seal returns hex(nonce || ciphertext).
func (s *SessionStore) seal(sessionID string, plaintext []byte) (string, error) {
	if s.aead == nil {
		return "", errors.New("session store not initialized")
	}
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	return hex.EncodeToString(s.aead.Seal(nonce, nonce, plaintext, []byte(sessionID))), nil
}

func (s *SessionStore) open(sessionID, sealedHex string) ([]byte, error) {
	if s.aead == nil {
		return nil, errors.New("session store not initialized")
	}
	raw, err := hex.DecodeString(sealedHex)
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	size := s.aead.NonceSize()
	if len(raw) < size {
		return nil, errors.New("ciphertext too short")
	}
	plaintext, err := s.aead.Open(nil, raw[:size], raw[size:], []byte(sessionID))
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return plaintext, nil
}
