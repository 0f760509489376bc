package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ferdiebergado/accounts/internal/config"
	"golang.org/x/crypto/argon2"
)

var ErrInvalidHashFormat = errors.New("argon2 hasher: invalid hash format")

type Argon2Hasher struct {
	memory     uint32
	iterations uint32
	threads    uint8
	saltLen    uint32
	keyLen     uint32
	pepper     string
}

var _ Hasher = (*Argon2Hasher)(nil)

func NewArgon2Hasher(cfg *config.Argon2, pepper string) *Argon2Hasher {
	return &Argon2Hasher{
		memory:     cfg.Memory,
		iterations: cfg.Iterations,
		threads:    cfg.Threads,
		saltLen:    cfg.SaltLength,
		keyLen:     cfg.KeyLength,
		pepper:     pepper,
	}
}

// Hash returns the argon2id hash of plain in the PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<iterations>,p=<threads>$<salt>$<key>
func (h *Argon2Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt with length %d: %w", h.saltLen, err)
	}

	key := argon2.IDKey([]byte(plain+h.pepper), salt, h.iterations, h.memory, h.threads, h.keyLen)

	saltBase64 := base64.RawStdEncoding.EncodeToString(salt)
	keyBase64 := base64.RawStdEncoding.EncodeToString(key)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.threads, saltBase64, keyBase64)

	return encoded, nil
}

// Verify recomputes the key with the parameters stored in hashed, so hashes
// produced under older settings keep verifying after a config change.
func (h *Argon2Hasher) Verify(plain, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: version: %v", ErrInvalidHashFormat, err)
	}

	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", ErrInvalidHashFormat, version)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: params: %v", ErrInvalidHashFormat, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("base64 decode salt: %w", err)
	}

	wantKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("base64 decode key: %w", err)
	}

	keyLen := len(wantKey)
	if keyLen > int(^uint32(0)) {
		return false, fmt.Errorf("key length %d exceeds uint32", keyLen)
	}

	gotKey := argon2.IDKey([]byte(plain+h.pepper), salt, iterations, memory, threads, uint32(keyLen))
	return subtle.ConstantTimeCompare(gotKey, wantKey) == 1, nil
}
