// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"msgboard/config"
	"msgboard/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// Default argon2id parameters, used when the config carries none.
const (
	defaultMemory      = 64 * 1024 // KiB
	defaultIterations  = 3
	defaultSaltLength  = 16
	defaultKeyLength   = 32
	maxParallelism     = 4
	argon2idFieldCount = 6
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface
// using argon2id, a memory-hard KDF. Digests are stored in the standard
// encoded form ($argon2id$v=19$m=...,t=...,p=...$salt$key) so the parameters
// travel with the digest and can change between deployments without
// invalidating stored credentials.
type argon2Hasher struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher. Parameters come from
// the auth section of the config; absent values fall back to safe defaults.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		memory:      defaultMemory,
		iterations:  defaultIterations,
		parallelism: defaultParallelism(),
		saltLength:  defaultSaltLength,
		keyLength:   defaultKeyLength,
	}

	if cfg == nil || cfg.Auth == nil || cfg.Auth.Argon2 == nil {
		return h
	}

	params := cfg.Auth.Argon2
	if params.Memory > 0 {
		h.memory = params.Memory
	}
	if params.Iterations > 0 {
		h.iterations = params.Iterations
	}
	if params.Parallelism > 0 {
		h.parallelism = params.Parallelism
	}
	if params.SaltLength > 0 {
		h.saltLength = params.SaltLength
	}
	if params.KeyLength > 0 {
		h.keyLength = params.KeyLength
	}

	return h
}

func defaultParallelism() uint8 {
	p := runtime.NumCPU()
	if p > maxParallelism {
		p = maxParallelism
	}

	return uint8(p)
}

// Hash generates a salted argon2id digest from a plaintext password.
// A fresh random salt is drawn per call, so identical plaintexts yield
// distinct digests.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.iterations, h.memory, h.parallelism, h.keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory,
		h.iterations,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with an encoded argon2id digest.
// The digest's own embedded parameters drive the recomputation, and the
// comparison is constant-time. Malformed digests report false.
func (h *argon2Hasher) Check(password, encodedHash string) bool {
	memory, iterations, parallelism, salt, key, err := decodeDigest(encodedHash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

// decodeDigest parses the standard argon2id encoded form back into its
// parameters, salt and derived key.
func decodeDigest(encoded string) (memory, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	fields := strings.Split(encoded, "$")
	if len(fields) != argon2idFieldCount || fields[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("malformed argon2id digest")
	}

	var version int
	if _, err = fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed version field")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.New("unsupported argon2 version")
	}

	if _, err = fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed parameter field")
	}
	// argon2.IDKey panics below one iteration or one lane.
	if iterations < 1 || parallelism < 1 {
		return 0, 0, 0, nil, nil, errors.New("argon2 parameters out of range")
	}

	salt, err = base64.RawStdEncoding.DecodeString(fields[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(fields[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "malformed key")
	}
	if len(key) == 0 {
		return 0, 0, 0, nil, nil, errors.New("empty derived key")
	}

	return memory, iterations, parallelism, salt, key, nil
}
