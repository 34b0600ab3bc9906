package auth

import (
	"strings"
	"testing"

	"msgboard/config"

	"github.com/stretchr/testify/assert"
)

// testHasherConfig lowers the argon2 cost so the suite stays fast.
func testHasherConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		Argon2: &config.Argon2Config{
			Memory:      8 * 1024,
			Iterations:  1,
			Parallelism: 1,
		},
	}

	return cfg
}

func TestArgon2Hasher_Hash(t *testing.T) {
	hasher := NewArgon2Hasher(testHasherConfig())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestArgon2Hasher_HashProducesUniqueSalts(t *testing.T) {
	hasher := NewArgon2Hasher(testHasherConfig())

	password := "StrongPass123!"
	first, err := hasher.Hash(password)
	assert.NoError(t, err)
	second, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Same plaintext, different salt, different digest
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestArgon2Hasher_Check(t *testing.T) {
	hasher := NewArgon2Hasher(testHasherConfig())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestArgon2Hasher_CheckMalformedDigests(t *testing.T) {
	hasher := NewArgon2Hasher(testHasherConfig())

	malformed := []string{
		"",
		"$argon2id$v=19$m=8192,t=1,p=1$salt",           // missing key field
		"$argon2i$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",     // wrong variant
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",    // unsupported version
		"$argon2id$v=19$m=abc,t=1,p=1$c2FsdA$a2V5",     // bad parameters
		"$argon2id$v=19$m=8192,t=0,p=1$c2FsdA$a2V5",    // zero iterations
		"$argon2id$v=19$m=8192,t=1,p=0$c2FsdA$a2V5",    // zero parallelism
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",        // empty key
		"$argon2id$v=19$m=8192,t=1,p=1$!notb64$a2V5",   // bad salt encoding
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$!notb64", // bad key encoding
	}

	for _, digest := range malformed {
		assert.False(t, hasher.Check("StrongPass123!", digest), "expected check to fail for digest: %s", digest)
	}
}

func TestArgon2Hasher_CheckHonorsEmbeddedParams(t *testing.T) {
	// Digest produced with one parameter set must verify under a hasher
	// configured with another; the digest carries its own parameters.
	origin := NewArgon2Hasher(testHasherConfig())

	password := "StrongPass123!"
	hash, err := origin.Hash(password)
	assert.NoError(t, err)

	other := NewArgon2Hasher(&config.Config{})
	assert.True(t, other.Check(password, hash))
}

func TestArgon2Hasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewArgon2Hasher(nil)

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,"))
}
