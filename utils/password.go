package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword encodes a password with argon2id. The encoded form embeds the
// salt and parameters, so verification needs no state beyond the hash itself.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded argon2 hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
