package domain

// PasswordHasher turns plaintext passwords into one-way digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) (bool, error)
}

// TokenIssuer signs bearer credentials for a signed-in user.
type TokenIssuer interface {
	Sign(id, userName string) (string, error)
}
