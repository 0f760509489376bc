package hash

// Hasher turns plaintext passwords into opaque tokens and checks plaintext
// against a previously produced token.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
