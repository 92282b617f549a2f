package signing

import (
	"fmt"
	"strings"
)

// Context is the capability set of a signing engine. Implementations hold no
// per-key state: every operation takes its keys as parameters.
type Context interface {
	// AlgorithmName returns the name of the curve and scheme, e.g. "secp256k1".
	AlgorithmName() string

	// GetPublicKey derives the public key of privateKey.
	GetPublicKey(privateKey *PrivateKey) (*PublicKey, error)

	// Sign signs data with privateKey and returns the hex-encoded signature.
	Sign(data []byte, privateKey *PrivateKey) (string, error)

	// Verify reports whether signature is valid for data under publicKey.
	Verify(signature string, data []byte, publicKey *PublicKey) bool

	// NewRandomPrivateKey generates a fresh private key.
	NewRandomPrivateKey() (*PrivateKey, error)
}

// CreateContext returns the production Context for the named algorithm. Names
// are matched case-insensitively.
func CreateContext(algorithm string, cfg Config) (Context, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case Secp256k1AlgorithmName:
		return NewSecp256k1Context(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoSuchAlgorithm, algorithm)
	}
}
