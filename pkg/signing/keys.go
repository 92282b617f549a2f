package signing

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/bitwiseio/sawtooth-signing-go/pkg/signing/logging"
)

const (
	// PrivateKeySize is the length of a raw private key in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the length of a compressed public key in bytes.
	PublicKeySize = 33
	// SignatureSize is the length of a compact (r || s) signature in bytes.
	SignatureSize = 64

	pubKeyEven byte = 0x02
	pubKeyOdd  byte = 0x03
)

// PrivateKey is a 32-byte secp256k1 scalar. Construction checks only the
// length; range validation happens in the engine when the key is used.
type PrivateKey struct {
	b [PrivateKeySize]byte
}

// PrivateKeyFromHex decodes a 64-character hex string (any case) into a
// PrivateKey.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: private key hex: %v", ErrMalformedKey, err)
	}
	defer ZeroizeBytes(raw)
	return PrivateKeyFromBytes(raw)
}

// PrivateKeyFromBytes copies raw into a new PrivateKey.
func PrivateKeyFromBytes(raw []byte) (*PrivateKey, error) {
	if len(raw) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrMalformedKey, PrivateKeySize, len(raw))
	}
	k := &PrivateKey{}
	copy(k.b[:], raw)
	return k, nil
}

// Bytes returns a copy of the raw key.
func (k *PrivateKey) Bytes() []byte {
	out := make([]byte, PrivateKeySize)
	copy(out, k.b[:])
	return out
}

// Hex returns the key as 64 lowercase hex characters.
func (k *PrivateKey) Hex() string {
	return hex.EncodeToString(k.b[:])
}

// String implements fmt.Stringer without revealing the key.
func (k *PrivateKey) String() string {
	return logging.Placeholder()
}

// Equal reports whether both keys hold the same bytes, in constant time.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.b[:], other.b[:]) == 1
}

// PublicKey is a compressed secp256k1 point: a parity prefix (0x02 or 0x03)
// followed by the 32-byte x-coordinate.
type PublicKey struct {
	b [PublicKeySize]byte
}

// PublicKeyFromHex decodes a 66-character hex string (any case) into a
// PublicKey.
func PublicKeyFromHex(s string) (*PublicKey, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: public key hex: %v", ErrMalformedKey, err)
	}
	return PublicKeyFromBytes(raw)
}

// PublicKeyFromBytes copies raw into a new PublicKey. Only the length and the
// parity prefix are checked; whether the x-coordinate lies on the curve is
// left to the engine.
func PublicKeyFromBytes(raw []byte) (*PublicKey, error) {
	if len(raw) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrMalformedKey, PublicKeySize, len(raw))
	}
	if raw[0] != pubKeyEven && raw[0] != pubKeyOdd {
		return nil, fmt.Errorf("%w: public key prefix must be 0x02 or 0x03, got 0x%02x", ErrMalformedKey, raw[0])
	}
	k := &PublicKey{}
	copy(k.b[:], raw)
	return k, nil
}

// Bytes returns a copy of the compressed point.
func (k *PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, k.b[:])
	return out
}

// Hex returns the key as 66 lowercase hex characters.
func (k *PublicKey) Hex() string {
	return hex.EncodeToString(k.b[:])
}

func (k *PublicKey) String() string {
	return k.Hex()
}

// Equal reports whether both keys encode the same point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.b[:], other.b[:]) == 1
}
