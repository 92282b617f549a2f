package signing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/bitwiseio/sawtooth-signing-go/pkg/signing/logging"
)

// Secp256k1AlgorithmName is the algorithm name reported by Secp256k1Context.
const Secp256k1AlgorithmName = "secp256k1"

// maxKeyGenAttempts bounds rejection sampling in NewRandomPrivateKey. The
// chance of a uniformly random 32-byte value falling outside [1, n-1] is
// below 2^-127, so hitting the bound means the entropy source is broken.
const maxKeyGenAttempts = 16

// Secp256k1Context signs and verifies with ECDSA over secp256k1, using
// SHA-256 message digests and RFC 6979 deterministic nonces.
//
// The context is immutable after construction and safe for concurrent use.
type Secp256k1Context struct {
	log        logging.Logger
	rand       io.Reader
	allowHighS bool
}

var _ Context = (*Secp256k1Context)(nil)

// NewSecp256k1Context returns a context configured by cfg.
func NewSecp256k1Context(cfg Config) *Secp256k1Context {
	return &Secp256k1Context{
		log:        cfg.logger().With("algorithm", Secp256k1AlgorithmName),
		rand:       cfg.rand(),
		allowHighS: cfg.AllowHighS,
	}
}

// AlgorithmName returns "secp256k1".
func (c *Secp256k1Context) AlgorithmName() string {
	return Secp256k1AlgorithmName
}

// GetPublicKey multiplies the generator by the private scalar and returns the
// compressed point. Scalars equal to zero or not below the curve order fail
// with ErrInvalidPrivateKey.
func (c *Secp256k1Context) GetPublicKey(privateKey *PrivateKey) (*PublicKey, error) {
	priv, err := c.engineKey(privateKey)
	if err != nil {
		return nil, err
	}
	defer priv.Zero()

	return PublicKeyFromBytes(priv.PubKey().SerializeCompressed())
}

// Sign hashes data once with SHA-256 and returns the low-S compact signature
// as 128 lowercase hex characters.
func (c *Secp256k1Context) Sign(data []byte, privateKey *PrivateKey) (string, error) {
	priv, err := c.engineKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	defer priv.Zero()

	digest := sha256.Sum256(data)
	sig := ecdsa.Sign(priv, digest[:])

	r, s := sig.R(), sig.S()
	var compact [SignatureSize]byte
	r.PutBytesUnchecked(compact[:32])
	s.PutBytesUnchecked(compact[32:])
	return hex.EncodeToString(compact[:]), nil
}

// Verify reports whether signature is a valid signature of data by the owner
// of publicKey. Structurally malformed input yields false rather than an
// error; use CheckSignature to tell the two cases apart.
func (c *Secp256k1Context) Verify(signature string, data []byte, publicKey *PublicKey) bool {
	err := c.CheckSignature(signature, data, publicKey)
	if err == nil {
		return true
	}
	c.log.Debug("signature rejected", "error", err, "malformed", errors.Is(err, ErrMalformedInput))
	return false
}

// CheckSignature verifies signature and explains a failure. It returns nil for
// a valid signature, an error wrapping ErrMalformedInput when the signature or
// public key cannot be decoded, and ErrInvalidSignature otherwise.
func (c *Secp256k1Context) CheckSignature(signature string, data []byte, publicKey *PublicKey) error {
	if publicKey == nil {
		return fmt.Errorf("%w: nil public key", ErrMalformedInput)
	}
	raw, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: signature hex: %v", ErrMalformedInput, err)
	}
	if len(raw) != SignatureSize {
		return fmt.Errorf("%w: signature must be %d bytes, got %d", ErrMalformedInput, SignatureSize, len(raw))
	}

	var r, s secp.ModNScalar
	if overflow := r.SetByteSlice(raw[:32]); overflow || r.IsZero() {
		return fmt.Errorf("%w: signature r out of range", ErrMalformedInput)
	}
	if overflow := s.SetByteSlice(raw[32:]); overflow || s.IsZero() {
		return fmt.Errorf("%w: signature s out of range", ErrMalformedInput)
	}

	pub, err := btcec.ParsePubKey(publicKey.b[:])
	if err != nil {
		return fmt.Errorf("%w: public key: %v", ErrMalformedInput, err)
	}

	if !c.allowHighS && s.IsOverHalfOrder() {
		return fmt.Errorf("%w: non-canonical high s value", ErrInvalidSignature)
	}

	digest := sha256.Sum256(data)
	if !ecdsa.NewSignature(&r, &s).Verify(digest[:], pub) {
		return ErrInvalidSignature
	}
	return nil
}

// NewRandomPrivateKey draws a private key uniformly from [1, n-1] using the
// configured entropy source.
func (c *Secp256k1Context) NewRandomPrivateKey() (*PrivateKey, error) {
	var buf [PrivateKeySize]byte
	defer ZeroizeBytes(buf[:])

	for i := 0; i < maxKeyGenAttempts; i++ {
		if _, err := io.ReadFull(c.rand, buf[:]); err != nil {
			return nil, fmt.Errorf("signing: read entropy: %w", err)
		}
		var scalar secp.ModNScalar
		overflow := scalar.SetBytes(&buf)
		valid := overflow == 0 && !scalar.IsZero()
		scalar.Zero()
		if valid {
			return PrivateKeyFromBytes(buf[:])
		}
	}
	return nil, fmt.Errorf("signing: entropy source produced %d out-of-range scalars", maxKeyGenAttempts)
}

// engineKey converts privateKey into the engine's key type after checking
// that the scalar lies in [1, n-1]. The caller must Zero the result.
func (c *Secp256k1Context) engineKey(privateKey *PrivateKey) (*btcec.PrivateKey, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: nil private key", ErrInvalidPrivateKey)
	}

	buf := privateKey.b
	defer ZeroizeBytes(buf[:])

	var scalar secp.ModNScalar
	if overflow := scalar.SetBytes(&buf); overflow != 0 {
		scalar.Zero()
		c.log.Debug("private key rejected", logging.Redacted("private_key"), "reason", "scalar not below curve order")
		return nil, fmt.Errorf("%w: scalar not below curve order", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		c.log.Debug("private key rejected", logging.Redacted("private_key"), "reason", "zero scalar")
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}
	priv := secp.NewPrivateKey(&scalar)
	scalar.Zero()
	return priv, nil
}
