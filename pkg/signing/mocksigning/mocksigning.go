package mocksigning

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/bitwiseio/sawtooth-signing-go/pkg/signing"
)

// AlgorithmName is reported by Context.AlgorithmName.
const AlgorithmName = "mock"

var (
	pubDomain = []byte("mocksigning/public-key")
	sigDomain = []byte("mocksigning/signature")
	keyDomain = []byte("mocksigning/private-key")

	errNilPrivateKey = fmt.Errorf("%w: nil private key", signing.ErrInvalidPrivateKey)
)

// Context is a signing.Context test double. It records how often each
// operation was called and can be told to fail signing.
type Context struct {
	mu      sync.Mutex
	signErr error
	keySeq  uint64
	calls   map[string]int
}

var _ signing.Context = (*Context)(nil)

// NewContext returns an empty mock context.
func NewContext() *Context {
	return &Context{calls: make(map[string]int)}
}

// FailSigning makes subsequent Sign calls return err. Passing nil restores
// normal behaviour.
func (c *Context) FailSigning(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signErr = err
}

// Calls returns how many times the named operation ("GetPublicKey", "Sign",
// "Verify" or "NewRandomPrivateKey") has been called.
func (c *Context) Calls(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[op]
}

func (c *Context) record(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[op]++
}

func (c *Context) AlgorithmName() string {
	return AlgorithmName
}

// GetPublicKey returns 0x02 followed by a hash of the private key.
func (c *Context) GetPublicKey(privateKey *signing.PrivateKey) (*signing.PublicKey, error) {
	c.record("GetPublicKey")
	if privateKey == nil {
		return nil, errNilPrivateKey
	}
	return publicKeyFor(privateKey)
}

// Sign returns a hex string of SignatureSize bytes bound to the derived public
// key and data.
func (c *Context) Sign(data []byte, privateKey *signing.PrivateKey) (string, error) {
	c.record("Sign")
	c.mu.Lock()
	err := c.signErr
	c.mu.Unlock()
	if err != nil {
		return "", errors.Join(signing.ErrSigning, err)
	}
	if privateKey == nil {
		return "", fmt.Errorf("%w: %w", signing.ErrSigning, errNilPrivateKey)
	}
	pub, err := publicKeyFor(privateKey)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(signatureFor(pub, data)), nil
}

// Verify recomputes the mock signature for publicKey and data.
func (c *Context) Verify(signature string, data []byte, publicKey *signing.PublicKey) bool {
	c.record("Verify")
	if publicKey == nil {
		return false
	}
	raw, err := hex.DecodeString(signature)
	if err != nil || len(raw) != signing.SignatureSize {
		return false
	}
	return subtle.ConstantTimeCompare(raw, signatureFor(publicKey, data)) == 1
}

// NewRandomPrivateKey returns keys from a deterministic sequence, so two
// fresh mock contexts hand out the same keys in the same order.
func (c *Context) NewRandomPrivateKey() (*signing.PrivateKey, error) {
	c.record("NewRandomPrivateKey")
	c.mu.Lock()
	c.keySeq++
	seq := c.keySeq
	c.mu.Unlock()

	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], seq)
	h := sha256.New()
	h.Write(keyDomain)
	h.Write(ctr[:])
	return signing.PrivateKeyFromBytes(h.Sum(nil))
}

func publicKeyFor(privateKey *signing.PrivateKey) (*signing.PublicKey, error) {
	h := sha256.New()
	h.Write(pubDomain)
	h.Write(privateKey.Bytes())
	return signing.PublicKeyFromBytes(append([]byte{0x02}, h.Sum(nil)...))
}

func signatureFor(pub *signing.PublicKey, data []byte) []byte {
	first := sha256.New()
	first.Write(sigDomain)
	first.Write(pub.Bytes())
	first.Write(data)
	r := first.Sum(nil)

	second := sha256.New()
	second.Write(r)
	second.Write(data)
	return second.Sum(r)
}
