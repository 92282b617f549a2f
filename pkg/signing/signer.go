package signing

import "sync"

// Signer binds a Context to a private key. The public key is derived on first
// use and cached.
type Signer struct {
	ctx Context
	key *PrivateKey

	once   sync.Once
	pub    *PublicKey
	pubErr error
}

// NewSigner returns a Signer that signs with key through ctx.
func NewSigner(ctx Context, key *PrivateKey) *Signer {
	return &Signer{ctx: ctx, key: key}
}

// Context returns the context the signer signs through.
func (s *Signer) Context() Context {
	return s.ctx
}

// Sign signs data and returns the hex-encoded signature.
func (s *Signer) Sign(data []byte) (string, error) {
	return s.ctx.Sign(data, s.key)
}

// PublicKey returns the public key matching the signer's private key.
func (s *Signer) PublicKey() (*PublicKey, error) {
	s.once.Do(func() {
		s.pub, s.pubErr = s.ctx.GetPublicKey(s.key)
	})
	return s.pub, s.pubErr
}

// CryptoFactory creates Signers that share one Context.
type CryptoFactory struct {
	ctx Context
}

// NewCryptoFactory returns a factory around ctx.
func NewCryptoFactory(ctx Context) *CryptoFactory {
	return &CryptoFactory{ctx: ctx}
}

// Context returns the factory's context.
func (f *CryptoFactory) Context() Context {
	return f.ctx
}

// NewSigner returns a Signer for key backed by the factory's context.
func (f *CryptoFactory) NewSigner(key *PrivateKey) *Signer {
	return NewSigner(f.ctx, key)
}
