// Package signing provides the secp256k1 signing primitives used to sign and
// verify transactions: private and public key types with hex encoding, a
// Context abstraction over the curve engine, and a Signer that binds a context
// to a private key.
//
// # Keys
//
// Private keys are 32-byte scalars and public keys are 33-byte compressed
// points. Both cross API boundaries as lowercase hex without a 0x prefix.
//
//	priv, err := signing.PrivateKeyFromHex("80378f10...")
//	if err != nil {
//	    return err
//	}
//
// # Signing and Verification
//
// Messages are hashed once with SHA-256 and signed with a deterministic
// RFC 6979 nonce, so the same key and message always yield the same 64-byte
// compact (r || s) signature, encoded as 128 hex characters.
//
//	ctx := signing.NewSecp256k1Context(signing.Config{})
//	signer := signing.NewSigner(ctx, priv)
//	sig, err := signer.Sign(message)
//	pub, err := signer.PublicKey()
//	ok := ctx.Verify(sig, message, pub)
//
// Verify reports a plain boolean. Callers that need to tell a structurally
// malformed signature apart from one that simply does not match can use
// Secp256k1Context.CheckSignature.
//
// # Concurrency
//
// Contexts hold no per-call state and are safe for concurrent use. Key values
// are immutable after construction.
package signing
