package signing

import "errors"

var (
	// ErrMalformedKey indicates key bytes or hex of the wrong length or with an
	// invalid encoding. It is returned at construction time.
	ErrMalformedKey = errors.New("signing: malformed key")

	// ErrInvalidPrivateKey indicates a private key scalar outside [1, n-1].
	ErrInvalidPrivateKey = errors.New("signing: invalid private key")

	// ErrSigning indicates the engine could not produce a signature.
	ErrSigning = errors.New("signing: signing failed")

	// ErrMalformedInput indicates a signature or public key that fails
	// structural decoding during verification.
	ErrMalformedInput = errors.New("signing: malformed input")

	// ErrInvalidSignature indicates a well-formed signature that does not
	// match the message and public key.
	ErrInvalidSignature = errors.New("signing: invalid signature")

	// ErrNoSuchAlgorithm is returned by CreateContext for unknown algorithms.
	ErrNoSuchAlgorithm = errors.New("signing: no such algorithm")
)
