// Package mocksigning provides a deterministic in-memory signing.Context for
// tests of higher-level consumers. It performs no curve arithmetic: public
// keys and signatures are SHA-256 derivations that only this package can
// verify, so they are never valid secp256k1 values.
package mocksigning
