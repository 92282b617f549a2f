package signing

import (
	"crypto/rand"
	"io"

	"github.com/bitwiseio/sawtooth-signing-go/pkg/signing/logging"
)

// Config expresses the knobs of a signing context. The zero value is a valid
// production configuration.
type Config struct {
	// Logger receives debug records about rejected keys and signatures. Nil
	// binds to slog.Default().
	Logger logging.Logger

	// Rand is the entropy source for NewRandomPrivateKey. Nil selects
	// crypto/rand.Reader.
	Rand io.Reader

	// AllowHighS accepts signatures whose s value is above n/2. Signatures
	// produced by this package are always low-S; the strict default matches
	// libsecp256k1.
	AllowHighS bool
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}

func (c Config) rand() io.Reader {
	if c.Rand == nil {
		return rand.Reader
	}
	return c.Rand
}
