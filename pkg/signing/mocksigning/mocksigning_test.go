package mocksigning_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitwiseio/sawtooth-signing-go/pkg/signing"
	"github.com/bitwiseio/sawtooth-signing-go/pkg/signing/mocksigning"
)

func TestMockSignVerify(t *testing.T) {
	ctx := mocksigning.NewContext()
	key, err := ctx.NewRandomPrivateKey()
	require.NoError(t, err)

	signer := signing.NewSigner(ctx, key)
	msg := []byte("Hello, Alice, this is Bob.")

	sig, err := signer.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, 2*signing.SignatureSize)

	again, err := signer.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, sig, again)

	pub, err := signer.PublicKey()
	require.NoError(t, err)
	assert.True(t, ctx.Verify(sig, msg, pub))
	assert.False(t, ctx.Verify(sig, []byte("Hello, Alice, this is Eve."), pub))
	assert.False(t, ctx.Verify("zz", msg, pub))
	assert.False(t, ctx.Verify(sig, msg, nil))

	other, err := ctx.NewRandomPrivateKey()
	require.NoError(t, err)
	otherPub, err := ctx.GetPublicKey(other)
	require.NoError(t, err)
	assert.False(t, ctx.Verify(sig, msg, otherPub))

	assert.Equal(t, 2, ctx.Calls("Sign"))
	assert.Equal(t, 2, ctx.Calls("NewRandomPrivateKey"))
	assert.Equal(t, 5, ctx.Calls("Verify"))
}

func TestMockDeterministicKeys(t *testing.T) {
	a, err := mocksigning.NewContext().NewRandomPrivateKey()
	require.NoError(t, err)
	b, err := mocksigning.NewContext().NewRandomPrivateKey()
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestMockFailSigning(t *testing.T) {
	ctx := mocksigning.NewContext()
	key, err := ctx.NewRandomPrivateKey()
	require.NoError(t, err)

	boom := errors.New("boom")
	ctx.FailSigning(boom)
	_, err = ctx.Sign([]byte("x"), key)
	require.Error(t, err)
	assert.ErrorIs(t, err, signing.ErrSigning)
	assert.ErrorIs(t, err, boom)

	ctx.FailSigning(nil)
	_, err = ctx.Sign([]byte("x"), key)
	require.NoError(t, err)
}

func TestMockNilPrivateKey(t *testing.T) {
	ctx := mocksigning.NewContext()

	_, err := ctx.GetPublicKey(nil)
	require.ErrorIs(t, err, signing.ErrInvalidPrivateKey)

	_, err = ctx.Sign([]byte("x"), nil)
	require.ErrorIs(t, err, signing.ErrSigning)
	require.ErrorIs(t, err, signing.ErrInvalidPrivateKey)
}
