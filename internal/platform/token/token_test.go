package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_SignAndVerify(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret")

	signed, err := codec.Sign("session-001", time.Now().Add(time.Hour))
	require.NoError(t, err, "failed to sign token")

	sid, err := codec.Verify(signed)

	require.NoError(t, err)
	assert.Equal(t, "session-001", sid)
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := NewCodec("secret-a").Sign("session-001", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewCodec("secret-b").Verify(signed)

	assert.Error(t, err, "token signed with another secret must be rejected")
}

func TestCodec_Verify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret")
	signed, err := codec.Sign("session-001", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = codec.Verify(signed)

	assert.Error(t, err, "expired token must be rejected")
}

func TestCodec_Verify_Garbage(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret")

	_, err := codec.Verify("not-a-token")

	assert.Error(t, err)
}

// 署名アルゴリズムの偽装（alg=none）を拒否することを検証します。
func TestCodec_Verify_NoneAlgorithm(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "session-001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewCodec("test-secret").Verify(tokenStr)

	assert.Error(t, err, "alg=none token must be rejected")
}

func TestCodec_Verify_MissingSessionID(t *testing.T) {
	t.Parallel()

	secret := "test-secret"
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewCodec(secret).Verify(signed)

	assert.Error(t, err, "token without sid claim must be rejected")
}
