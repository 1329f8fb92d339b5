package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/technotes/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "notes"}}

	require.NoError(t, c.ValidateIssuer("notes"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid", func(t *testing.T) {
		c := jwtx.NewAccessClaims("u1", "ala", nil, time.Minute, "notes", now)
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired", func(t *testing.T) {
		c := jwtx.NewAccessClaims("u1", "ala", nil, time.Minute, "notes", now.Add(-time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := jwtx.NewAccessClaims("u1", "ala", nil, time.Minute, "notes", now.Add(10*time.Second))
		require.ErrorIs(t, c.ValidateExpiry(), jwtx.ErrNotYetValid)
		require.NoError(t, c.ValidateExpiryWithLeeway(30*time.Second))
	})
}

func TestNewSignerHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	claims := jwtx.NewAccessClaims("u1", "Ala", []string{"Manager"}, time.Minute, "notes", time.Now())
	tok, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 3)

	got, err := jwtx.NewVerifierHS256(secret, "notes").Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", got.Subject)
	require.Equal(t, "Ala", got.Username)
	require.True(t, got.HasRole("Manager"))
	require.False(t, got.HasRole("Admin"))
	require.NotEmpty(t, got.ID)
}

func TestVerifyFailures(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	tok, err := signer.Sign(jwtx.NewAccessClaims("u1", "ala", nil, time.Minute, "notes", time.Now()))
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		_, err := jwtx.NewVerifierHS256(secret, "").Verify("not-a-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := []byte("ffffffffffffffffffffffffffffffff")
		_, err := jwtx.NewVerifierHS256(other, "").Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := jwtx.NewVerifierHS256(secret, "someone-else").Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		old, err := signer.Sign(jwtx.NewAccessClaims("u1", "ala", nil, time.Minute, "notes", time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierHS256(secret, "").Verify(old)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})
}
