package jwtmw

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		userID uint
	}{
		{"basic user", 1},
		{"mid-range id", 42},
		{"large user id", 999999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// Parse back with the same secret and verify the claims
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil || !token.Valid {
				t.Fatalf("generated token does not parse: %v", err)
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("expected MapClaims")
			}
			sub, ok := claims["sub"].(float64)
			if !ok || uint(sub) != tt.userID {
				t.Errorf("expected sub %d, got %v", tt.userID, claims["sub"])
			}
			if _, ok := claims["exp"].(float64); !ok {
				t.Error("expected exp claim")
			}
		})
	}
}

// TestVerifier_Verify は発行と検証のラウンドトリップおよび不正トークンの拒否を検証します。
func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	const secret = "verify-secret"

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		gen := NewGenerator(secret, time.Hour)
		tokenStr, err := gen.GenerateToken(42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		verifier := NewVerifier(secret)
		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != 42 {
			t.Errorf("expected user ID 42, got %d", userID)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		gen := NewGenerator(secret, -time.Hour)
		tokenStr, err := gen.GenerateToken(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		verifier := NewVerifier(secret)
		_, err = verifier.Verify(tokenStr)
		if !errors.Is(err, ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got: %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		gen := NewGenerator("other-secret", time.Hour)
		tokenStr, _ := gen.GenerateToken(1)

		verifier := NewVerifier(secret)
		_, err := verifier.Verify(tokenStr)
		if !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("expected ErrTokenInvalid, got: %v", err)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		verifier := NewVerifier(secret)

		for _, tokenStr := range []string{"not.a.valid.token", "randomstring", ""} {
			_, err := verifier.Verify(tokenStr)
			if !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("token %q: expected ErrTokenInvalid, got: %v", tokenStr, err)
			}
		}
	})

	t.Run("non-HMAC algorithm rejected", func(t *testing.T) {
		t.Parallel()

		// alg=none token with a valid-looking payload
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": 1,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}

		verifier := NewVerifier(secret)
		_, err = verifier.Verify(tokenStr)
		if !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("expected ErrTokenInvalid, got: %v", err)
		}
	})
}
