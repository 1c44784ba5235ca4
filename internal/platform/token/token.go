// Package token はセッションIDを署名付きトークンへ相互変換します。
// サーバ側セッションの実体はストアにあり、クライアントへ渡すのは
// セッション署名シークレットでHMAC署名したセッションIDのみです。
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies session tokens using HS256.
type Codec struct {
	secret []byte
}

// NewCodec creates a new Codec with the provided signing secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign は指定されたセッションIDを含む署名済みトークンを生成します。
func (c *Codec) Sign(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、セッションIDを返します。
func (c *Codec) Verify(tokenStr string) (string, error) {
	t, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムを検証（HMACのみ許可）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if !t.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("token has no session id")
	}

	return sid, nil
}
