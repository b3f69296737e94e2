package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sudar-backend/pkg/utils"
)

// Kind membedakan token access dan refresh.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims payload JWT: subject = teacher ID, Type = access/refresh.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Pair satu pasang token hasil login/signup beserta masa berlakunya,
// dipakai handler untuk set cookie.
type Pair struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(cfg utils.JWTConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		accessTTL:  time.Duration(cfg.AccessExpiryMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshExpiryDays) * 24 * time.Hour,
	}
}

func (m *Manager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

// Issue buat token bertanda tangan HS256 untuk subject tertentu.
func (m *Manager) Issue(subject string, kind Kind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}

	return signed, nil
}

// IssuePair buat pasangan access + refresh token sekaligus.
func (m *Manager) IssuePair(subject string) (*Pair, error) {
	access, err := m.Issue(subject, KindAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := m.Issue(subject, KindRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    m.accessTTL,
		RefreshTTL:   m.refreshTTL,
	}, nil
}

// Verify parse dan validasi token, kembalikan claims kalau valid.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
