package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tetteam4/swimming-project/config"
	"github.com/tetteam4/swimming-project/internal/models"
)

// ActivationTokenLifetime bounds how long an emailed activation link stays
// usable.
const ActivationTokenLifetime = time.Hour * 24 * 3

// MakeActivationToken builds a time-boxed token bound to the user's current
// state. The HMAC covers is_active and the password hash, so consuming the
// link (flipping is_active) or changing the password invalidates it.
func MakeActivationToken(user *models.User) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	ts := time.Now().Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), activationHash(user, ts, cfg.JWTSecret)), nil
}

// CheckActivationToken verifies a token against the user's current state.
// It reports false for tampered, expired or already-consumed tokens without
// distinguishing the reasons.
func CheckActivationToken(user *models.User, token string) bool {
	cfg, err := config.LoadConfig()
	if err != nil {
		return false
	}

	var tsPart, hashPart string
	for i := 0; i < len(token); i++ {
		if token[i] == '-' {
			tsPart, hashPart = token[:i], token[i+1:]
			break
		}
	}
	if tsPart == "" || hashPart == "" {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}
	if time.Since(time.Unix(ts, 0)) > ActivationTokenLifetime {
		return false
	}

	expected := activationHash(user, ts, cfg.JWTSecret)
	return hmac.Equal([]byte(expected), []byte(hashPart))
}

func activationHash(user *models.User, ts int64, secret string) string {
	data := fmt.Sprintf("%s|%t|%s|%d", user.UUID, user.IsActive, user.Password, ts)
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// EncodeUID encodes a user UUID for use in email links (unpadded
// URL-safe base64 of the canonical string form).
func EncodeUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id.String()))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(encoded string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(string(raw))
}
