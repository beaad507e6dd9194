package locker

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedQRContent = errors.New("malformed qr content")

// TokenLength is the hex-encoded length of a lease token. 16 random bytes
// make collisions negligible, so tokens are treated as globally unique
// without a uniqueness check.
const TokenLength = 32

// NewToken returns an opaque single-use lease credential.
func NewToken() (string, error) {
	buf := make([]byte, TokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate lease token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// QRContent encodes the allocation result for display clients:
// "<locker_id>:TOKEN_<token>:EXP_<epoch_ms>".
func QRContent(lockerID, token string, expiresAt time.Time) string {
	return fmt.Sprintf("%s:TOKEN_%s:EXP_%d", lockerID, token, expiresAt.UnixMilli())
}

// ParseQRContent recovers the locker id, token and expiry from a QR payload.
func ParseQRContent(content string) (lockerID, token string, expiresAt time.Time, err error) {
	parts := strings.Split(content, ":")
	if len(parts) != 3 {
		return "", "", time.Time{}, ErrMalformedQRContent
	}

	lockerID = parts[0]
	if validateLockerID(lockerID) != nil {
		return "", "", time.Time{}, ErrMalformedQRContent
	}

	token, ok := strings.CutPrefix(parts[1], "TOKEN_")
	if !ok || token == "" {
		return "", "", time.Time{}, ErrMalformedQRContent
	}

	millis, ok := strings.CutPrefix(parts[2], "EXP_")
	if !ok {
		return "", "", time.Time{}, ErrMalformedQRContent
	}
	ms, parseErr := strconv.ParseInt(millis, 10, 64)
	if parseErr != nil {
		return "", "", time.Time{}, ErrMalformedQRContent
	}

	return lockerID, token, time.UnixMilli(ms), nil
}
