package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// DefaultLimit is used when a list request carries no usable limit.
const DefaultLimit = 50

// MaxLimit caps page sizes.
const MaxLimit = 200

// Cursor points at the last row of a page ordered by (timestamp DESC, id DESC).
type Cursor struct {
	At time.Time
	ID string
}

// EncodeToken creates an opaque page token from the last row's timestamp and id.
func EncodeToken(at time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", at.UTC().Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token created by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	at, id, ok := strings.Cut(string(decodedBytes), "|")
	if !ok || id == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	parsed, err := time.Parse(timeFormat, at)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}
	return Cursor{At: parsed, ID: id}, nil
}

// NormalizeLimit clamps limit into [1, MaxLimit], using DefaultLimit for non-positive values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
