package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// DefaultLimit is used when a list request does not name a page size.
const DefaultLimit = 20

// EncodeToken creates an opaque token pointing after the entry with the given
// sequence in the entity's ledger. Keying it by entity keeps a token from
// being replayed against another ledger. The entity id goes last so it may
// contain the field separator.
func EncodeToken(entityID string, entrySequence int64) string {
	return EncodeMultiFieldToken(strconv.FormatInt(entrySequence, 10), entityID)
}

// DecodeToken parses a token created by EncodeToken.
func DecodeToken(token string) (string, int64, error) {
	decoded, err := decode(token)
	if err != nil {
		return "", 0, err
	}
	seqPart, entityID, ok := strings.Cut(decoded, "|")
	if !ok || entityID == "" {
		return "", 0, fmt.Errorf("invalid pagination token format (split)")
	}

	sequence, err := strconv.ParseInt(seqPart, 10, 64)
	if err != nil || sequence < 1 {
		return "", 0, fmt.Errorf("invalid pagination token format (sequence parse): %q", seqPart)
	}
	return entityID, sequence, nil
}

// EncodeMultiFieldToken creates a URL safe token with any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decoded, err := decode(token)
	if err != nil {
		return nil, err
	}
	return strings.Split(decoded, "|"), nil
}

func decode(token string) (string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return string(decodedBytes), nil
}
