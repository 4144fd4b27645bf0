package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

/*
Object keys have the form <32 lowercase hex chars>-<original filename>. The
prefix is 16 bytes from a cryptographically secure source, so keys are
effectively collision free and unguessable. Filenames are carried unmodified,
including any '-' characters they contain, which is why parsing a key back
apart takes exactly the first 32 hex characters rather than splitting on '-'.
*/

////////////////////////////////////////////////////////////////////////////////

const keyPrefixLen = 2 * 16 // hex chars in the random prefix

// GenerateObjectKey returns a fresh key for filename. Every call produces a
// new key, so storing the same filename twice creates two independent
// objects rather than an overwrite.
func GenerateObjectKey(filename string) string {
	buf := make([]byte, keyPrefixLen/2)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure means the platform's entropy source is
		// broken. Nothing sensible to return.
		panic(fmt.Sprintf("storage: reading random bytes: %v", err))
	}
	return hex.EncodeToString(buf) + "-" + filename
}

// FilenameFromKey recovers the original filename from a generated key.
func FilenameFromKey(key string) (string, error) {
	if len(key) < keyPrefixLen+2 || key[keyPrefixLen] != '-' {
		return "", fmt.Errorf("malformed object key: %q", key)
	}
	prefix := key[:keyPrefixLen]
	if strings.ToLower(prefix) != prefix {
		return "", fmt.Errorf("malformed object key: %q", key)
	}
	if _, err := hex.DecodeString(prefix); err != nil {
		return "", fmt.Errorf("malformed object key: %q", key)
	}
	return key[keyPrefixLen+1:], nil
}
