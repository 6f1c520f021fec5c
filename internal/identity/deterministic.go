package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// ProjectUUID keys a project by its merge identity, so duplicate directories
// of the same project share an ID.
func ProjectUUID(identityKey string) uuid.UUID {
	return UUID("nuwa-web:project:" + strings.ToLower(strings.TrimSpace(identityKey)))
}

func PostUUID(slug string) uuid.UUID {
	return UUID("nuwa-web:post:" + strings.ToLower(strings.TrimSpace(slug)))
}

func CategoryUUID(slug string) uuid.UUID {
	return UUID("nuwa-web:category:" + strings.ToLower(strings.TrimSpace(slug)))
}
