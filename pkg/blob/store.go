// Package blob abstracts the object storage the upload gateway talks to.
// Implementations return a URL the stored object can be fetched from; every
// Put is independent, so one failed file in a batch never aborts siblings.
package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUpstream indicates a transport or storage failure in the backing store.
var ErrUpstream = errors.New("object storage failure")

// Store persists uploaded objects.
type Store interface {
	// Put writes the object under name and returns its URL.
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// ObjectName derives a collision-resistant stored name from the suggested
// file name: prefix/<unix-ms>-<sanitized-name>.
func ObjectName(prefix, fileName string) string {
	return fmt.Sprintf("%s/%d-%s", prefix, time.Now().UnixMilli(), sanitize(fileName))
}

func sanitize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "unnamed"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
