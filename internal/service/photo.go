package service

import (
	"context"
	"log"
	"time"

	"opportunity-team/internal/storage"
)

// photoURL presigns a user's photo key. A missing key or a signing failure
// yields an empty URL; photos are decoration and never fail a request.
func photoURL(ctx context.Context, store storage.Storage, key string, expiry time.Duration) string {
	if key == "" || store == nil {
		return ""
	}

	url, err := store.GetPresignedURL(ctx, key, expiry)
	if err != nil {
		log.Printf("Failed to presign photo %s: %v", key, err)
		return ""
	}
	return url
}
