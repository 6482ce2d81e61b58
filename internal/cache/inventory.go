package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ContentKeyPrefix = "content:%d"
	ContentListKey   = "content:list"
)

const (
	ContentTTL     = 5 * time.Minute
	ContentListTTL = time.Minute
)

func ContentKey(contentID uint) string {
	return fmt.Sprintf(ContentKeyPrefix, contentID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateContent drops both the record's own entry and the list entry;
// any write to a content row changes what the list endpoint returns.
func InvalidateContent(ctx context.Context, contentID uint) {
	Invalidate(ctx, ContentKey(contentID))
	Invalidate(ctx, ContentListKey)
}
