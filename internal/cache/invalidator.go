// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"

	"github.com/google/uuid"

	"reviewpress/internal/store"
)

// EventLog records cache invalidations for the admin audit trail.
type EventLog interface {
	Log(ctx context.Context, entityType string, entityID uuid.UUID, action string)
}

// ContentInvalidator purges the pages affected by a content write and
// records the event.
type ContentInvalidator struct {
	pages *PageCache
	log   EventLog
}

// NewContentInvalidator wires the page cache to the event log. log may be
// nil.
func NewContentInvalidator(pages *PageCache, log EventLog) *ContentInvalidator {
	return &ContentInvalidator{pages: pages, log: log}
}

// InvalidateContent drops the rendered item and every listing.
func (ci *ContentInvalidator) InvalidateContent(ctx context.Context, id uuid.UUID) {
	ci.pages.InvalidateContent(ctx, id)
	if ci.log != nil {
		ci.log.Log(ctx, store.CacheEntityContent, id, "invalidate")
	}
}
