// Package chat holds the per-ride message channel: an append-only,
// chronologically ordered log plus the viewer-relative classification rules.
// Messages are immutable once appended.
package chat

import (
	"time"

	"github.com/joaogpereira/UniDrive/domain"
)

// Message is one authored entry in a channel.
// ID is assigned by the channel, never by the caller, and is strictly
// increasing so it doubles as a tie-break when two entries share a timestamp.
type Message struct {
	ID         int64
	SenderID   string
	SenderName string
	Body       string
	CreatedAt  time.Time
	Role       domain.Role
}

// Classification is the presentation category of a message for one viewer.
type Classification string

const (
	ClassSelf   Classification = "self"
	ClassDriver Classification = "driver"
	ClassOther  Classification = "other"
)

// Entry pairs a message with its classification for the rendering surface.
type Entry struct {
	Message        Message
	Classification Classification
}
