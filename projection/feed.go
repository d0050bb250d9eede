// Package projection builds viewer-relative views of a channel's log.
// Handles ordering and classification pairing.
// Does not mutate channels or interact with UI directly.
package projection

import (
	"github.com/samber/lo"

	"github.com/joaogpereira/UniDrive/domain/chat"
)

// Feed pairs every message of a channel with its classification for one
// viewer, preserving log order. Pure: same channel state and viewer always
// produce the same feed.
func Feed(channel *chat.Channel, viewerID string) []chat.Entry {
	return lo.Map(channel.Messages(), func(m chat.Message, _ int) chat.Entry {
		return chat.Entry{
			Message:        m,
			Classification: channel.Classify(m, viewerID),
		}
	})
}
