// Package runtime mediates between the channel loader, the message log and
// the rendering surface. It orchestrates the session without containing
// domain rules.
package runtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/joaogpereira/UniDrive/auth"
	"github.com/joaogpereira/UniDrive/contract"
	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/domain/chat"
	"github.com/joaogpereira/UniDrive/errors"
	"github.com/joaogpereira/UniDrive/moderation"
	"github.com/joaogpereira/UniDrive/observability"
	"github.com/joaogpereira/UniDrive/projection"
	"github.com/joaogpereira/UniDrive/search"
	"github.com/joaogpereira/UniDrive/services"
)

// ChannelController drives one view session over a ride channel.
// Every log mutation ends with a render of the full classified feed followed
// by a scroll-to-latest directive on the sink.
type ChannelController struct {
	mu        sync.Mutex
	log       *slog.Logger
	loader    *services.ChannelLoader
	moderator *moderation.Moderator
	index     *search.MessageIndex
	monitor   *observability.Monitor
	sink      contract.RenderSink

	channel *chat.Channel
	viewer  domain.Identity
}

func NewChannelController(
	log *slog.Logger,
	loader *services.ChannelLoader,
	moderator *moderation.Moderator,
	index *search.MessageIndex,
	monitor *observability.Monitor,
	sink contract.RenderSink,
) *ChannelController {
	return &ChannelController{
		log:       log,
		loader:    loader,
		moderator: moderator,
		index:     index,
		monitor:   monitor,
		sink:      sink,
	}
}

// Open loads (or re-attaches to) the ride's channel, resolves the viewer's
// identity and emits the initial render. ErrRideNotFound means the caller
// should show an absent state; ErrUnauthenticated is a broken contract with
// the access-control layer upstream.
func (c *ChannelController) Open(ctx context.Context, rideID string, user *domain.Identity) error {
	viewer, err := auth.ResolveIdentity(user)
	if err != nil {
		return err
	}

	channel, err := c.loader.Load(rideID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.channel = channel
	c.viewer = viewer
	c.mu.Unlock()

	// Seed history becomes searchable too. Add is idempotent per message,
	// so re-opening a channel does not duplicate index entries.
	for _, msg := range channel.Messages() {
		if err := c.index.Add(channel.RideID, msg); err != nil {
			c.log.Warn("Failed to index message", "ride", channel.RideID, "id", msg.ID, "err", err)
		}
	}

	c.monitor.IncrChannelsOpened()
	c.log.Info("Channel opened",
		"ride", channel.RideID, "viewer", viewer.ID, "messages", channel.Len())
	return c.emit(ctx)
}

// Send trims and appends a message authored by the viewer, then re-renders.
// Blank input is silently ignored: no append, no render, no error. The body
// passes through moderation before it reaches the log.
func (c *ChannelController) Send(ctx context.Context, text string) error {
	c.mu.Lock()
	channel, viewer := c.channel, c.viewer
	c.mu.Unlock()
	if channel == nil {
		return errors.ErrNoOpenChannel
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		c.monitor.IncrBlankSendsIgnored()
		c.log.Debug("Ignoring blank send", "ride", channel.RideID)
		return nil
	}

	body, censoredWords := c.moderator.Censor(trimmed)
	if len(censoredWords) > 0 {
		c.monitor.IncrCensoredMessages()
	}

	msg, err := channel.Append(viewer.ID, viewer.DisplayName, viewer.Role, body)
	if err != nil {
		return err
	}

	if err := c.index.Add(channel.RideID, msg); err != nil {
		c.log.Warn("Failed to index message", "ride", channel.RideID, "id", msg.ID, "err", err)
	}

	c.monitor.IncrMessagesSent()
	c.log.Debug("Message appended",
		"ride", channel.RideID, "id", msg.ID, "lang", moderation.Language(body))
	return c.emit(ctx)
}

// Search runs a /find query against the open channel and resolves the hits
// back into classified entries. A query without terms returns nothing.
func (c *ChannelController) Search(ctx context.Context, raw string) ([]chat.Entry, error) {
	c.mu.Lock()
	channel, viewer := c.channel, c.viewer
	c.mu.Unlock()
	if channel == nil {
		return nil, errors.ErrNoOpenChannel
	}

	query := search.ParseQuery(raw)
	if query.Terms == "" {
		return nil, nil
	}

	ids, err := c.index.Search(ctx, channel.RideID, query.Terms, query.Limit)
	if err != nil {
		return nil, err
	}
	c.monitor.IncrSearchesRun()

	byID := make(map[int64]chat.Message)
	for _, msg := range channel.Messages() {
		byID[msg.ID] = msg
	}

	var entries []chat.Entry
	for _, id := range ids {
		msg, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, chat.Entry{
			Message:        msg,
			Classification: channel.Classify(msg, viewer.ID),
		})
	}
	return entries, nil
}

// Viewer returns the resolved identity of the open session.
func (c *ChannelController) Viewer() domain.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewer
}

// emit pushes the full classified feed to the sink and fires the
// scroll-to-latest directive, in that order, once per mutation.
func (c *ChannelController) emit(ctx context.Context) error {
	c.mu.Lock()
	channel, viewer := c.channel, c.viewer
	c.mu.Unlock()

	frame := contract.RenderFrame{
		Ride:    channel.Ride,
		Viewer:  viewer,
		Entries: projection.Feed(channel, viewer.ID),
	}
	if err := c.sink.Render(ctx, frame); err != nil {
		return err
	}
	c.sink.ScrollToLatest()
	return nil
}
