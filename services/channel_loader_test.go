package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/domain/chat"
	"github.com/joaogpereira/UniDrive/errors"
	"github.com/joaogpereira/UniDrive/repositories"
)

func newLoader() *ChannelLoader {
	return NewChannelLoader(repositories.NewRideCatalog(), logs.GetLoggerFromLevel(slog.LevelError))
}

func TestChannelLoader_SeedsThreeMessages(t *testing.T) {
	req := require.New(t)
	now := time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC)
	loader := newLoader().WithClock(func() time.Time { return now })

	channel, err := loader.Load("1")
	req.NoError(err)
	req.Equal("driver-1", channel.DriverID)
	req.Equal("Carlos Silva", channel.DriverName)

	messages := channel.Messages()
	req.Len(messages, 3)

	// Fixed offsets, strictly increasing, all before "now"
	req.Equal(now.Add(-60*time.Minute), messages[0].CreatedAt)
	req.Equal(now.Add(-50*time.Minute), messages[1].CreatedAt)
	req.Equal(now.Add(-40*time.Minute), messages[2].CreatedAt)

	req.Equal(domain.RoleDriver, messages[0].Role)
	req.Equal("Ana Paula", messages[1].SenderName)
	req.Equal(domain.RoleDriver, messages[2].Role)
	req.Contains(messages[2].Body, "14:30")
	req.Contains(messages[2].Body, "3 lugares")

	for i, msg := range messages {
		req.Equal(int64(i+1), msg.ID)
	}
}

func TestChannelLoader_LoadIsIdempotent(t *testing.T) {
	req := require.New(t)
	loader := newLoader()

	first, err := loader.Load("1")
	req.NoError(err)
	second, err := loader.Load("1")
	req.NoError(err)

	req.Same(first, second)
	req.Equal(3, second.Len())

	firstIDs := messageIDs(first)
	req.Equal(firstIDs, messageIDs(second))
}

func TestChannelLoader_UnknownRide(t *testing.T) {
	req := require.New(t)
	loader := newLoader()

	channel, err := loader.Load("999")
	req.ErrorIs(err, errors.ErrRideNotFound)
	req.Nil(channel)

	// A failed load must not leave a half-built channel behind
	channel, err = loader.Load("999")
	req.ErrorIs(err, errors.ErrRideNotFound)
	req.Nil(channel)
}

func TestChannelLoader_AppendAfterSeedUsesWallClock(t *testing.T) {
	req := require.New(t)
	now := time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC)
	loader := newLoader().WithClock(func() time.Time { return now })

	channel, err := loader.Load("1")
	req.NoError(err)

	msg, err := channel.Append("user-123", "Test User", domain.RolePassenger, "Posso ir também?")
	req.NoError(err)
	req.Equal(now, msg.CreatedAt)
	req.Equal(int64(4), msg.ID)
}

func messageIDs(channel *chat.Channel) []int64 {
	messages := channel.Messages()
	ids := make([]int64, len(messages))
	for i, m := range messages {
		ids[i] = m.ID
	}
	return ids
}
