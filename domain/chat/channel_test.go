package chat

import (
	"testing"
	"time"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/errors"
	"github.com/stretchr/testify/require"
)

func testRide() domain.RideSummary {
	return domain.RideSummary{
		ID:         "1",
		From:       "UnB",
		To:         "Shopping Conjunto Nacional",
		Time:       "14:30",
		DriverID:   "driver-1",
		DriverName: "Carlos Silva",
		SeatCount:  3,
	}
}

func TestChannel_Append_AssignsStrictlyIncreasingIDs(t *testing.T) {
	req := require.New(t)
	channel := NewChannel(testRide(), nil)

	var lastID int64
	for i := 0; i < 10; i++ {
		msg, err := channel.Append("user-123", "Test User", domain.RolePassenger, "oi")
		req.NoError(err)
		req.Greater(msg.ID, lastID)
		lastID = msg.ID
	}
	req.Equal(10, channel.Len())
}

func TestChannel_Append_RejectsBlankBody(t *testing.T) {
	req := require.New(t)
	channel := NewChannel(testRide(), nil)

	for _, body := range []string{"", "   ", "\n\t "} {
		_, err := channel.Append("user-123", "Test User", domain.RolePassenger, body)
		req.ErrorIs(err, errors.ErrEmptyMessage)
	}
	req.Equal(0, channel.Len())
}

func TestChannel_Append_TrimsBodyAndStampsClock(t *testing.T) {
	req := require.New(t)
	at := time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC)
	channel := NewChannel(testRide(), func() time.Time { return at })

	msg, err := channel.Append("user-123", "Test User", domain.RolePassenger, "  oi  ")
	req.NoError(err)
	req.Equal("oi", msg.Body)
	req.Equal(at, msg.CreatedAt)
}

func TestChannel_Messages_KeepsChronologicalOrder(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()
	var tick int
	channel := NewChannel(testRide(), func() time.Time {
		tick++
		return now.Add(time.Duration(tick) * time.Second)
	})

	for _, body := range []string{"primeira", "segunda", "terceira"} {
		_, err := channel.Append("user-123", "Test User", domain.RolePassenger, body)
		req.NoError(err)
	}

	messages := channel.Messages()
	req.Len(messages, 3)
	for i := 1; i < len(messages); i++ {
		req.True(messages[i-1].CreatedAt.Before(messages[i].CreatedAt))
		req.Less(messages[i-1].ID, messages[i].ID)
	}
}

func TestChannel_Messages_ReturnsACopy(t *testing.T) {
	req := require.New(t)
	channel := NewChannel(testRide(), nil)
	_, err := channel.Append("user-123", "Test User", domain.RolePassenger, "oi")
	req.NoError(err)

	leaked := channel.Messages()
	leaked[0].Body = "tampered"
	req.Equal("oi", channel.Messages()[0].Body)
}

func TestChannel_Classify_IsTotalAndMutuallyExclusive(t *testing.T) {
	req := require.New(t)
	channel := NewChannel(testRide(), nil)

	tests := []struct {
		name     string
		message  Message
		viewerID string
		expected Classification
	}{
		{
			name:     "own message is self even for the driver",
			message:  Message{SenderID: "driver-1", Role: domain.RoleDriver},
			viewerID: "driver-1",
			expected: ClassSelf,
		},
		{
			name:     "channel driver seen by a passenger",
			message:  Message{SenderID: "driver-1", Role: domain.RoleDriver},
			viewerID: "user-123",
			expected: ClassDriver,
		},
		{
			name:     "driver role wins even with a foreign sender id",
			message:  Message{SenderID: "driver-99", Role: domain.RoleDriver},
			viewerID: "user-123",
			expected: ClassDriver,
		},
		{
			name:     "another passenger",
			message:  Message{SenderID: "user-456", Role: domain.RolePassenger},
			viewerID: "user-123",
			expected: ClassOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, channel.Classify(tt.message, tt.viewerID))
		})
	}
}

func TestChannel_Classify_SelfForAuthorOtherForEveryoneElse(t *testing.T) {
	req := require.New(t)
	channel := NewChannel(testRide(), nil)

	msg, err := channel.Append("user-123", "Test User", domain.RolePassenger, "Oi, qual o horário?")
	req.NoError(err)

	req.Equal(ClassSelf, channel.Classify(msg, "user-123"))
	req.Equal(ClassOther, channel.Classify(msg, "user-456"))
	req.Equal(ClassOther, channel.Classify(msg, "user-789"))
}
