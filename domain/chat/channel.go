package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/errors"
)

// Clock abstracts wall-clock reads so seeding and tests can control time.
type Clock func() time.Time

// Channel is the message log scoped to one ride.
// Driver identity is denormalized from the ride summary so seed and incoming
// messages can be classified without a catalog lookup.
// All mutation is funneled through Append; consumers only ever see copies.
type Channel struct {
	RideID     string
	DriverID   string
	DriverName string
	Ride       domain.RideSummary

	mu       sync.Mutex
	clock    Clock
	lastID   int64
	messages []Message
}

func NewChannel(ride domain.RideSummary, clock Clock) *Channel {
	if clock == nil {
		clock = time.Now
	}
	return &Channel{
		RideID:     ride.ID,
		DriverID:   ride.DriverID,
		DriverName: ride.DriverName,
		Ride:       ride,
		clock:      clock,
	}
}

// Append validates, stamps and stores a new message at the end of the log.
// The id allocation and the append are a single critical section so ids stay
// unique and strictly increasing even with concurrent authors.
// A blank body (after trimming) is rejected with ErrEmptyMessage.
func (c *Channel) Append(senderID, senderName string, role domain.Role, body string) (Message, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return Message{}, errors.ErrEmptyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	msg := Message{
		ID:         c.lastID,
		SenderID:   senderID,
		SenderName: senderName,
		Body:       trimmed,
		CreatedAt:  c.clock(),
		Role:       role,
	}
	c.messages = append(c.messages, msg)
	return msg, nil
}

// Messages returns the log in append order, which is also (CreatedAt, ID)
// ascending. The slice is a copy; the log itself cannot be mutated through it.
func (c *Channel) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// Classify maps a message to exactly one presentation category for a viewer.
// Self wins over driver so a driver viewing their own message sees it as self.
// The message-level role keeps old driver messages classified correctly even
// if the channel's driver changed after authorship.
func (c *Channel) Classify(m Message, viewerID string) Classification {
	switch {
	case m.SenderID == viewerID:
		return ClassSelf
	case m.SenderID == c.DriverID || m.Role == domain.RoleDriver:
		return ClassDriver
	default:
		return ClassOther
	}
}
