package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/domain/chat"
	"github.com/joaogpereira/UniDrive/repositories"
)

// Seed history offsets, oldest first. All strictly before "now".
var seedOffsets = []time.Duration{-60 * time.Minute, -50 * time.Minute, -40 * time.Minute}

// The interested passenger of the synthetic opening conversation.
const (
	seedPassengerID   = "user-456"
	seedPassengerName = "Ana Paula"
)

// ChannelLoader materializes one channel per ride for the current session.
// Load is idempotent: repeated opens of the same ride return the same
// channel instance and never duplicate the seed history.
type ChannelLoader struct {
	mu       sync.Mutex
	catalog  repositories.IRideCatalog
	log      *slog.Logger
	clock    chat.Clock
	channels map[string]*chat.Channel
}

func NewChannelLoader(catalog repositories.IRideCatalog, log *slog.Logger) *ChannelLoader {
	return &ChannelLoader{
		catalog:  catalog,
		log:      log,
		clock:    time.Now,
		channels: make(map[string]*chat.Channel),
	}
}

// WithClock replaces the wall clock, for tests.
func (l *ChannelLoader) WithClock(clock chat.Clock) *ChannelLoader {
	l.clock = clock
	return l
}

// Load resolves the ride and returns its channel, seeding it on first open.
// Unknown rides fail with ErrRideNotFound and leave no channel behind.
func (l *ChannelLoader) Load(rideID string) (*chat.Channel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if channel, ok := l.channels[rideID]; ok {
		return channel, nil
	}

	ride, err := l.catalog.FindRide(rideID)
	if err != nil {
		return nil, err
	}

	channel := chat.NewChannel(ride, seedClock(l.clock))
	if err := seed(channel, ride); err != nil {
		return nil, err
	}

	l.channels[rideID] = channel
	l.log.Info("Channel materialized",
		"ride", rideID, "driver", ride.DriverName, "seeds", channel.Len())
	return channel, nil
}

// seedClock serves the fixed past offsets for the seed appends, then falls
// back to the real clock for everything after.
func seedClock(clock chat.Clock) chat.Clock {
	base := clock()
	var calls int
	return func() time.Time {
		if calls < len(seedOffsets) {
			at := base.Add(seedOffsets[calls])
			calls++
			return at
		}
		return clock()
	}
}

// seed writes the fixed synthetic opening conversation: the driver offering
// the ride, an interested passenger, and the driver's departure details
// templated from the ride metadata.
func seed(channel *chat.Channel, ride domain.RideSummary) error {
	lines := []struct {
		senderID   string
		senderName string
		role       domain.Role
		body       string
	}{
		{ride.DriverID, ride.DriverName, domain.RoleDriver,
			"Olá! Estou oferecendo carona. Alguém interessado?"},
		{seedPassengerID, seedPassengerName, domain.RolePassenger,
			"Oi! Estou interessada. Qual é o horário exato da saída?"},
		{ride.DriverID, ride.DriverName, domain.RoleDriver,
			fmt.Sprintf("Saio às %s em ponto. Ainda tenho %d lugares disponíveis.", ride.Time, ride.SeatCount)},
	}

	for _, line := range lines {
		if _, err := channel.Append(line.senderID, line.senderName, line.role, line.body); err != nil {
			return fmt.Errorf("seeding channel %s: %w", ride.ID, err)
		}
	}
	return nil
}
