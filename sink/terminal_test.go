package sink

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joaogpereira/UniDrive/contract"
	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/domain/chat"
)

func TestTerminalSink_RenderPlain(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, false)

	at := time.Date(2023, 5, 20, 13, 30, 0, 0, time.UTC)
	frame := contract.RenderFrame{
		Ride: domain.RideSummary{
			From: "UnB", To: "Shopping Conjunto Nacional",
			Date: "2023-05-20", Time: "14:30", DriverName: "Carlos Silva",
		},
		Viewer: domain.Identity{ID: "user-123", DisplayName: "Test User"},
		Entries: []chat.Entry{
			{
				Message:        chat.Message{ID: 1, SenderID: "driver-1", SenderName: "Carlos Silva", Body: "Olá!", CreatedAt: at},
				Classification: chat.ClassDriver,
			},
			{
				Message:        chat.Message{ID: 2, SenderID: "user-123", SenderName: "Test User", Body: "Oi!", CreatedAt: at.Add(time.Minute)},
				Classification: chat.ClassSelf,
			},
		},
	}

	req.NoError(sink.Render(context.Background(), frame))
	out := buf.String()

	req.Contains(out, "UnB → Shopping Conjunto Nacional")
	req.Contains(out, "[13:30] Carlos Silva: Olá!")
	req.Contains(out, "[13:31] Você: Oi!")
	req.NotContains(out, "\x1b[", "colours disabled must emit no escape codes")
}

func TestTerminalSink_CountsScrollDirectives(t *testing.T) {
	req := require.New(t)
	sink := NewTerminalSink(&bytes.Buffer{}, false)

	req.Zero(sink.Scrolls())
	sink.ScrollToLatest()
	sink.ScrollToLatest()
	req.Equal(2, sink.Scrolls())
}
