// Package sink provides rendering surfaces for the chat controller.
package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"github.com/joaogpereira/UniDrive/contract"
	"github.com/joaogpereira/UniDrive/domain/chat"
)

// TerminalSink renders the classified feed as styled text lines:
// own messages green, driver messages yellow, everyone else plain.
// A terminal always shows the tail of its output, so the scroll-to-latest
// directive is satisfied by construction; it is still counted for tests.
type TerminalSink struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
	scrolls int
}

func NewTerminalSink(out io.Writer, colours bool) *TerminalSink {
	return &TerminalSink{out: out, colours: colours}
}

func (s *TerminalSink) Render(_ context.Context, frame contract.RenderFrame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ride := frame.Ride
	header := fmt.Sprintf("%s → %s | %s às %s | %s",
		ride.From, ride.To, ride.Date, ride.Time, ride.DriverName)
	if _, err := fmt.Fprintf(s.out, "\n%s\n", s.styled(header, color.FgCyan)); err != nil {
		return err
	}

	for _, entry := range frame.Entries {
		line := fmt.Sprintf("[%s] %s: %s",
			entry.Message.CreatedAt.Format("15:04"),
			s.senderLabel(entry),
			entry.Message.Body)

		switch entry.Classification {
		case chat.ClassSelf:
			line = s.styled(line, color.FgGreen)
		case chat.ClassDriver:
			line = s.styled(line, color.FgYellow)
		}
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (s *TerminalSink) ScrollToLatest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrolls++
}

// Scrolls reports how many scroll directives were received.
func (s *TerminalSink) Scrolls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrolls
}

func (s *TerminalSink) senderLabel(entry chat.Entry) string {
	if entry.Classification == chat.ClassSelf {
		return "Você"
	}
	return entry.Message.SenderName
}

func (s *TerminalSink) styled(text string, fg color.Color) string {
	if !s.colours {
		return text
	}
	return color.New(fg).Render(text)
}
