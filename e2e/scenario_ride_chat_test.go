package e2e

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/runtime"
	"github.com/joaogpereira/UniDrive/sink"
)

type RideChatSuite struct {
	BaseSuite
}

func TestRideChatSuite(t *testing.T) {
	suite.Run(t, new(RideChatSuite))
}

// The full passenger journey: sign up, log in, open the ride channel, chat
// with the seeded history and find a message back.
func (s *RideChatSuite) TestPassengerJourney() {
	ctx := context.Background()
	req := s.Require()

	s.Step("Register & Login")
	_, _, err := s.Auth.Register("Julia Castro", "julia@unb.br", "segredo123", domain.RolePassenger)
	req.NoError(err)
	_, viewer, err := s.Auth.Login("julia@unb.br", "segredo123")
	req.NoError(err)

	s.Step("Open channel")
	var out bytes.Buffer
	terminal := sink.NewTerminalSink(&out, s.Config.Colours)
	controller := runtime.NewChannelController(s.Log, s.Loader, &s.Mod, s.Index, s.Monitor, terminal)
	req.NoError(controller.Open(ctx, s.Config.RideID, &viewer))
	req.Equal(1, terminal.Scrolls())
	if s.Config.DebugFrames {
		s.T().Log(out.String())
	}

	s.Step("Send message")
	req.NoError(controller.Send(ctx, "Posso levar uma mala grande?"))
	req.Equal(2, terminal.Scrolls())
	req.Contains(out.String(), "Posso levar uma mala grande?")

	s.Step("Blank send is ignored")
	req.NoError(controller.Send(ctx, "   "))
	req.Equal(2, terminal.Scrolls())

	s.Step("Search")
	entries, err := controller.Search(ctx, "/find mala")
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal("Posso levar uma mala grande?", entries[0].Message.Body)

	stats := s.Monitor.Snapshot()
	req.Equal(uint64(1), stats.BlankSendsIgnored)
	req.Equal(uint64(1), stats.MessagesSent)
}

// A second open of the same ride must reuse the channel and keep history.
func (s *RideChatSuite) TestReopenKeepsHistory() {
	ctx := context.Background()
	req := s.Require()

	_, _, err := s.Auth.Register("Rafael Dias", "rafael@unb.br", "segredo123", domain.RolePassenger)
	req.NoError(err)
	_, viewer, err := s.Auth.Login("rafael@unb.br", "segredo123")
	req.NoError(err)

	var out bytes.Buffer
	terminal := sink.NewTerminalSink(&out, false)
	controller := runtime.NewChannelController(s.Log, s.Loader, &s.Mod, s.Index, s.Monitor, terminal)

	req.NoError(controller.Open(ctx, s.Config.RideID, &viewer))
	req.NoError(controller.Send(ctx, "Guarda um lugar pra mim?"))

	out.Reset()
	req.NoError(controller.Open(ctx, s.Config.RideID, &viewer))
	req.Contains(out.String(), "Guarda um lugar pra mim?")
	req.Contains(out.String(), "Olá! Estou oferecendo carona.")
}
