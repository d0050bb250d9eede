//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/domain/chat"
)

// RenderFrame is what the controller emits to the rendering surface after
// every log mutation: the full ordered feed, already classified for the viewer.
type RenderFrame struct {
	Ride    domain.RideSummary
	Viewer  domain.Identity
	Entries []chat.Entry
}

// RenderSink is the outbound boundary of the chat core.
// ScrollToLatest is a directive, not a query: the surface must bring the
// newest entry into view every time it fires.
type RenderSink interface {
	Render(ctx context.Context, frame RenderFrame) error
	ScrollToLatest()
}
