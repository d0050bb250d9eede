package e2e

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"github.com/joaogpereira/UniDrive/moderation"
	"github.com/joaogpereira/UniDrive/observability"
	"github.com/joaogpereira/UniDrive/repositories"
	"github.com/joaogpereira/UniDrive/search"
	"github.com/joaogpereira/UniDrive/services"
)

// BaseSuite assembles a full application stack on a throwaway badger store.
// Scenarios drive the controller exactly as the CLI would.
type BaseSuite struct {
	suite.Suite
	Config Config

	DB      *badger.DB
	Log     *slog.Logger
	Auth    services.IAuthService
	Loader  *services.ChannelLoader
	Mod     moderation.Moderator
	Index   *search.MessageIndex
	Monitor *observability.Monitor
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// SetupTest rebuilds the whole stack so scenarios never share state.
func (s *BaseSuite) SetupTest() {
	s.Log = logs.GetLoggerFromLevel(slog.LevelWarn)

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	s.Require().NoError(err)
	s.DB = db

	s.Auth = services.NewAuthService(repositories.NewUserRepository(db), time.Hour)
	s.Loader = services.NewChannelLoader(repositories.NewRideCatalog(), s.Log)

	wordlist, err := moderation.LoadWordlist()
	s.Require().NoError(err)
	s.Mod, err = moderation.NewModerator(wordlist.Words, '*', s.Log)
	s.Require().NoError(err)

	s.Index, err = search.NewMessageIndex(s.Log)
	s.Require().NoError(err)
	s.Monitor = observability.NewMonitor(s.Log)
}

func (s *BaseSuite) TearDownTest() {
	if s.Index != nil {
		_ = s.Index.Close()
	}
	if s.DB != nil {
		_ = s.DB.Close()
	}
}

// Step prints a colorized scenario header in the test log.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}
