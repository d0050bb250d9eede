package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/internal"
	"github.com/joaogpereira/UniDrive/moderation"
	"github.com/joaogpereira/UniDrive/observability"
	"github.com/joaogpereira/UniDrive/repositories"
	"github.com/joaogpereira/UniDrive/runtime"
	"github.com/joaogpereira/UniDrive/search"
	"github.com/joaogpereira/UniDrive/services"
	"github.com/joaogpereira/UniDrive/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the session lifecycle. The
// pattern keeps every defer on the exit path and leaves main free of logic.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation, search and monitoring
	mask, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}
	wordlist, err := moderation.LoadWordlist()
	if err != nil {
		return fmt.Errorf("wordlist loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(wordlist.Words, mask, log)
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}
	index, err := search.NewMessageIndex(log)
	if err != nil {
		return fmt.Errorf("search index setup failed: %w", err)
	}
	defer func() {
		_ = index.Close()
	}()
	monitor := observability.NewMonitor(log)

	// 4. Services & Controller
	users := repositories.NewUserRepository(db)
	authService := services.NewAuthService(users, config.AuthTokenDuration)
	catalog := repositories.NewRideCatalog()
	loader := services.NewChannelLoader(catalog, log)
	terminal := sink.NewTerminalSink(os.Stdout, config.Colours)
	controller := runtime.NewChannelController(log, loader, &moderator, index, monitor, terminal)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Debug surface
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, monitor.StatsMap)
	log.Info("Inspector started", "port", config.DebugPort, "endpoint", "/inspect")

	// 7. Interactive session
	reader := bufio.NewReader(os.Stdin)

	identity, err := authenticate(reader, authService)
	if err != nil {
		return err
	}
	fmt.Printf("Bem-vindo(a), %s!\n\n", identity.DisplayName)

	printRides(catalog, config.Region)

	rideID, err := prompt(reader, "Ride id")
	if err != nil {
		return err
	}
	if err := controller.Open(ctx, rideID, &identity); err != nil {
		return err
	}

	if err := repl(ctx, reader, controller); err != nil {
		return err
	}

	// 8. Final report
	stats := monitor.Snapshot()
	log.Info("Session finished",
		"messages_sent", stats.MessagesSent,
		"searches_run", stats.SearchesRun,
		"censored", stats.CensoredMessages)
	return nil
}

// authenticate walks the user through login or registration on stdin.
func authenticate(reader *bufio.Reader, auth services.IAuthService) (domain.Identity, error) {
	choice, err := prompt(reader, "login or register")
	if err != nil {
		return domain.Identity{}, err
	}

	email, err := prompt(reader, "Email")
	if err != nil {
		return domain.Identity{}, err
	}
	password, err := prompt(reader, "Password")
	if err != nil {
		return domain.Identity{}, err
	}

	if strings.EqualFold(choice, "register") {
		name, err := prompt(reader, "Name")
		if err != nil {
			return domain.Identity{}, err
		}
		roleStr, err := prompt(reader, "Role (driver/passenger)")
		if err != nil {
			return domain.Identity{}, err
		}
		_, identity, err := auth.Register(name, email, password, domain.Role(roleStr))
		return identity, err
	}

	_, identity, err := auth.Login(email, password)
	return identity, err
}

// repl reads lines until EOF or interrupt. Lines starting with /find run a
// search over the open channel; /quit leaves; everything else is sent as a
// message.
func repl(ctx context.Context, reader *bufio.Reader, controller *runtime.ChannelController) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF ends the session cleanly.
			return nil
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case strings.TrimSpace(line) == "/quit":
			return nil
		case strings.HasPrefix(strings.TrimSpace(line), "/find"):
			entries, err := controller.Search(ctx, line)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Nenhuma mensagem encontrada.")
				continue
			}
			for _, entry := range entries {
				fmt.Printf("  #%d [%s] %s: %s\n",
					entry.Message.ID,
					entry.Message.CreatedAt.Format("15:04"),
					entry.Message.SenderName,
					entry.Message.Body)
			}
		default:
			if err := controller.Send(ctx, line); err != nil {
				return err
			}
		}
	}
}

// printRides lists the region's rides the same way the inspector tool lists
// stored rows.
func printRides(catalog repositories.IRideCatalog, regionSlug string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "From", "To", "Date", "Time", "Driver", "Seats", "Price"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, ride := range catalog.ListRegion(regionSlug) {
		table.Append([]string{
			ride.ID,
			ride.From,
			ride.To,
			ride.Date,
			ride.Time,
			ride.DriverName,
			fmt.Sprintf("%d", ride.SeatCount),
			fmt.Sprintf("R$ %.2f", ride.Price),
		})
	}
	table.Render()
	fmt.Println()
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
