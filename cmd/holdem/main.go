package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"

	"holdemsim/internal/config"
	"holdemsim/internal/rng"
	"holdemsim/internal/util"
	"holdemsim/pkg/holdem"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var name = flag.String("name", "You", "your name at the table")
var bots = flag.Int("bots", 0, "number of bot opponents (0 uses the configured default)")
var seed = flag.Int64("seed", 0, "seed for a reproducible deck (0 uses a secure source)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	botCount := cfg.Bots
	if *bots > 0 {
		botCount = *bots
	}

	generator := newGenerator(cfg)

	seats := make([]holdem.Seat, 0, botCount+1)
	seats = append(seats, holdem.Seat{Name: *name, Provider: &consoleProvider{}})
	for i := 0; i < botCount; i++ {
		botName := util.GetRandomBotName()
		seats = append(seats, holdem.Seat{
			Name:     botName,
			Provider: newChattyProvider(botName, holdem.NewBotProvider(generator), generator),
		})
	}

	table, err := holdem.NewTable(logrus.StandardLogger(), holdem.Options{
		StartingChips: cfg.StartingChips,
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
	}, generator, seats)
	if err != nil {
		logrus.WithError(err).Fatal("could not seat the table")
	}

	renderTitle()
	run(table)
}

func run(table *holdem.Table) {
	for {
		result, err := table.PlayHand()
		if err != nil {
			if errors.Is(err, holdem.ErrNotEnoughParticipants) {
				break
			}

			logrus.WithError(err).Fatal("hand failed")
		}

		renderResult(table, result)

		if len(table.PlayersWithChips()) < 2 {
			break
		}

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another hand?").
			WithDefaultValue(true).
			Show()
		if !again {
			break
		}
	}

	remaining := table.PlayersWithChips()
	if len(remaining) == 1 {
		pterm.Success.Printfln("%s takes the table after %d hands", remaining[0].Name, len(table.History()))
	} else {
		pterm.Println("Thanks for playing")
	}
}

// newGenerator picks the deck's randomness source. A non-zero seed, from the
// flag or the config, makes every shuffle reproducible.
func newGenerator(cfg config.Config) rng.Generator {
	s := cfg.Seed
	if *seed != 0 {
		s = *seed
	}

	if s != 0 {
		return rng.NewSeeded(s)
	}

	return rng.Crypto{}
}

func renderTitle() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Hold", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("'em", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	pterm.Println()
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
