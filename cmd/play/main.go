package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"pokermaster-server/internal/config"
	"pokermaster-server/internal/rng"
	"pokermaster-server/internal/util"
	"pokermaster-server/pkg/bankroll"
	"pokermaster-server/pkg/holdem/dealer"
	"pokermaster-server/pkg/holdem/player"
	"pokermaster-server/pkg/holdem/strategy"
)

var name = flag.String("name", "", "your name, a random one is picked if empty")
var hands = flag.Int("hands", 10, "the number of hands to play")
var opponents = flag.Int("opponents", 1, "the number of house players")
var useBankroll = flag.Bool("bankroll", false, "load and save your cash in the database")

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.Instance().Table
	heroName := *name
	if heroName == "" {
		heroName = util.GetRandomName()
	}

	var hero *player.Player
	var b *bankroll.Bankroll
	var err error
	if *useBankroll {
		if b, err = bankroll.GetOrCreate(ctx, heroName, cfg.StartingCash); err != nil {
			logrus.WithError(err).Fatal("could not load bankroll")
		}

		hero, err = b.Player(logrus.StandardLogger())
	} else {
		hero, err = player.New(logrus.StandardLogger(), heroName, cfg.StartingCash)
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not seat player")
	}

	// without a terminal there is nobody to ask
	var heroStrategy strategy.Strategy = strategy.Passive{}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		heroStrategy = strategy.NewConsole(hero.Name())
	}

	seats := []*dealer.Seat{{Player: hero, Strategy: heroStrategy}}
	for len(seats) < *opponents+1 {
		opponent := util.GetRandomName()
		if opponent == hero.Name() {
			continue
		}

		p, err := player.New(logrus.StandardLogger(), opponent, cfg.StartingCash)
		if err != nil {
			logrus.WithError(err).Fatal("could not seat opponent")
		}

		seats = append(seats, &dealer.Seat{Player: p, Strategy: strategy.Passive{}})
	}

	d, err := dealer.New(logrus.StandardLogger(), seats, rng.Crypto{}, nil, dealer.Options{
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		ShowBoard:  true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not start table")
	}

	pterm.Info.Printfln("%s sits down with $%d", hero.Name(), hero.Cash())
	for i := 0; i < *hands; i++ {
		pterm.DefaultSection.Printfln("Hand %d", i+1)

		result, err := d.PlayHand(ctx)
		if errors.Is(err, dealer.ErrNotEnoughPlayers) {
			pterm.Info.Println("not enough players with cash left")
			break
		} else if err != nil {
			pterm.Error.Println(err.Error())
			break
		}

		printResult(result, d.Seats())

		if b != nil {
			if err := b.Save(ctx, hero); err != nil {
				logrus.WithError(err).Error("could not save bankroll")
			}
		}

		if hero.Cash() == 0 {
			pterm.Warning.Printfln("%s is out of cash", hero.Name())
			break
		}
	}

	pterm.Success.Printfln("%s leaves with $%d", hero.Name(), hero.Cash())
}
