package main

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"pokermaster-server/internal/config"
	"pokermaster-server/internal/rng"
	"pokermaster-server/internal/util"
	"pokermaster-server/pkg/holdem/dealer"
	"pokermaster-server/pkg/holdem/player"
	"pokermaster-server/pkg/holdem/strategy"
	"pokermaster-server/pkg/spectator"
)

// runHouseTable plays hands between house players until ctx is done
// Busted players are topped back up to the starting cash.
func runHouseTable(ctx context.Context, feed *spectator.Feed, count int, interval time.Duration) {
	logger := logrus.WithField("table", "house")
	cfg := config.Instance().Table

	if count < 2 {
		count = 2
	}

	names := make(map[string]bool)
	seats := make([]*dealer.Seat, 0, count)
	for len(seats) < count {
		name := util.GetRandomName()
		if names[name] {
			continue
		}
		names[name] = true

		p, err := player.New(logger, name, cfg.StartingCash)
		if err != nil {
			logger.WithError(err).Error("could not seat house player")
			return
		}

		seats = append(seats, &dealer.Seat{Player: p, Strategy: strategy.Passive{}})
	}

	d, err := dealer.New(logger, seats, rng.Crypto{}, feed, dealer.Options{
		SmallBlind: cfg.SmallBlind,
		BigBlind:   cfg.BigBlind,
		ShowBoard:  true,
	})
	if err != nil {
		logger.WithError(err).Error("could not start house table")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if _, err := d.PlayHand(ctx); err != nil {
			if !errors.Is(err, dealer.ErrNotEnoughPlayers) {
				logger.WithError(err).Error("hand failed")
				continue
			}
		}

		for _, s := range d.Seats() {
			if s.Player.Cash() == 0 {
				logger.WithField("player", s.Player.Name()).Info("rebuy")
				_ = s.Player.Win(cfg.StartingCash)
				feed.Publish(s.Player)
			}
		}
	}
}
