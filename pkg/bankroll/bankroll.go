// Package bankroll persists a player's cash between sessions
package bankroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"pokermaster-server/pkg/db"
	"pokermaster-server/pkg/holdem/player"
)

const columns = `
bankrolls.uuid,
bankrolls.name,
bankrolls.cash,
bankrolls.created,
bankrolls.updated`

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

// ErrDuplicateName is returned when a bankroll already exists for the name
var ErrDuplicateName = errors.New("a bankroll already exists for that name")

// ErrNotFound is returned when no bankroll exists for the name
var ErrNotFound = errors.New("bankroll not found")

// ErrNameMismatch is returned when saving a player into another player's bankroll
var ErrNameMismatch = errors.New("player does not own this bankroll")

// Bankroll is a record in the `bankrolls` table
type Bankroll struct {
	UUID    uuid.UUID `json:"uuid"`
	Name    string    `json:"name"`
	Cash    int       `json:"cash"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

func getBankrollByRow(row db.Scanner) (*Bankroll, error) {
	var b Bankroll
	if err := row.Scan(&b.UUID, &b.Name, &b.Cash, &b.Created, &b.Updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &b, nil
}

// Create creates a new bankroll
func Create(ctx context.Context, name string, cash int) (*Bankroll, error) {
	if name == "" {
		return nil, player.ErrEmptyName
	}

	if cash < 0 {
		return nil, player.ErrNegativeCash
	}

	const query = `
INSERT INTO bankrolls (uuid, name, cash)
VALUES ($1, $2, $3)
RETURNING ` + columns

	row := db.Instance().QueryRowContext(ctx, query, uuid.New(), name, cash)
	b, err := getBankrollByRow(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqDuplicateKeyErrorCode {
			return nil, ErrDuplicateName
		}

		return nil, err
	}

	return b, nil
}

// GetByName returns the bankroll for the name, case-insensitive
func GetByName(ctx context.Context, name string) (*Bankroll, error) {
	const query = `
SELECT ` + columns + `
FROM bankrolls
WHERE LOWER(name) = LOWER($1)`

	return getBankrollByRow(db.Instance().QueryRowContext(ctx, query, name))
}

// GetOrCreate returns the bankroll for the name, creating it with startingCash if it does not exist
func GetOrCreate(ctx context.Context, name string, startingCash int) (*Bankroll, error) {
	b, err := GetByName(ctx, name)
	if err == nil {
		return b, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	b, err = Create(ctx, name, startingCash)
	if errors.Is(err, ErrDuplicateName) {
		// lost a race with another session
		return GetByName(ctx, name)
	}

	return b, err
}

// Player returns a fresh player seated with the bankroll's cash
func (b *Bankroll) Player(logger logrus.FieldLogger) (*player.Player, error) {
	return player.New(logger, b.Name, b.Cash)
}

// Save persists the player's current cash into the bankroll
func (b *Bankroll) Save(ctx context.Context, p *player.Player) error {
	if p.Name() != b.Name {
		return fmt.Errorf("%w: %s into %s", ErrNameMismatch, p.Name(), b.Name)
	}

	const query = `
UPDATE bankrolls
SET cash = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE uuid = $2
RETURNING updated`

	var updated time.Time
	if err := db.Instance().QueryRowContext(ctx, query, p.Cash(), b.UUID).Scan(&updated); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}

		return err
	}

	b.Cash = p.Cash()
	b.Updated = updated
	return nil
}
