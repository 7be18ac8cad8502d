package history

import (
	"context"
	"database/sql"
	"encoding/json"

	"tarneeb-server/pkg/db"
	"tarneeb-server/pkg/deck"
	"tarneeb-server/pkg/playable/tarneeb"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const pqDuplicateKeyErrorCode pq.ErrorCode = "23505"

const roundsColumns = `id, table_id, round, trump, bid, bidder, sum_of_declares, lines, created`

// PostgresRecorder stores rounds in the `rounds` table
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder returns a recorder backed by the database handle
func NewPostgresRecorder(dbh *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: dbh}
}

// RecordRound inserts the round
func (p *PostgresRecorder) RecordRound(ctx context.Context, tableID string, scored tarneeb.RoundScored) error {
	lines, err := json.Marshal(scored.Lines)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO rounds (table_id, round, trump, bid, bidder, sum_of_declares, lines)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := p.db.ExecContext(ctx, query, tableID, scored.Round, string(scored.Trump), scored.Bid, scored.Bidder, scored.SumOfDeclares, lines); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == pqDuplicateKeyErrorCode {
			return ErrDuplicateRound
		}

		return err
	}

	logrus.WithFields(logrus.Fields{
		"tableId": tableID,
		"round":   scored.Round,
	}).Debug("recorded round")

	return nil
}

// Rounds returns the most recent rounds first
func (p *PostgresRecorder) Rounds(ctx context.Context, start int64, rows int) ([]*Round, error) {
	const query = `
SELECT ` + roundsColumns + `
FROM rounds
ORDER BY created DESC, id DESC
OFFSET $1
LIMIT $2`

	res, err := p.db.QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	rounds := make([]*Round, 0, rows)
	for res.Next() {
		round, err := roundByRow(res)
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, round)
	}

	return rounds, res.Err()
}

func roundByRow(row db.Scanner) (*Round, error) {
	var r Round
	var trump string
	var lines []byte

	if err := row.Scan(&r.ID, &r.TableID, &r.Round, &trump, &r.Bid, &r.Bidder, &r.SumOfDeclares, &lines, &r.Created); err != nil {
		return nil, err
	}

	r.Trump = deck.Suit(trump)
	if err := json.Unmarshal(lines, &r.Lines); err != nil {
		return nil, err
	}

	return &r, nil
}
