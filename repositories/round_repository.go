package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/lib/pq"
)

var (
	ErrRoundNotFound      = errors.New("round not found")
	ErrRoundAlreadyExists = errors.New("round already recorded for this player and day")
	ErrRoundPlayerMissing = errors.New("round references a player that does not exist")
)

type RoundRepository interface {
	Create(ctx context.Context, round *models.Round) error
	GetByID(ctx context.Context, id int) (*models.Round, error)
	ListByDay(ctx context.Context, day models.TournamentDay) ([]models.Round, error)
	ListByPlayer(ctx context.Context, playerID int) ([]models.Round, error)
	ListByPlayerAndDay(ctx context.Context, playerID int, day models.TournamentDay) ([]models.Round, error)
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) Create(ctx context.Context, round *models.Round) error {
	query := `INSERT INTO rounds (player_id, day, hole_scores)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		round.PlayerID, round.Day, pq.Array(round.HoleScores),
	).Scan(&round.ID, &round.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // rounds_player_id_day_key
				return ErrRoundAlreadyExists
			case "23503":
				return ErrRoundPlayerMissing
			}
		}
		return err
	}
	return nil
}

func (r *postgresRoundRepository) GetByID(ctx context.Context, id int) (*models.Round, error) {
	query := `SELECT r.id, r.player_id, r.day, r.hole_scores, r.created_at,
	                 p.id, p.first_name, p.last_name, p.division, p.handicap, p.created_at
	          FROM rounds r
	          JOIN players p ON p.id = r.player_id
	          WHERE r.id = $1`

	round, err := scanRound(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return round, nil
}

// ListByDay includes rounds submitted for DayAll, which count for every day.
func (r *postgresRoundRepository) ListByDay(ctx context.Context, day models.TournamentDay) ([]models.Round, error) {
	query := `SELECT r.id, r.player_id, r.day, r.hole_scores, r.created_at,
	                 p.id, p.first_name, p.last_name, p.division, p.handicap, p.created_at
	          FROM rounds r
	          JOIN players p ON p.id = r.player_id
	          WHERE r.day = $1 OR r.day = 'ALL'
	          ORDER BY r.created_at ASC`

	return r.queryRounds(ctx, query, day)
}

func (r *postgresRoundRepository) ListByPlayer(ctx context.Context, playerID int) ([]models.Round, error) {
	query := `SELECT r.id, r.player_id, r.day, r.hole_scores, r.created_at,
	                 p.id, p.first_name, p.last_name, p.division, p.handicap, p.created_at
	          FROM rounds r
	          JOIN players p ON p.id = r.player_id
	          WHERE r.player_id = $1
	          ORDER BY r.created_at ASC`

	return r.queryRounds(ctx, query, playerID)
}

func (r *postgresRoundRepository) ListByPlayerAndDay(ctx context.Context, playerID int, day models.TournamentDay) ([]models.Round, error) {
	query := `SELECT r.id, r.player_id, r.day, r.hole_scores, r.created_at,
	                 p.id, p.first_name, p.last_name, p.division, p.handicap, p.created_at
	          FROM rounds r
	          JOIN players p ON p.id = r.player_id
	          WHERE r.player_id = $1 AND (r.day = $2 OR r.day = 'ALL')
	          ORDER BY r.created_at ASC`

	return r.queryRounds(ctx, query, playerID, day)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRound(row rowScanner) (*models.Round, error) {
	var round models.Round
	var player models.Player
	var scores pq.Int64Array

	err := row.Scan(
		&round.ID, &round.PlayerID, &round.Day, &scores, &round.CreatedAt,
		&player.ID, &player.FirstName, &player.LastName,
		&player.Division, &player.Handicap, &player.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	round.HoleScores = make([]int, len(scores))
	for i, s := range scores {
		round.HoleScores[i] = int(s)
	}
	round.Player = &player
	return &round, nil
}

func (r *postgresRoundRepository) queryRounds(ctx context.Context, query string, args ...interface{}) ([]models.Round, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := make([]models.Round, 0)
	for rows.Next() {
		round, scanErr := scanRound(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		rounds = append(rounds, *round)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}
