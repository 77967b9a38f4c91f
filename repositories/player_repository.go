package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameConflict = errors.New("player name conflict")
	ErrPlayerHasRounds    = errors.New("player cannot be deleted while rounds exist")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	GetByDivision(ctx context.Context, division models.Division) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `INSERT INTO players (first_name, last_name, division, handicap)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.FirstName, player.LastName, player.Division, player.Handicap,
	).Scan(&player.ID, &player.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "players_full_name_key" {
				return ErrPlayerNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT id, first_name, last_name, division, handicap, created_at, photo_key
	          FROM players WHERE id = $1`

	var player models.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID, &player.FirstName, &player.LastName,
		&player.Division, &player.Handicap, &player.CreatedAt, &player.PhotoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `SELECT id, first_name, last_name, division, handicap, created_at, photo_key
	          FROM players ORDER BY division ASC, last_name ASC, first_name ASC`

	return r.queryPlayers(ctx, query)
}

func (r *postgresPlayerRepository) GetByDivision(ctx context.Context, division models.Division) ([]models.Player, error) {
	query := `SELECT id, first_name, last_name, division, handicap, created_at, photo_key
	          FROM players WHERE division = $1 ORDER BY last_name ASC, first_name ASC`

	return r.queryPlayers(ctx, query, division)
}

func (r *postgresPlayerRepository) queryPlayers(ctx context.Context, query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(
			&player.ID, &player.FirstName, &player.LastName,
			&player.Division, &player.Handicap, &player.CreatedAt, &player.PhotoKey,
		); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET first_name = $1, last_name = $2, division = $3, handicap = $4
	          WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		player.FirstName, player.LastName, player.Division, player.Handicap, player.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			if pqErr.Constraint == "players_full_name_key" {
				return ErrPlayerNameConflict
			}
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error {
	query := `UPDATE players SET photo_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, photoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM players WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		// rounds and calcutta memberships reference players with ON DELETE RESTRICT
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrPlayerHasRounds
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}
