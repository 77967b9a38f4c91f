package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound       = errors.New("calcutta team not found")
	ErrTeamNameConflict   = errors.New("calcutta team name conflict")
	ErrTeamMemberConflict = errors.New("player is already on a calcutta team")
	ErrTeamMemberMissing  = errors.New("calcutta team references a player that does not exist")
)

type CalcuttaRepository interface {
	CreateTeam(ctx context.Context, team *models.CalcuttaTeam, playerIDs []int) error
	GetTeamByID(ctx context.Context, id int) (*models.CalcuttaTeam, error)
	GetAllTeams(ctx context.Context) ([]models.CalcuttaTeam, error)
	DeleteTeam(ctx context.Context, id int) error
}

type postgresCalcuttaRepository struct {
	db *sql.DB
}

func NewPostgresCalcuttaRepository(db *sql.DB) CalcuttaRepository {
	return &postgresCalcuttaRepository{db: db}
}

// CreateTeam inserts the team and its memberships in one transaction.
func (r *postgresCalcuttaRepository) CreateTeam(ctx context.Context, team *models.CalcuttaTeam, playerIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO calcutta_teams (name) VALUES ($1) RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query, team.Name).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrTeamNameConflict
		}
		return err
	}

	memberQuery := `INSERT INTO calcutta_team_members (team_id, player_id) VALUES ($1, $2)`
	for _, playerID := range playerIDs {
		if _, err = tx.ExecContext(ctx, memberQuery, team.ID, playerID); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				switch pqErr.Code {
				case "23505": // calcutta_team_members_player_id_key
					return ErrTeamMemberConflict
				case "23503":
					return ErrTeamMemberMissing
				}
			}
			return err
		}
	}

	return tx.Commit()
}

func (r *postgresCalcuttaRepository) GetTeamByID(ctx context.Context, id int) (*models.CalcuttaTeam, error) {
	query := `SELECT id, name, created_at FROM calcutta_teams WHERE id = $1`

	var team models.CalcuttaTeam
	err := r.db.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.Name, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	members, err := r.teamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Players = members
	return &team, nil
}

func (r *postgresCalcuttaRepository) GetAllTeams(ctx context.Context) ([]models.CalcuttaTeam, error) {
	query := `SELECT id, name, created_at FROM calcutta_teams ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.CalcuttaTeam, 0)
	for rows.Next() {
		var team models.CalcuttaTeam
		if scanErr := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, team)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range teams {
		members, memberErr := r.teamMembers(ctx, teams[i].ID)
		if memberErr != nil {
			return nil, memberErr
		}
		teams[i].Players = members
	}
	return teams, nil
}

func (r *postgresCalcuttaRepository) teamMembers(ctx context.Context, teamID int) ([]models.Player, error) {
	query := `SELECT p.id, p.first_name, p.last_name, p.division, p.handicap, p.created_at
	          FROM calcutta_team_members m
	          JOIN players p ON p.id = m.player_id
	          WHERE m.team_id = $1
	          ORDER BY p.division ASC, p.last_name ASC`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0, 2)
	for rows.Next() {
		var player models.Player
		if scanErr := rows.Scan(
			&player.ID, &player.FirstName, &player.LastName,
			&player.Division, &player.Handicap, &player.CreatedAt,
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

func (r *postgresCalcuttaRepository) DeleteTeam(ctx context.Context, id int) error {
	query := `DELETE FROM calcutta_teams WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}
