package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/birdiehq/scorekeeper/models"
)

var ErrHoleNotFound = errors.New("hole not found")

type HoleRepository interface {
	GetAll(ctx context.Context) ([]models.Hole, error)
	GetByNumber(ctx context.Context, number int) (*models.Hole, error)
	Upsert(ctx context.Context, hole *models.Hole) error
}

type postgresHoleRepository struct {
	db *sql.DB
}

func NewPostgresHoleRepository(db *sql.DB) HoleRepository {
	return &postgresHoleRepository{db: db}
}

func (r *postgresHoleRepository) GetAll(ctx context.Context) ([]models.Hole, error) {
	query := `SELECT hole_number, par, stroke_index FROM holes ORDER BY hole_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holes := make([]models.Hole, 0, 18)
	for rows.Next() {
		var hole models.Hole
		if scanErr := rows.Scan(&hole.Number, &hole.Par, &hole.StrokeIndex); scanErr != nil {
			return nil, scanErr
		}
		holes = append(holes, hole)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return holes, nil
}

func (r *postgresHoleRepository) GetByNumber(ctx context.Context, number int) (*models.Hole, error) {
	query := `SELECT hole_number, par, stroke_index FROM holes WHERE hole_number = $1`

	var hole models.Hole
	err := r.db.QueryRowContext(ctx, query, number).Scan(&hole.Number, &hole.Par, &hole.StrokeIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHoleNotFound
		}
		return nil, err
	}
	return &hole, nil
}

func (r *postgresHoleRepository) Upsert(ctx context.Context, hole *models.Hole) error {
	query := `INSERT INTO holes (hole_number, par, stroke_index)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (hole_number) DO UPDATE SET par = $2, stroke_index = $3`

	_, err := r.db.ExecContext(ctx, query, hole.Number, hole.Par, hole.StrokeIndex)
	return err
}
