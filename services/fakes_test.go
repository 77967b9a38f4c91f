package services

import (
	"context"
	"time"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakePlayerRepo struct {
	players map[int]*models.Player
}

func newFakePlayerRepo(players ...*models.Player) *fakePlayerRepo {
	repo := &fakePlayerRepo{players: make(map[int]*models.Player)}
	for _, p := range players {
		repo.players[p.ID] = p
	}
	return repo
}

func (r *fakePlayerRepo) Create(ctx context.Context, player *models.Player) error {
	player.ID = len(r.players) + 1
	player.CreatedAt = time.Now()
	r.players[player.ID] = player
	return nil
}

func (r *fakePlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (r *fakePlayerRepo) GetAll(ctx context.Context) ([]models.Player, error) {
	out := make([]models.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePlayerRepo) GetByDivision(ctx context.Context, division models.Division) ([]models.Player, error) {
	out := make([]models.Player, 0)
	for _, p := range r.players {
		if p.Division == division {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlayerRepo) Update(ctx context.Context, player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	r.players[player.ID] = player
	return nil
}

func (r *fakePlayerRepo) UpdatePhotoKey(ctx context.Context, id int, photoKey *string) error {
	player, ok := r.players[id]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	player.PhotoKey = photoKey
	return nil
}

func (r *fakePlayerRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

type fakeRoundRepo struct {
	rounds  []models.Round
	players map[int]*models.Player
	nextID  int
}

func newFakeRoundRepo(players *fakePlayerRepo) *fakeRoundRepo {
	return &fakeRoundRepo{players: players.players, nextID: 1}
}

func (r *fakeRoundRepo) Create(ctx context.Context, round *models.Round) error {
	for _, existing := range r.rounds {
		if existing.PlayerID == round.PlayerID && existing.Day == round.Day {
			return repositories.ErrRoundAlreadyExists
		}
	}
	if _, ok := r.players[round.PlayerID]; !ok {
		return repositories.ErrRoundPlayerMissing
	}
	round.ID = r.nextID
	r.nextID++
	round.CreatedAt = time.Now()
	r.rounds = append(r.rounds, *round)
	return nil
}

func (r *fakeRoundRepo) GetByID(ctx context.Context, id int) (*models.Round, error) {
	for _, round := range r.rounds {
		if round.ID == id {
			copied := round
			copied.Player = r.players[round.PlayerID]
			return &copied, nil
		}
	}
	return nil, repositories.ErrRoundNotFound
}

func (r *fakeRoundRepo) ListByDay(ctx context.Context, day models.TournamentDay) ([]models.Round, error) {
	out := make([]models.Round, 0)
	for _, round := range r.rounds {
		if round.Day == day || round.Day == models.DayAll {
			copied := round
			copied.Player = r.players[round.PlayerID]
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeRoundRepo) ListByPlayer(ctx context.Context, playerID int) ([]models.Round, error) {
	out := make([]models.Round, 0)
	for _, round := range r.rounds {
		if round.PlayerID == playerID {
			copied := round
			copied.Player = r.players[round.PlayerID]
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeRoundRepo) ListByPlayerAndDay(ctx context.Context, playerID int, day models.TournamentDay) ([]models.Round, error) {
	out := make([]models.Round, 0)
	for _, round := range r.rounds {
		if round.PlayerID == playerID && (round.Day == day || round.Day == models.DayAll) {
			copied := round
			copied.Player = r.players[round.PlayerID]
			out = append(out, copied)
		}
	}
	return out, nil
}

type fakeCalcuttaRepo struct {
	teams   []models.CalcuttaTeam
	players map[int]*models.Player
	nextID  int
}

func newFakeCalcuttaRepo(players *fakePlayerRepo) *fakeCalcuttaRepo {
	return &fakeCalcuttaRepo{players: players.players, nextID: 1}
}

func (r *fakeCalcuttaRepo) CreateTeam(ctx context.Context, team *models.CalcuttaTeam, playerIDs []int) error {
	for _, existing := range r.teams {
		if existing.Name == team.Name {
			return repositories.ErrTeamNameConflict
		}
	}
	members := make([]models.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		player, ok := r.players[id]
		if !ok {
			return repositories.ErrTeamMemberMissing
		}
		members = append(members, *player)
	}
	team.ID = r.nextID
	r.nextID++
	team.CreatedAt = time.Now()
	stored := *team
	stored.Players = members
	r.teams = append(r.teams, stored)
	return nil
}

func (r *fakeCalcuttaRepo) GetTeamByID(ctx context.Context, id int) (*models.CalcuttaTeam, error) {
	for _, team := range r.teams {
		if team.ID == id {
			copied := team
			return &copied, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *fakeCalcuttaRepo) GetAllTeams(ctx context.Context) ([]models.CalcuttaTeam, error) {
	return append([]models.CalcuttaTeam(nil), r.teams...), nil
}

func (r *fakeCalcuttaRepo) DeleteTeam(ctx context.Context, id int) error {
	for i, team := range r.teams {
		if team.ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}
