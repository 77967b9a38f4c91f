package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/birdiehq/scorekeeper/models"
	"github.com/birdiehq/scorekeeper/repositories"
	"github.com/birdiehq/scorekeeper/storage"
)

var (
	ErrPlayerCreationFailed = errors.New("failed to create player")
	ErrPlayerUpdateFailed   = errors.New("failed to update player")
	ErrPlayerDeleteFailed   = errors.New("failed to delete player")
	ErrPhotoUploadFailed    = errors.New("failed to upload player photo")
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayersByDivision(ctx context.Context, division models.Division) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
	UploadPlayerPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error)
}

type CreatePlayerInput struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Division  models.Division `json:"division"`
	Handicap  int             `json:"handicap"`
}

type UpdatePlayerInput struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Division  models.Division `json:"division"`
	Handicap  int             `json:"handicap"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" && lastName == "" {
		return nil, ErrPlayerNameRequired
	}
	if !input.Division.Valid() {
		return nil, ErrInvalidDivision
	}

	player := &models.Player{
		FirstName: firstName,
		LastName:  lastName,
		Division:  input.Division,
		Handicap:  input.Handicap,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, ErrPlayerNameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrPlayerCreationFailed, err)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}
	s.populatePhotoURL(player)
	return player, nil
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	for i := range players {
		s.populatePhotoURL(&players[i])
	}
	return players, nil
}

func (s *playerService) GetPlayersByDivision(ctx context.Context, division models.Division) ([]models.Player, error) {
	if !division.Valid() {
		return nil, ErrInvalidDivision
	}
	players, err := s.playerRepo.GetByDivision(ctx, division)
	if err != nil {
		return nil, fmt.Errorf("failed to get players for division %s: %w", division, err)
	}
	for i := range players {
		s.populatePhotoURL(&players[i])
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" && lastName == "" {
		return nil, ErrPlayerNameRequired
	}
	if !input.Division.Valid() {
		return nil, ErrInvalidDivision
	}

	player := &models.Player{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Division:  input.Division,
		Handicap:  input.Handicap,
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerNameConflict):
			return nil, ErrPlayerNameConflict
		default:
			return nil, fmt.Errorf("%w (id: %d): %w", ErrPlayerUpdateFailed, id, err)
		}
	}
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerHasRounds):
			return ErrPlayerInUse
		default:
			return fmt.Errorf("%w (id: %d): %w", ErrPlayerDeleteFailed, id, err)
		}
	}
	return nil
}

func (s *playerService) UploadPlayerPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrPhotoStorageUnavailable
	}

	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}

	ext := extensionForContentType(contentType)
	if ext == "" {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrPhotoUploadFailed, contentType)
	}

	key := fmt.Sprintf("players/%d/photo%s", player.ID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
	}

	oldKey := player.PhotoKey
	if err := s.playerRepo.UpdatePhotoKey(ctx, player.ID, &result.Key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
	}

	// Remove the previous object when the key changed; best effort.
	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	player.PhotoKey = &result.Key
	s.populatePhotoURL(player)
	return player, nil
}

func (s *playerService) populatePhotoURL(player *models.Player) {
	if s.uploader == nil || player.PhotoKey == nil {
		return
	}
	url := s.uploader.GetPublicURL(*player.PhotoKey)
	player.PhotoURL = &url
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	return ""
}
