package usecase

import (
	"context"
	"fmt"

	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/response"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

// DirectoryService backs the selector dropdowns on the booking form.
type DirectoryService interface {
	Users(ctx context.Context) ([]response.UserOption, error)
	Equipment(ctx context.Context) ([]response.EquipmentOption, error)
}

type directoryService struct {
	repo   *repository.Repository
	caps   *repository.Capabilities
	assets *utils.AssetResolver
	log    *zap.Logger
}

func NewDirectoryService(repo *repository.Repository, caps *repository.Capabilities, assets *utils.AssetResolver, log *zap.Logger) DirectoryService {
	return &directoryService{
		repo:   repo,
		caps:   caps,
		assets: assets,
		log:    log.With(zap.String("service", "directory")),
	}
}

func (s *directoryService) Users(ctx context.Context) ([]response.UserOption, error) {
	users, err := s.repo.User.ListOptions(ctx, s.caps)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	options := make([]response.UserOption, 0, len(users))
	for _, user := range users {
		options = append(options, response.UserOption{
			ID:    user.ID,
			Name:  user.Name,
			Image: s.assets.ImageURLPtr("profile", user.Image),
		})
	}
	return options, nil
}

func (s *directoryService) Equipment(ctx context.Context) ([]response.EquipmentOption, error) {
	if !s.caps.Equipment {
		return []response.EquipmentOption{}, nil
	}

	items, err := s.repo.Equipment.ListAvailable(ctx, s.caps.EquipmentImage)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	options := make([]response.EquipmentOption, 0, len(items))
	for _, item := range items {
		options = append(options, response.EquipmentOption{
			ID:        item.ID,
			Reference: item.Reference,
			Mark:      item.Mark,
			Type:      item.TypeName,
			Image:     s.assets.ImageURLPtr("equipment", item.Image),
		})
	}
	return options, nil
}
