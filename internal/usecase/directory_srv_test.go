package usecase

import (
	"context"
	"testing"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDirectoryEquipment_GatedOnCapability(t *testing.T) {
	repo := &repository.Repository{
		Equipment: &mockEquipmentRepo{available: []entity.Equipment{
			{ID: 9, Reference: "CAM-01", Mark: "Sony", TypeName: "camera", Image: strPtr("cam.jpg"), State: 1},
		}},
	}
	assets := utils.NewAssetResolver("http://localhost:8080/")

	// Without the equipment tables the list is empty, not an error
	svc := NewDirectoryService(repo, &repository.Capabilities{}, assets, zap.NewNop())
	options, err := svc.Equipment(context.Background())
	require.NoError(t, err)
	assert.Empty(t, options)

	svc = NewDirectoryService(repo, &repository.Capabilities{Equipment: true, EquipmentImage: true}, assets, zap.NewNop())
	options, err = svc.Equipment(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "camera", options[0].Type)
	assert.Equal(t, "http://localhost:8080/storage/img/equipment/cam.jpg", *options[0].Image)
}

func TestDirectoryUsers(t *testing.T) {
	repo := &repository.Repository{
		User: &mockUserRepo{users: map[int64]*entity.User{
			5: {ID: 5, Name: "Jan Novak", Image: strPtr("me.png")},
		}},
	}
	svc := NewDirectoryService(repo, &repository.Capabilities{}, utils.NewAssetResolver("http://localhost:8080/"), zap.NewNop())

	options, err := svc.Users(context.Background())

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Jan Novak", options[0].Name)
	assert.Equal(t, "http://localhost:8080/storage/img/profile/me.png", *options[0].Image)
}
