package usecase

import (
	"bytes"
	"context"
	"testing"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/pkg/pdf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSummaryRender(t *testing.T) {
	studio := &mockStudioRepo{withUser: &repository.StudioRow{
		StudioReservation: entity.StudioReservation{
			ReservationCore: entity.ReservationCore{ID: 7, UserID: 5, Day: "2026-09-01", Start: "10:00", End: "12:00", Approved: true},
			Title:           "Album shoot",
			ApproveID:       int64Ptr(99),
		},
		UserName: strPtr("Jan Novak"),
	}}
	repo := &repository.Repository{
		Studio: studio,
		User: &mockUserRepo{users: map[int64]*entity.User{
			99: {ID: 99, Name: "Admin One"},
		}},
		Equipment: &mockEquipmentRepo{links: map[int64][]repository.EquipmentLink{
			7: {{ReservationID: 7, Reference: strPtr("CAM-01"), Mark: strPtr("Sony")}},
		}},
		Team: &mockTeamRepo{members: map[int64][]repository.TeamMember{
			7: {{ReservationID: 7, Name: strPtr("Eva Blau")}},
		}},
	}
	caps := &repository.Capabilities{Equipment: true, ReservationTeams: true}
	svc := NewSummaryService(repo, caps, pdf.NewRenderer("facility-booking"), zap.NewNop())

	doc, filename, err := svc.Render(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Reservation_Jan_Novak_2026-09-01.pdf", filename)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output must be a PDF document")
}

func TestSummaryRender_NotFound(t *testing.T) {
	repo := &repository.Repository{Studio: &mockStudioRepo{}}
	svc := NewSummaryService(repo, &repository.Capabilities{}, pdf.NewRenderer("facility-booking"), zap.NewNop())

	_, _, err := svc.Render(context.Background(), 404)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
