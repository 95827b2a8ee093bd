package usecase

import (
	"context"
	"testing"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/notify"
	"facility-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(repo *repository.Repository, mailer notify.Mailer) ReservationService {
	notifier := notify.NewDispatcher(mailer, utils.NotifyConfig{
		Enabled:     true,
		AdminEmails: []string{"admin@example.com"},
	}, zap.NewNop())
	return NewReservationService(repo, notifier, zap.NewNop())
}

func testRepo() (*repository.Repository, *mockStudioRepo, *mockCoworkRepo, *mockMeetingRoomRepo) {
	studio := &mockStudioRepo{}
	cowork := &mockCoworkRepo{}
	meetingRoom := &mockMeetingRoomRepo{}
	repo := &repository.Repository{
		Studio:      studio,
		Cowork:      cowork,
		MeetingRoom: meetingRoom,
		User: &mockUserRepo{users: map[int64]*entity.User{
			5: {ID: 5, Name: "Jan Novak", Email: "jan@example.com", Role: "user"},
		}},
		Place: &mockPlaceRepo{meetingRoom: &entity.MeetingRoom{ID: 2, Name: "Blue Room"}},
	}
	return repo, studio, cowork, meetingRoom
}

func TestCreateStudio_StartsPending(t *testing.T) {
	repo, _, _, _ := testRepo()
	mailer := &mockMailer{}
	svc := newTestService(repo, mailer)

	created, err := svc.CreateStudio(context.Background(), 5, &request.CreateStudioReservationRequest{
		StudioID: 1,
		Title:    "Album shoot",
		Day:      "2026-09-01",
		Start:    "10:00",
		End:      "12:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "studio", created.Type)
	assert.False(t, created.Approved)
	assert.False(t, created.Canceled)

	// Owner plus configured admin get the creation notice
	require.Len(t, mailer.sent, 1)
	assert.ElementsMatch(t, []string{"jan@example.com", "admin@example.com"}, mailer.sent[0].to)
}

func TestCreateStudio_ValidationFailure(t *testing.T) {
	repo, studio, _, _ := testRepo()
	svc := newTestService(repo, &mockMailer{})

	_, err := svc.CreateStudio(context.Background(), 5, &request.CreateStudioReservationRequest{
		Title: "No studio picked",
		Day:   "2026-09-01",
		Start: "10:00",
		End:   "12:00",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, int64(0), studio.nextID)
}

func TestCreateCowork_AutoApproved(t *testing.T) {
	repo, _, _, _ := testRepo()
	svc := newTestService(repo, &mockMailer{})

	created, err := svc.CreateCowork(context.Background(), 5, &request.CreateCoworkReservationRequest{
		TableNo: 3,
		Seats:   2,
		Day:     "2026-09-01",
		Start:   "09:00",
		End:     "17:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "cowork", created.Type)
	assert.True(t, created.Approved)
	assert.False(t, created.Canceled)
}

func TestCreateMeetingRoom_AutoApproved(t *testing.T) {
	repo, _, _, _ := testRepo()
	mailer := &mockMailer{}
	svc := newTestService(repo, mailer)

	created, err := svc.CreateMeetingRoom(context.Background(), 5, &request.CreateMeetingRoomReservationRequest{
		MeetingRoomID: 2,
		Day:           "2026-09-01",
		Start:         "14:00",
		End:           "15:00",
	})

	require.NoError(t, err)
	assert.True(t, created.Approved)

	// Auto-approval sends the approved notice, with the room name in it
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].subject, "approved")
}

func TestApprove_StudioStampsActor(t *testing.T) {
	repo, studio, _, _ := testRepo()
	studio.reservation = &entity.StudioReservation{
		ReservationCore: entity.ReservationCore{ID: 7, UserID: 5, Day: "2026-09-01", Start: "10:00", End: "12:00"},
		StudioID:        1,
		Title:           "Album shoot",
	}
	svc := newTestService(repo, &mockMailer{})

	err := svc.Approve(context.Background(), entity.ResourceStudio, 7, 99)

	require.NoError(t, err)
	require.NotNil(t, studio.lastStatus)
	assert.True(t, studio.lastStatus.approved)
	assert.False(t, studio.lastStatus.canceled)
	require.NotNil(t, studio.lastStatus.approveID)
	assert.Equal(t, int64(99), *studio.lastStatus.approveID)
}

func TestCancel_ClearsApproval(t *testing.T) {
	repo, _, cowork, _ := testRepo()
	cowork.reservation = &entity.CoworkReservation{
		ReservationCore: entity.ReservationCore{ID: 4, UserID: 5, Day: "2026-09-01", Start: "09:00", End: "17:00", Approved: true},
		TableNo:         3,
	}
	svc := newTestService(repo, &mockMailer{})

	err := svc.Cancel(context.Background(), entity.ResourceCowork, 4)

	require.NoError(t, err)
	require.NotNil(t, cowork.lastStatus)
	assert.False(t, cowork.lastStatus.approved)
	assert.True(t, cowork.lastStatus.canceled)
}

func TestApprove_NotFound(t *testing.T) {
	repo, _, _, _ := testRepo()
	svc := newTestService(repo, &mockMailer{})

	err := svc.Approve(context.Background(), entity.ResourceMeetingRoom, 123, 99)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApprove_InvalidType(t *testing.T) {
	repo, _, _, _ := testRepo()
	svc := newTestService(repo, &mockMailer{})

	err := svc.Approve(context.Background(), entity.ResourceType("garage"), 1, 99)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resource type")
}

func TestCancel_NotificationFailureSwallowed(t *testing.T) {
	repo, studio, _, _ := testRepo()
	studio.reservation = &entity.StudioReservation{
		ReservationCore: entity.ReservationCore{ID: 7, UserID: 5, Day: "2026-09-01", Start: "10:00", End: "12:00"},
		Title:           "Album shoot",
	}
	svc := newTestService(repo, &mockMailer{failErr: errSMTPDown})

	err := svc.Cancel(context.Background(), entity.ResourceStudio, 7)

	// The status write already committed, mail trouble stays internal
	require.NoError(t, err)
	require.NotNil(t, studio.lastStatus)
	assert.True(t, studio.lastStatus.canceled)
}
