package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/dto/response"
	"facility-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReservationService struct {
	created    *response.CreatedReservationResponse
	err        error
	approved   []string
	lastActor  int64
	lastTarget int64
}

func (s *stubReservationService) CreateStudio(ctx context.Context, userID int64, req *request.CreateStudioReservationRequest) (*response.CreatedReservationResponse, error) {
	s.lastActor = userID
	return s.created, s.err
}

func (s *stubReservationService) CreateCowork(ctx context.Context, userID int64, req *request.CreateCoworkReservationRequest) (*response.CreatedReservationResponse, error) {
	s.lastActor = userID
	return s.created, s.err
}

func (s *stubReservationService) CreateMeetingRoom(ctx context.Context, userID int64, req *request.CreateMeetingRoomReservationRequest) (*response.CreatedReservationResponse, error) {
	s.lastActor = userID
	return s.created, s.err
}

func (s *stubReservationService) Approve(ctx context.Context, resType entity.ResourceType, id, actorID int64) error {
	s.approved = append(s.approved, string(resType))
	s.lastActor = actorID
	s.lastTarget = id
	return s.err
}

func (s *stubReservationService) Cancel(ctx context.Context, resType entity.ResourceType, id int64) error {
	s.lastTarget = id
	return s.err
}

func approveRequest(resType, id string, actorID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/admin/reservations/"+resType+"/"+id+"/approve", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("type", resType)
	rctx.URLParams.Add("id", id)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = utils.SetActorContext(ctx, actorID)
	return req.WithContext(ctx)
}

func TestApprove_PassesActorAndTarget(t *testing.T) {
	stub := &stubReservationService{}
	h := NewReservationHandler(stub, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Approve(rec, approveRequest("studio", "7", 99))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"studio"}, stub.approved)
	assert.Equal(t, int64(99), stub.lastActor)
	assert.Equal(t, int64(7), stub.lastTarget)
}

func TestApprove_UnknownTypeRejected(t *testing.T) {
	stub := &stubReservationService{}
	h := NewReservationHandler(stub, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Approve(rec, approveRequest("garage", "7", 99))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, stub.approved)
}

func TestApprove_NotFoundMapsTo404(t *testing.T) {
	stub := &stubReservationService{err: errors.New("studio reservation 7 not found")}
	h := NewReservationHandler(stub, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Approve(rec, approveRequest("studio", "7", 99))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateStudio_RequiresIdentity(t *testing.T) {
	stub := &stubReservationService{}
	h := NewReservationHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations",
		strings.NewReader(`{"studio_id":1,"title":"Album shoot","day":"2026-09-01","start":"10:00","end":"12:00"}`))
	rec := httptest.NewRecorder()
	h.CreateStudio(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateStudio_Success(t *testing.T) {
	stub := &stubReservationService{created: &response.CreatedReservationResponse{ID: 1, Type: "studio"}}
	h := NewReservationHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations",
		strings.NewReader(`{"studio_id":1,"title":"Album shoot","day":"2026-09-01","start":"10:00","end":"12:00"}`))
	req = req.WithContext(utils.SetActorContext(req.Context(), 5))
	rec := httptest.NewRecorder()
	h.CreateStudio(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(5), stub.lastActor)
	require.Contains(t, rec.Body.String(), `"id":1`)
}

func TestCreateStudio_ValidationMapsTo400(t *testing.T) {
	stub := &stubReservationService{err: errors.New("validation failed: studio_id is required")}
	h := NewReservationHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reservations", strings.NewReader(`{}`))
	req = req.WithContext(utils.SetActorContext(req.Context(), 5))
	rec := httptest.NewRecorder()
	h.CreateStudio(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
