package usecase

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/request"
	"facility-booking/internal/dto/response"
	"facility-booking/internal/notify"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

// ReservationService owns the lifecycle of all three resource types.
// The types keep separate tables, but approve/cancel are written once
// and dispatched on the ResourceType tag. Studio reservations start
// pending; cowork and meeting-room reservations are auto-approved at
// creation. Notifications fire after the write and never fail the
// operation.
type ReservationService interface {
	CreateStudio(ctx context.Context, userID int64, req *request.CreateStudioReservationRequest) (*response.CreatedReservationResponse, error)
	CreateCowork(ctx context.Context, userID int64, req *request.CreateCoworkReservationRequest) (*response.CreatedReservationResponse, error)
	CreateMeetingRoom(ctx context.Context, userID int64, req *request.CreateMeetingRoomReservationRequest) (*response.CreatedReservationResponse, error)
	Approve(ctx context.Context, resType entity.ResourceType, id, actorID int64) error
	Cancel(ctx context.Context, resType entity.ResourceType, id int64) error
}

type reservationService struct {
	repo     *repository.Repository
	notifier *notify.Dispatcher
	log      *zap.Logger
}

func NewReservationService(repo *repository.Repository, notifier *notify.Dispatcher, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateStudio(ctx context.Context, userID int64, req *request.CreateStudioReservationRequest) (*response.CreatedReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create studio reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	res := &entity.StudioReservation{
		ReservationCore: entity.ReservationCore{
			UserID: userID,
			Day:    req.Day,
			Start:  req.Start,
			End:    req.End,
		},
		StudioID:    req.StudioID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Studio.Create(ctx, res, req.TeamMembers, req.Equipment); err != nil {
		s.log.Error("Failed to create studio reservation",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("studio_id", req.StudioID),
		)
		return nil, fmt.Errorf("create studio reservation: %w", err)
	}

	s.log.Info("Studio reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("user_id", userID),
	)

	// Post-commit, best-effort
	if owner, err := s.repo.User.FindByID(ctx, userID); err == nil && owner != nil {
		s.notifier.ReservationCreated(ctx, owner, notify.Summary{
			ID:          res.ID,
			Type:        entity.ResourceStudio,
			Title:       res.Title,
			Day:         res.Day,
			Start:       res.Start,
			End:         res.End,
			Description: res.Description,
		})
	}

	return &response.CreatedReservationResponse{
		ID:       res.ID,
		Type:     string(entity.ResourceStudio),
		Approved: res.Approved,
		Canceled: res.Canceled,
	}, nil
}

func (s *reservationService) CreateCowork(ctx context.Context, userID int64, req *request.CreateCoworkReservationRequest) (*response.CreatedReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cowork reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	res := &entity.CoworkReservation{
		ReservationCore: entity.ReservationCore{
			UserID:   userID,
			Day:      req.Day,
			Start:    req.Start,
			End:      req.End,
			Approved: true, // cowork reservations need no admin review
		},
		TableNo: req.TableNo,
		Seats:   req.Seats,
	}

	if err := s.repo.Cowork.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create cowork reservation: %w", err)
	}

	s.log.Info("Cowork reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("user_id", userID),
	)

	if owner, err := s.repo.User.FindByID(ctx, userID); err == nil && owner != nil {
		s.notifier.ReservationCreated(ctx, owner, coworkSummary(res))
	}

	return &response.CreatedReservationResponse{
		ID:       res.ID,
		Type:     string(entity.ResourceCowork),
		Approved: res.Approved,
		Canceled: res.Canceled,
	}, nil
}

func (s *reservationService) CreateMeetingRoom(ctx context.Context, userID int64, req *request.CreateMeetingRoomReservationRequest) (*response.CreatedReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create meeting room reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	res := &entity.MeetingRoomReservation{
		ReservationCore: entity.ReservationCore{
			UserID:   userID,
			Day:      req.Day,
			Start:    req.Start,
			End:      req.End,
			Approved: true, // meeting rooms need no admin review
		},
		MeetingRoomID: req.MeetingRoomID,
	}

	if err := s.repo.MeetingRoom.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create meeting room reservation: %w", err)
	}

	s.log.Info("Meeting room reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("user_id", userID),
	)

	// Auto-approved at creation, so the owner gets the approval notice
	if owner, err := s.repo.User.FindByID(ctx, userID); err == nil && owner != nil {
		summary, _ := s.meetingRoomSummary(ctx, res)
		s.notifier.ReservationApproved(ctx, owner, summary)
	}

	return &response.CreatedReservationResponse{
		ID:       res.ID,
		Type:     string(entity.ResourceMeetingRoom),
		Approved: res.Approved,
		Canceled: res.Canceled,
	}, nil
}

// Approve loads the reservation and its owner, then writes approved=1
// canceled=0 in one statement. Studio approvals stamp the acting admin.
func (s *reservationService) Approve(ctx context.Context, resType entity.ResourceType, id, actorID int64) error {
	summary, ownerID, err := s.load(ctx, resType, id)
	if err != nil {
		return err
	}

	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load reservation owner: %w", err)
	}
	if owner == nil {
		return fmt.Errorf("user %d not found", ownerID)
	}

	switch resType {
	case entity.ResourceStudio:
		err = s.repo.Studio.SetStatus(ctx, id, true, false, &actorID)
	case entity.ResourceCowork:
		err = s.repo.Cowork.SetStatus(ctx, id, true, false)
	case entity.ResourceMeetingRoom:
		err = s.repo.MeetingRoom.SetStatus(ctx, id, true, false)
	}
	if err != nil {
		return fmt.Errorf("approve %s reservation %d: %w", resType, id, err)
	}

	s.log.Info("Reservation approved",
		zap.String("type", string(resType)),
		zap.Int64("reservation_id", id),
		zap.Int64("actor_id", actorID),
	)

	s.notifier.ReservationApproved(ctx, owner, summary)
	return nil
}

func (s *reservationService) Cancel(ctx context.Context, resType entity.ResourceType, id int64) error {
	summary, ownerID, err := s.load(ctx, resType, id)
	if err != nil {
		return err
	}

	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("load reservation owner: %w", err)
	}
	if owner == nil {
		return fmt.Errorf("user %d not found", ownerID)
	}

	switch resType {
	case entity.ResourceStudio:
		err = s.repo.Studio.SetStatus(ctx, id, false, true, nil)
	case entity.ResourceCowork:
		err = s.repo.Cowork.SetStatus(ctx, id, false, true)
	case entity.ResourceMeetingRoom:
		err = s.repo.MeetingRoom.SetStatus(ctx, id, false, true)
	}
	if err != nil {
		return fmt.Errorf("cancel %s reservation %d: %w", resType, id, err)
	}

	s.log.Info("Reservation canceled",
		zap.String("type", string(resType)),
		zap.Int64("reservation_id", id),
	)

	s.notifier.ReservationCanceled(ctx, owner, summary)
	return nil
}

// load fetches the reservation for one resource type and returns its
// notification summary plus the owning user id.
func (s *reservationService) load(ctx context.Context, resType entity.ResourceType, id int64) (notify.Summary, int64, error) {
	switch resType {
	case entity.ResourceStudio:
		res, err := s.repo.Studio.FindByID(ctx, id)
		if err != nil {
			return notify.Summary{}, 0, fmt.Errorf("load studio reservation: %w", err)
		}
		if res == nil {
			return notify.Summary{}, 0, fmt.Errorf("studio reservation %d not found", id)
		}
		return notify.Summary{
			ID:          res.ID,
			Type:        entity.ResourceStudio,
			Title:       res.Title,
			Day:         res.Day,
			Start:       res.Start,
			End:         res.End,
			Description: res.Description,
		}, res.UserID, nil

	case entity.ResourceCowork:
		res, err := s.repo.Cowork.FindByID(ctx, id)
		if err != nil {
			return notify.Summary{}, 0, fmt.Errorf("load cowork reservation: %w", err)
		}
		if res == nil {
			return notify.Summary{}, 0, fmt.Errorf("cowork reservation %d not found", id)
		}
		return coworkSummary(res), res.UserID, nil

	case entity.ResourceMeetingRoom:
		res, err := s.repo.MeetingRoom.FindByID(ctx, id)
		if err != nil {
			return notify.Summary{}, 0, fmt.Errorf("load meeting room reservation: %w", err)
		}
		if res == nil {
			return notify.Summary{}, 0, fmt.Errorf("meeting room reservation %d not found", id)
		}
		summary, _ := s.meetingRoomSummary(ctx, res)
		return summary, res.UserID, nil

	default:
		return notify.Summary{}, 0, fmt.Errorf("invalid resource type %q", resType)
	}
}

func coworkSummary(res *entity.CoworkReservation) notify.Summary {
	return notify.Summary{
		ID:          res.ID,
		Type:        entity.ResourceCowork,
		Title:       fmt.Sprintf("Cowork - Table %d", res.TableNo),
		Day:         res.Day,
		Start:       res.Start,
		End:         res.End,
		Description: "Cowork space reservation",
	}
}

func (s *reservationService) meetingRoomSummary(ctx context.Context, res *entity.MeetingRoomReservation) (notify.Summary, error) {
	title := "Meeting Room"
	room, err := s.repo.Place.FindMeetingRoom(ctx, res.MeetingRoomID)
	if err == nil && room != nil {
		title = fmt.Sprintf("Meeting Room - %s", room.Name)
	}

	return notify.Summary{
		ID:          res.ID,
		Type:        entity.ResourceMeetingRoom,
		Title:       title,
		Day:         res.Day,
		Start:       res.Start,
		End:         res.End,
		Description: "Meeting room reservation",
	}, err
}
