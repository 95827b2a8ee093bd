package usecase

import (
	"context"
	"fmt"
	"strings"

	"facility-booking/internal/data/repository"
	"facility-booking/pkg/pdf"

	"go.uber.org/zap"
)

// SummaryService renders the printable one-page summary of a studio
// reservation.
type SummaryService interface {
	// Render returns the PDF bytes and a download filename.
	Render(ctx context.Context, id int64) ([]byte, string, error)
}

type summaryService struct {
	repo     *repository.Repository
	caps     *repository.Capabilities
	renderer pdf.Renderer
	log      *zap.Logger
}

func NewSummaryService(repo *repository.Repository, caps *repository.Capabilities, renderer pdf.Renderer, log *zap.Logger) SummaryService {
	return &summaryService{
		repo:     repo,
		caps:     caps,
		renderer: renderer,
		log:      log.With(zap.String("service", "summary")),
	}
}

func (s *summaryService) Render(ctx context.Context, id int64) ([]byte, string, error) {
	row, err := s.repo.Studio.FindWithUserName(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("load reservation %d: %w", id, err)
	}
	if row == nil {
		return nil, "", fmt.Errorf("studio reservation %d not found", id)
	}

	data := &pdf.SummaryData{
		ID:          row.ID,
		Date:        row.Day,
		Start:       row.Start,
		End:         row.End,
		Title:       row.Title,
		Description: row.Description,
		Approved:    row.Approved,
	}
	if row.UserName != nil {
		data.UserName = *row.UserName
	}

	if row.ApproveID != nil {
		approver, err := s.repo.User.FindByID(ctx, *row.ApproveID)
		if err != nil {
			return nil, "", fmt.Errorf("load approver %d: %w", *row.ApproveID, err)
		}
		if approver != nil {
			data.ApproverName = approver.Name
		}
	}

	if s.caps.Equipment {
		links, err := s.repo.Equipment.ListForReservation(ctx, id, false)
		if err != nil {
			return nil, "", fmt.Errorf("load reservation equipment: %w", err)
		}
		for _, link := range links {
			item := pdf.SummaryEquipment{}
			if link.Reference != nil {
				item.Reference = *link.Reference
			}
			if link.Mark != nil {
				item.Mark = *link.Mark
			}
			data.Equipment = append(data.Equipment, item)
		}
	}

	if s.caps.ReservationTeams {
		members, err := s.repo.Team.MembersForReservation(ctx, id, s.caps)
		if err != nil {
			return nil, "", fmt.Errorf("load team members: %w", err)
		}
		for _, member := range members {
			if member.Name != nil {
				data.TeamMembers = append(data.TeamMembers, *member.Name)
			}
		}
	}

	bytes, err := s.renderer.ReservationSummary(data)
	if err != nil {
		return nil, "", fmt.Errorf("render summary %d: %w", id, err)
	}

	return bytes, summaryFilename(data.UserName, data.Date), nil
}

func summaryFilename(userName, date string) string {
	name := strings.ReplaceAll(strings.TrimSpace(userName), " ", "_")
	if name == "" {
		name = "Unknown"
	}
	return "Reservation_" + name + "_" + date + ".pdf"
}
