package usecase

import (
	"context"
	"fmt"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
	"facility-booking/internal/dto/response"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

// Status colors for the calendar widget.
const (
	colorCanceled = "#6b7280"
	colorApproved = "#FFC801"
	colorPending  = "#f59e0b"
)

// OverviewService assembles the presentation-ready aggregates: the flat
// admin list, the per-reservation detail and the calendar feeds. It
// consults the capability descriptor before touching any optional table,
// so a partially migrated deployment degrades to empty supplementary
// data instead of failing.
type OverviewService interface {
	ListAll(ctx context.Context) (*response.OverviewResponse, error)
	Detail(ctx context.Context, id int64) (*response.DetailResponse, error)
	// ByResource returns calendar events for one resource. An unknown
	// type yields an empty list, not an error.
	ByResource(ctx context.Context, resType string, id int64) ([]response.CalendarEvent, error)
	ResourceHeader(ctx context.Context, resType entity.ResourceType, id int64) (*response.ResourceHeader, error)
}

type overviewService struct {
	repo   *repository.Repository
	caps   *repository.Capabilities
	assets *utils.AssetResolver
	log    *zap.Logger
}

func NewOverviewService(repo *repository.Repository, caps *repository.Capabilities, assets *utils.AssetResolver, log *zap.Logger) OverviewService {
	return &overviewService{
		repo:   repo,
		caps:   caps,
		assets: assets,
		log:    log.With(zap.String("service", "overview")),
	}
}

func (s *overviewService) ListAll(ctx context.Context) (*response.OverviewResponse, error) {
	base, err := s.repo.Studio.ListWithUserNames(ctx, s.caps.Studios)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	// Supplementary maps keyed by reservation id, each gated on its
	// capability.
	var placeMap map[int64]repository.PlaceInfo
	if s.caps.Places {
		if placeMap, err = s.repo.Place.PlacesByReservation(ctx); err != nil {
			return nil, fmt.Errorf("load place map: %w", err)
		}
	}

	var equipmentMap map[int64][]repository.EquipmentLink
	if s.caps.Equipment {
		if equipmentMap, err = s.repo.Equipment.LinksByReservation(ctx, s.caps.EquipmentImage); err != nil {
			return nil, fmt.Errorf("load equipment map: %w", err)
		}
	}

	var teamMap map[int64][]repository.TeamMember
	if s.caps.ReservationTeams {
		if teamMap, err = s.repo.Team.MembersByReservation(ctx, s.caps); err != nil {
			return nil, fmt.Errorf("load team map: %w", err)
		}
	}

	rows := make([]response.ReservationRow, 0, len(base))
	for _, r := range base {
		row := response.ReservationRow{
			ID:          r.ID,
			UserName:    r.UserName,
			Date:        r.Day,
			Start:       r.Start,
			End:         r.End,
			Type:        string(entity.ResourceStudio),
			Title:       r.Title,
			Description: r.Description,
			Approved:    r.Approved,
			StartSigned: r.StartSigned,
			EndSigned:   r.EndSigned,
			Canceled:    r.Canceled,
			Passed:      r.Passed,
			Equipments:  []response.EquipmentItem{},
			TeamMembers: []response.TeamMemberItem{},
			StudioName:  r.StudioName,
		}

		if place, ok := placeMap[r.ID]; ok {
			row.PlaceName = place.Name
			row.PlaceType = place.PlaceType
		}
		for _, link := range equipmentMap[r.ID] {
			row.Equipments = append(row.Equipments, s.equipmentItem(link))
		}
		for _, member := range teamMap[r.ID] {
			row.TeamMembers = append(row.TeamMembers, s.teamMemberItem(member))
		}

		rows = append(rows, row)
	}

	coworks, err := s.repo.Cowork.ListWithUserNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cowork reservations: %w", err)
	}
	coworkRows := make([]response.CoworkReservationRow, 0, len(coworks))
	for _, c := range coworks {
		coworkRows = append(coworkRows, response.CoworkReservationRow{
			ID:        c.ID,
			UserName:  c.UserName,
			TableNo:   c.TableNo,
			Seats:     c.Seats,
			Day:       c.Day,
			Start:     c.Start,
			End:       c.End,
			Approved:  c.Approved,
			Canceled:  c.Canceled,
			CreatedAt: c.CreatedAt,
		})
	}

	meetingRooms, err := s.repo.MeetingRoom.ListWithUserNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meeting room reservations: %w", err)
	}
	meetingRoomRows := make([]response.MeetingRoomReservationRow, 0, len(meetingRooms))
	for _, m := range meetingRooms {
		meetingRoomRows = append(meetingRoomRows, response.MeetingRoomReservationRow{
			ID:        m.ID,
			UserName:  m.UserName,
			RoomName:  m.RoomName,
			Day:       m.Day,
			Start:     m.Start,
			End:       m.End,
			Approved:  m.Approved,
			Canceled:  m.Canceled,
			Passed:    m.Passed,
			CreatedAt: m.CreatedAt,
		})
	}

	return &response.OverviewResponse{
		Reservations:            rows,
		CoworkReservations:      coworkRows,
		MeetingRoomReservations: meetingRoomRows,
	}, nil
}

func (s *overviewService) Detail(ctx context.Context, id int64) (*response.DetailResponse, error) {
	result := &response.DetailResponse{
		ReservationID: id,
		TeamMembers:   []response.TeamMemberItem{},
		Equipments:    []response.EquipmentItem{},
	}

	// Named-team schema first, direct link join as fallback.
	switch {
	case s.caps.ReservationTeams && s.caps.NamedTeams:
		team, err := s.repo.Team.NamedTeamForReservation(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load named team: %w", err)
		}
		if team != nil {
			result.TeamName = team.Name
			members, err := s.repo.Team.NamedTeamMembers(ctx, team.ID, s.caps)
			if err != nil {
				return nil, fmt.Errorf("load named team members: %w", err)
			}
			for _, member := range members {
				result.TeamMembers = append(result.TeamMembers, s.teamMemberItem(member))
			}
		}

	case s.caps.ReservationTeams:
		members, err := s.repo.Team.MembersForReservation(ctx, id, s.caps)
		if err != nil {
			return nil, fmt.Errorf("load team members: %w", err)
		}
		for _, member := range members {
			result.TeamMembers = append(result.TeamMembers, s.teamMemberItem(member))
		}
	}

	if s.caps.Equipment {
		links, err := s.repo.Equipment.ListForReservation(ctx, id, s.caps.EquipmentImage)
		if err != nil {
			return nil, fmt.Errorf("load reservation equipment: %w", err)
		}
		for _, link := range links {
			result.Equipments = append(result.Equipments, s.equipmentItem(link))
		}
	}

	return result, nil
}

func (s *overviewService) ByResource(ctx context.Context, resType string, id int64) ([]response.CalendarEvent, error) {
	parsed, ok := entity.ParseResourceType(resType)
	if !ok {
		// Unknown type is an empty calendar, not a failure
		return []response.CalendarEvent{}, nil
	}

	var rows []repository.CalendarRow
	var err error
	switch parsed {
	case entity.ResourceStudio:
		rows, err = s.repo.Studio.ListByStudio(ctx, id)
	case entity.ResourceCowork:
		rows, err = s.repo.Cowork.ListByTable(ctx, id)
	case entity.ResourceMeetingRoom:
		rows, err = s.repo.MeetingRoom.ListByRoom(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("list %s calendar events: %w", parsed, err)
	}

	events := make([]response.CalendarEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, response.CalendarEvent{
			ID:              row.ID,
			Title:           eventTitle(parsed, row),
			Start:           row.Day + "T" + row.Start,
			End:             row.Day + "T" + row.End,
			BackgroundColor: statusColor(row.Approved, row.Canceled),
		})
	}

	return events, nil
}

func (s *overviewService) ResourceHeader(ctx context.Context, resType entity.ResourceType, id int64) (*response.ResourceHeader, error) {
	switch resType {
	case entity.ResourceStudio:
		studio, err := s.repo.Place.FindStudio(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load studio: %w", err)
		}
		if studio == nil {
			return nil, fmt.Errorf("studio %d not found", id)
		}
		return &response.ResourceHeader{
			ID:    studio.ID,
			Name:  studio.Name,
			Image: studio.Image,
		}, nil

	case entity.ResourceCowork:
		cowork, err := s.repo.Place.FindCowork(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load cowork: %w", err)
		}
		if cowork == nil {
			return nil, fmt.Errorf("cowork %d not found", id)
		}
		return &response.ResourceHeader{
			ID:      cowork.ID,
			TableNo: &cowork.TableNo,
			Seats:   &cowork.Seats,
			Image:   cowork.Image,
		}, nil

	case entity.ResourceMeetingRoom:
		room, err := s.repo.Place.FindMeetingRoom(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load meeting room: %w", err)
		}
		if room == nil {
			return nil, fmt.Errorf("meeting room %d not found", id)
		}
		return &response.ResourceHeader{
			ID:    room.ID,
			Name:  room.Name,
			State: &room.State,
			Image: room.Image,
		}, nil

	default:
		return nil, fmt.Errorf("invalid resource type %q", resType)
	}
}

func (s *overviewService) equipmentItem(link repository.EquipmentLink) response.EquipmentItem {
	return response.EquipmentItem{
		ID:        link.EquipmentID,
		Reference: link.Reference,
		Mark:      link.Mark,
		Image:     s.assets.ImageURLPtr("equipment", link.Image),
	}
}

func (s *overviewService) teamMemberItem(member repository.TeamMember) response.TeamMemberItem {
	return response.TeamMemberItem{
		ID:    member.UserID,
		Name:  member.Name,
		Image: s.assets.ImageURLPtr("profile", member.Image),
	}
}

func eventTitle(resType entity.ResourceType, row repository.CalendarRow) string {
	userName := ""
	if row.UserName != nil {
		userName = *row.UserName
	}

	switch resType {
	case entity.ResourceCowork:
		tableNo := row.ID
		if row.TableNo != nil {
			tableNo = *row.TableNo
		}
		return fmt.Sprintf("Table %d — %s", tableNo, userName)
	case entity.ResourceMeetingRoom:
		return "Meeting Room — " + userName
	default:
		return row.Title + " — " + userName
	}
}

func statusColor(approved, canceled bool) string {
	switch {
	case canceled:
		return colorCanceled
	case approved:
		return colorApproved
	default:
		return colorPending
	}
}
