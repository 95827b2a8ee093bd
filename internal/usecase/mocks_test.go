package usecase

import (
	"context"
	"errors"

	"facility-booking/internal/data/entity"
	"facility-booking/internal/data/repository"
)

// Hand-written repository fakes. Each records the last status write so
// tests can assert on the exact flags sent to the store.

type statusWrite struct {
	id        int64
	approved  bool
	canceled  bool
	approveID *int64
}

type mockStudioRepo struct {
	reservation *entity.StudioReservation
	rows        []repository.StudioRow
	pages       [][]repository.StudioRow
	calendar    []repository.CalendarRow
	withUser    *repository.StudioRow
	nextID      int64
	lastStatus  *statusWrite
	createErr   error
	statusErr   error
	pageCalls   int
}

func (m *mockStudioRepo) Create(ctx context.Context, res *entity.StudioReservation, teamMembers, equipment []int64) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	res.ID = m.nextID
	return nil
}

func (m *mockStudioRepo) FindByID(ctx context.Context, id int64) (*entity.StudioReservation, error) {
	if m.reservation == nil || m.reservation.ID != id {
		return nil, nil
	}
	return m.reservation, nil
}

func (m *mockStudioRepo) SetStatus(ctx context.Context, id int64, approved, canceled bool, approveID *int64) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.lastStatus = &statusWrite{id: id, approved: approved, canceled: canceled, approveID: approveID}
	return nil
}

func (m *mockStudioRepo) ListWithUserNames(ctx context.Context, withStudioName bool) ([]repository.StudioRow, error) {
	return m.rows, nil
}

func (m *mockStudioRepo) ListPage(ctx context.Context, limit, offset int) ([]repository.StudioRow, error) {
	if m.pageCalls >= len(m.pages) {
		return nil, nil
	}
	page := m.pages[m.pageCalls]
	m.pageCalls++
	return page, nil
}

func (m *mockStudioRepo) FindWithUserName(ctx context.Context, id int64) (*repository.StudioRow, error) {
	return m.withUser, nil
}

func (m *mockStudioRepo) ListByStudio(ctx context.Context, studioID int64) ([]repository.CalendarRow, error) {
	return m.calendar, nil
}

func (m *mockStudioRepo) MarkPassed(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockCoworkRepo struct {
	reservation *entity.CoworkReservation
	rows        []repository.CoworkRow
	calendar    []repository.CalendarRow
	nextID      int64
	lastStatus  *statusWrite
}

func (m *mockCoworkRepo) Create(ctx context.Context, res *entity.CoworkReservation) error {
	m.nextID++
	res.ID = m.nextID
	return nil
}

func (m *mockCoworkRepo) FindByID(ctx context.Context, id int64) (*entity.CoworkReservation, error) {
	if m.reservation == nil || m.reservation.ID != id {
		return nil, nil
	}
	return m.reservation, nil
}

func (m *mockCoworkRepo) SetStatus(ctx context.Context, id int64, approved, canceled bool) error {
	m.lastStatus = &statusWrite{id: id, approved: approved, canceled: canceled}
	return nil
}

func (m *mockCoworkRepo) ListWithUserNames(ctx context.Context) ([]repository.CoworkRow, error) {
	return m.rows, nil
}

func (m *mockCoworkRepo) ListByTable(ctx context.Context, tableID int64) ([]repository.CalendarRow, error) {
	return m.calendar, nil
}

type mockMeetingRoomRepo struct {
	reservation *entity.MeetingRoomReservation
	rows        []repository.MeetingRoomRow
	calendar    []repository.CalendarRow
	nextID      int64
	lastStatus  *statusWrite
}

func (m *mockMeetingRoomRepo) Create(ctx context.Context, res *entity.MeetingRoomReservation) error {
	m.nextID++
	res.ID = m.nextID
	return nil
}

func (m *mockMeetingRoomRepo) FindByID(ctx context.Context, id int64) (*entity.MeetingRoomReservation, error) {
	if m.reservation == nil || m.reservation.ID != id {
		return nil, nil
	}
	return m.reservation, nil
}

func (m *mockMeetingRoomRepo) SetStatus(ctx context.Context, id int64, approved, canceled bool) error {
	m.lastStatus = &statusWrite{id: id, approved: approved, canceled: canceled}
	return nil
}

func (m *mockMeetingRoomRepo) ListWithUserNames(ctx context.Context) ([]repository.MeetingRoomRow, error) {
	return m.rows, nil
}

func (m *mockMeetingRoomRepo) ListByRoom(ctx context.Context, roomID int64) ([]repository.CalendarRow, error) {
	return m.calendar, nil
}

func (m *mockMeetingRoomRepo) MarkPassed(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockUserRepo struct {
	users map[int64]*entity.User
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) ListOptions(ctx context.Context, caps *repository.Capabilities) ([]entity.User, error) {
	var result []entity.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) AdminEmails(ctx context.Context) ([]string, error) {
	return nil, nil
}

type mockPlaceRepo struct {
	studio      *entity.Studio
	cowork      *entity.Cowork
	meetingRoom *entity.MeetingRoom
	places      map[int64]repository.PlaceInfo
}

func (m *mockPlaceRepo) FindStudio(ctx context.Context, id int64) (*entity.Studio, error) {
	return m.studio, nil
}

func (m *mockPlaceRepo) FindCowork(ctx context.Context, id int64) (*entity.Cowork, error) {
	return m.cowork, nil
}

func (m *mockPlaceRepo) FindMeetingRoom(ctx context.Context, id int64) (*entity.MeetingRoom, error) {
	return m.meetingRoom, nil
}

func (m *mockPlaceRepo) PlacesByReservation(ctx context.Context) (map[int64]repository.PlaceInfo, error) {
	return m.places, nil
}

type mockEquipmentRepo struct {
	links     map[int64][]repository.EquipmentLink
	available []entity.Equipment
}

func (m *mockEquipmentRepo) LinksByReservation(ctx context.Context, withImage bool) (map[int64][]repository.EquipmentLink, error) {
	return m.links, nil
}

func (m *mockEquipmentRepo) ListForReservation(ctx context.Context, reservationID int64, withImage bool) ([]repository.EquipmentLink, error) {
	return m.links[reservationID], nil
}

func (m *mockEquipmentRepo) ListAvailable(ctx context.Context, withImage bool) ([]entity.Equipment, error) {
	return m.available, nil
}

type mockTeamRepo struct {
	members   map[int64][]repository.TeamMember
	namedTeam *repository.NamedTeam
	teamUsers []repository.TeamMember
}

func (m *mockTeamRepo) MembersByReservation(ctx context.Context, caps *repository.Capabilities) (map[int64][]repository.TeamMember, error) {
	return m.members, nil
}

func (m *mockTeamRepo) MembersForReservation(ctx context.Context, reservationID int64, caps *repository.Capabilities) ([]repository.TeamMember, error) {
	return m.members[reservationID], nil
}

func (m *mockTeamRepo) NamedTeamForReservation(ctx context.Context, reservationID int64) (*repository.NamedTeam, error) {
	return m.namedTeam, nil
}

func (m *mockTeamRepo) NamedTeamMembers(ctx context.Context, teamID int64, caps *repository.Capabilities) ([]repository.TeamMember, error) {
	return m.teamUsers, nil
}

// mockMailer records every send; failErr makes each send fail.
type mockMailer struct {
	sent    []sentMail
	failErr error
}

type sentMail struct {
	to      []string
	subject string
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

var errSMTPDown = errors.New("smtp connect refused")

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
