package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"facility-booking/internal/data/repository"
	"facility-booking/pkg/utils"

	"go.uber.org/zap"
)

const exportBatchSize = 500

var defaultExportFields = []string{"user_name", "date", "start", "end", "type"}

// allowed export columns; anything else renders as an empty cell.
var exportFieldSet = map[string]struct{}{
	"id": {}, "user_name": {}, "date": {}, "day": {}, "start": {}, "end": {},
	"type": {}, "title": {}, "description": {}, "approved": {}, "canceled": {},
	"passed": {}, "start_signed": {}, "end_signed": {}, "place_name": {},
	"place_type": {}, "created_at": {}, "updated_at": {},
}

// ExportService streams the studio reservation list as a spreadsheet
// friendly CSV: semicolon delimited, UTF-8 BOM, batched reads so a big
// table never sits in memory at once.
type ExportService interface {
	Stream(ctx context.Context, w io.Writer, fieldsParam string) error
	Filename() string
}

type exportService struct {
	repo *repository.Repository
	caps *repository.Capabilities
	log  *zap.Logger
}

func NewExportService(repo *repository.Repository, caps *repository.Capabilities, log *zap.Logger) ExportService {
	return &exportService{
		repo: repo,
		caps: caps,
		log:  log.With(zap.String("service", "export")),
	}
}

// parseFields keeps the caller's order. Blank or all-unknown input falls
// back to the default column set.
func parseFields(fieldsParam string) []string {
	raw := strings.Split(fieldsParam, ",")
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return defaultExportFields
	}
	return fields
}

func (s *exportService) Stream(ctx context.Context, w io.Writer, fieldsParam string) error {
	fields := parseFields(fieldsParam)

	// BOM so spreadsheet apps pick up the encoding.
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var placeMap map[int64]repository.PlaceInfo
	if s.caps.Places && needsPlace(fields) {
		var err error
		if placeMap, err = s.repo.Place.PlacesByReservation(ctx); err != nil {
			return fmt.Errorf("load place map: %w", err)
		}
	}

	offset := 0
	for {
		rows, err := s.repo.Studio.ListPage(ctx, exportBatchSize, offset)
		if err != nil {
			return fmt.Errorf("export batch at offset %d: %w", offset, err)
		}
		if len(rows) == 0 {
			break
		}

		for _, row := range rows {
			record := make([]string, len(fields))
			for i, field := range fields {
				// Every cell is collapsed so a row never spans lines
				record[i] = utils.CollapseNewlines(exportValue(field, &row, placeMap))
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
		}

		if len(rows) < exportBatchSize {
			break
		}
		offset += exportBatchSize
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	s.log.Info("export streamed", zap.Strings("fields", fields))
	return nil
}

func (s *exportService) Filename() string {
	return "reservations_export_" + time.Now().Format("2006-01-02_15-04-05") + ".csv"
}

func needsPlace(fields []string) bool {
	for _, f := range fields {
		if f == "place_name" || f == "place_type" {
			return true
		}
	}
	return false
}

func exportValue(field string, row *repository.StudioRow, placeMap map[int64]repository.PlaceInfo) string {
	if _, ok := exportFieldSet[field]; !ok {
		return ""
	}

	switch field {
	case "id":
		return strconv.FormatInt(row.ID, 10)
	case "user_name":
		return derefString(row.UserName)
	case "date", "day":
		return row.Day
	case "start":
		return row.Start
	case "end":
		return row.End
	case "type":
		return "studio"
	case "title":
		return row.Title
	case "description":
		return row.Description
	case "approved":
		return utils.YesNo(row.Approved)
	case "canceled":
		return utils.YesNo(row.Canceled)
	case "passed":
		return utils.YesNo(row.Passed)
	case "start_signed":
		return utils.YesNo(row.StartSigned)
	case "end_signed":
		return utils.YesNo(row.EndSigned)
	case "place_name":
		if place, ok := placeMap[row.ID]; ok {
			return derefString(place.Name)
		}
		return ""
	case "place_type":
		if place, ok := placeMap[row.ID]; ok {
			return derefString(place.PlaceType)
		}
		return ""
	case "created_at":
		return utils.FormatTimestamp(row.CreatedAt)
	case "updated_at":
		return utils.FormatTimestamp(row.UpdatedAt)
	}
	return ""
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
