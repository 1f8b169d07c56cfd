package record

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Kanahcian/kanahcian-backend/internal/util"

	"github.com/xuri/excelize/v2"
)

type ExportFilter struct {
	Semester   *string
	LocationID *int
	StartDate  *string
	EndDate    *string
}

var exportHeader = []string{
	"record_id", "semester", "date", "location_id", "account", "description", "students", "villagers",
}

// ExportRecords builds an xlsx or csv download of the visit history matching
// the filter, newest first, with participant names resolved.
func (rs *RecordService) ExportRecords(filter ExportFilter, format string) (contentType, filename string, out []byte, err error) {
	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(filter.StartDate, filter.EndDate)
	if err != nil {
		return "", "", nil, err
	}

	query := rs.DB.
		Table("records r").
		Select(`r.id, r.semester, r.date, r.photo, r.description, r.location_id,
			a.name AS account_name`).
		Joins("JOIN accounts a ON a.id = r.account_id")

	if filter.Semester != nil && strings.TrimSpace(*filter.Semester) != "" {
		query = query.Where("r.semester = ?", strings.TrimSpace(*filter.Semester))
	}
	if filter.LocationID != nil {
		query = query.Where("r.location_id = ?", *filter.LocationID)
	}
	if hasStart {
		query = query.Where("r.date >= ?", start)
	}
	if hasEnd {
		query = query.Where("r.date < ?", endExclusive)
	}

	var rows []recordDetailRow
	if err := query.Order("r.date DESC").Scan(&rows).Error; err != nil {
		return "", "", nil, err
	}

	details, err := rs.attachParticipants(rows)
	if err != nil {
		return "", "", nil, err
	}

	ts := time.Now().Format("20060102")
	if format == "csv" {
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		_ = w.Write(exportHeader)
		for _, d := range details {
			_ = w.Write([]string{
				strconv.Itoa(d.RecordID),
				d.Semester,
				d.Date,
				strconv.Itoa(d.Location),
				d.Account,
				deref(d.Description),
				strings.Join(d.Students, ", "),
				strings.Join(d.Villagers, ", "),
			})
		}
		w.Flush()
		return "text/csv; charset=utf-8", fmt.Sprintf("records_%s.csv", ts), buf.Bytes(), nil
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Records")

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	_ = f.SetSheetRow("Records", "A1", &header)

	for i, d := range details {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			d.RecordID,
			d.Semester,
			d.Date,
			d.Location,
			d.Account,
			deref(d.Description),
			strings.Join(d.Students, ", "),
			strings.Join(d.Villagers, ", "),
		}
		_ = f.SetSheetRow("Records", cell, &row)
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("records_%s.xlsx", ts), b.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
