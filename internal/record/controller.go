package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Kanahcian/kanahcian-backend/internal/response"
	"github.com/Kanahcian/kanahcian-backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecordController struct {
	RecordService *RecordService
}

func (rc *RecordController) GetAllRecords(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		response.BadRequest(c, "invalid skip parameter")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 {
		response.BadRequest(c, "invalid limit parameter")
		return
	}

	records, err := rc.RecordService.GetAllRecords(skip, limit)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(records) == 0 {
		response.NotFound(c, "no records found")
		return
	}
	response.Success(c, toResponses(records))
}

func (rc *RecordController) GetRecordByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid record id")
		return
	}

	r, err := rc.RecordService.GetRecordByID(id)
	if err != nil {
		response.Internal(c)
		return
	}
	if r == nil {
		response.NotFound(c, fmt.Sprintf("record %d not found", id))
		return
	}
	response.Success(c, toResponse(*r))
}

// GetRecordsByLocationWithDetails serves the enriched visit history: POST with
// a locationid body, responsible visitor by name, participant name lists.
func (rc *RecordController) GetRecordsByLocationWithDetails(c *gin.Context) {
	var input LocationIDInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	details, err := rc.RecordService.GetRecordsByLocationWithDetails(input.LocationID)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(details) == 0 {
		response.NotFound(c, fmt.Sprintf("no records found for location %d", input.LocationID))
		return
	}
	response.Success(c, details)
}

func (rc *RecordController) GetRecordsByLocation(c *gin.Context) {
	locationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid location id")
		return
	}

	records, err := rc.RecordService.GetRecordsByLocation(locationID)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(records) == 0 {
		response.NotFound(c, fmt.Sprintf("no records found for location %d", locationID))
		return
	}
	response.Success(c, toResponses(records))
}

func (rc *RecordController) GetRecordsByAccount(c *gin.Context) {
	accountID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid account id")
		return
	}

	records, err := rc.RecordService.GetRecordsByAccount(accountID)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(records) == 0 {
		response.NotFound(c, fmt.Sprintf("no records found for account %d", accountID))
		return
	}
	response.Success(c, toResponses(records))
}

func (rc *RecordController) GetRecordsBySemester(c *gin.Context) {
	semester := c.Param("code")

	records, err := rc.RecordService.GetRecordsBySemester(semester)
	if err != nil {
		response.Internal(c)
		return
	}
	if len(records) == 0 {
		response.NotFound(c, fmt.Sprintf("no records found for semester %s", semester))
		return
	}
	response.Success(c, toResponses(records))
}

func (rc *RecordController) CreateRecord(c *gin.Context) {
	var input RecordCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := rc.RecordService.CreateRecord(input)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			response.BadRequest(c, "location not found")
		case errors.Is(err, ErrAccountNotFound):
			response.BadRequest(c, "account not found")
		case errors.Is(err, util.ErrInvalidDate):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c)
		}
		return
	}

	detail, err := rc.RecordService.GetRecordDetail(created.ID)
	if err != nil || detail == nil {
		response.Internal(c)
		return
	}
	response.Created(c, detail)
}

func (rc *RecordController) UpdateRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid record id")
		return
	}

	var input RecordUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := rc.RecordService.UpdateRecord(id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrLocationNotFound):
			response.BadRequest(c, "location not found")
		case errors.Is(err, ErrAccountNotFound):
			response.BadRequest(c, "account not found")
		case errors.Is(err, util.ErrInvalidDate):
			response.BadRequest(c, err.Error())
		default:
			response.Internal(c)
		}
		return
	}
	if updated == nil {
		response.NotFound(c, fmt.Sprintf("record %d not found", id))
		return
	}

	detail, err := rc.RecordService.GetRecordDetail(id)
	if err != nil || detail == nil {
		response.Internal(c)
		return
	}
	response.Success(c, detail)
}

func (rc *RecordController) DeleteRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid record id")
		return
	}

	deleted, err := rc.RecordService.DeleteRecord(id)
	if err != nil {
		response.Internal(c)
		return
	}
	if !deleted {
		response.NotFound(c, fmt.Sprintf("record %d not found", id))
		return
	}
	response.Message(c, fmt.Sprintf("record %d deleted", id))
}

func (rc *RecordController) ExportRecords(c *gin.Context) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "excel")))
	if format != "excel" && format != "csv" {
		response.BadRequest(c, "format must be excel or csv")
		return
	}

	var filter ExportFilter
	if semester := c.Query("semester"); semester != "" {
		filter.Semester = &semester
	}
	if raw := c.Query("location_id"); raw != "" {
		locationID, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid location_id parameter")
			return
		}
		filter.LocationID = &locationID
	}
	if startDate := c.Query("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := c.Query("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	contentType, filename, data, err := rc.RecordService.ExportRecords(filter, format)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Internal(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, contentType, data)
}

func toResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	return out
}
