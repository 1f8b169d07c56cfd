package record

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, recordService *RecordService) {
	recordController := &RecordController{RecordService: recordService}

	recordGroup := r.Group("/api")
	{
		recordGroup.GET("/records", recordController.GetAllRecords)
		recordGroup.GET("/records/:id", recordController.GetRecordByID)
		recordGroup.POST("/records", recordController.GetRecordsByLocationWithDetails)
		recordGroup.GET("/records/location/:id", recordController.GetRecordsByLocation)
		recordGroup.GET("/records/account/:id", recordController.GetRecordsByAccount)
		recordGroup.GET("/records/semester/:code", recordController.GetRecordsBySemester)
		recordGroup.GET("/records/export", recordController.ExportRecords)

		recordGroup.POST("/create", recordController.CreateRecord)
		recordGroup.PUT("/update/:id", recordController.UpdateRecord)
		recordGroup.DELETE("/delete/:id", recordController.DeleteRecord)
	}
}
