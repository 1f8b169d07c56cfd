package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kanahcian/kanahcian-backend/internal/account"
	"github.com/Kanahcian/kanahcian-backend/internal/location"
	"github.com/Kanahcian/kanahcian-backend/internal/util"
	"github.com/Kanahcian/kanahcian-backend/internal/villager"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&Record{},
		&StudentAtRecord{},
		&VillagerAtRecord{},
		&location.Location{},
		&villager.Villager{},
		&account.Account{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupRecordRouter(svc *RecordService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc)
	return r
}

func doJSON(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

func seedLocation(t *testing.T, db *gorm.DB, name string) location.Location {
	t.Helper()
	loc := location.Location{Name: name, Latitude: 23.0, Longitude: 121.0}
	if err := db.Create(&loc).Error; err != nil {
		t.Fatalf("seed location %s: %v", name, err)
	}
	return loc
}

func seedAccount(t *testing.T, db *gorm.DB, name string) account.Account {
	t.Helper()
	acc := account.Account{Name: name, Password: "x", EntrySemester: "110"}
	if err := db.Create(&acc).Error; err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return acc
}

func seedRecordVillager(t *testing.T, db *gorm.DB, name string, locationID int) villager.Villager {
	t.Helper()
	v := villager.Villager{Name: name, Gender: "M", LocationID: &locationID}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed villager %s: %v", name, err)
	}
	return v
}

func seedRecord(t *testing.T, db *gorm.DB, semester, date string, locationID, accountID int) Record {
	t.Helper()
	d, err := util.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	r := Record{Semester: semester, Date: d, LocationID: locationID, AccountID: accountID}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}
	return r
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
