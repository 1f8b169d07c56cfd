package villager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kanahcian/kanahcian-backend/internal/record"

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
		&Villager{},
		&RelationshipType{},
		&VillagerRelationship{},
		&record.Record{},
		&record.VillagerAtRecord{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupVillagerRouter(svc *VillagerService) *gin.Engine {
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

// seedVillager inserts directly, bypassing the service, so tests control the
// exact row.
func seedVillager(t *testing.T, db *gorm.DB, name, gender string, locationID *int) Villager {
	t.Helper()
	v := Villager{Name: name, Gender: gender, LocationID: locationID}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed villager %s: %v", name, err)
	}
	return v
}

func seedRelationshipType(t *testing.T, db *gorm.DB, name, sourceRole, targetRole string) RelationshipType {
	t.Helper()
	rt := RelationshipType{Name: name, SourceRole: sourceRole, TargetRole: targetRole}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seed relationship type %s: %v", name, err)
	}
	return rt
}

func intptr(i int) *int { return &i }
