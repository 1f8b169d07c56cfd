package villager

import (
	"errors"
	"testing"

	"github.com/Kanahcian/kanahcian-backend/internal/record"
)

func TestCreateAndGetVillager(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	created, err := svc.CreateVillager(VillagerInput{Name: "Kacaw", Gender: "M", LocationID: intptr(3)})
	if err != nil {
		t.Fatalf("CreateVillager: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.GetVillagerByID(created.ID)
	if err != nil {
		t.Fatalf("GetVillagerByID: %v", err)
	}
	if got == nil || got.Name != "Kacaw" || got.LocationID == nil || *got.LocationID != 3 {
		t.Fatalf("unexpected villager: %+v", got)
	}
}

func TestGetVillagerByIDMissing(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	got, err := svc.GetVillagerByID(42)
	if err != nil {
		t.Fatalf("GetVillagerByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing id, got %+v", got)
	}
}

func TestGetVillagersPagination(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	names := []string{"A", "B", "C", "D", "E"}
	for _, n := range names {
		seedVillager(t, db, n, "F", nil)
	}

	page, err := svc.GetVillagers(1, 2)
	if err != nil {
		t.Fatalf("GetVillagers: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 villagers, got %d", len(page))
	}
	if page[0].Name != "B" || page[1].Name != "C" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestGetVillagersByLocation(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	seedVillager(t, db, "Here", "M", intptr(1))
	seedVillager(t, db, "There", "F", intptr(2))
	seedVillager(t, db, "Nowhere", "M", nil)

	got, err := svc.GetVillagersByLocation(1)
	if err != nil {
		t.Fatalf("GetVillagersByLocation: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Here" {
		t.Fatalf("unexpected villagers: %+v", got)
	}
}

func TestUpdateVillagerFullReplace(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	job := "farmer"
	v := Villager{Name: "Old", Gender: "M", Job: &job}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.UpdateVillager(v.ID, VillagerInput{Name: "New", Gender: "F"})
	if err != nil {
		t.Fatalf("UpdateVillager: %v", err)
	}
	if updated == nil {
		t.Fatalf("expected updated villager")
	}
	if updated.Name != "New" || updated.Gender != "F" {
		t.Fatalf("fields not replaced: %+v", updated)
	}
	// Omitted optional fields are cleared, not preserved
	if updated.Job != nil {
		t.Fatalf("expected job cleared, got %q", *updated.Job)
	}

	missing, err := svc.UpdateVillager(9999, VillagerInput{Name: "x", Gender: "M"})
	if err != nil {
		t.Fatalf("UpdateVillager missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing id")
	}
}

func TestDeleteVillagerCascades(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	a := seedVillager(t, db, "A", "M", nil)
	b := seedVillager(t, db, "B", "F", nil)
	rt := seedRelationshipType(t, db, "parent-child", "parent", "child")

	edges := []VillagerRelationship{
		{SourceVillagerID: a.ID, TargetVillagerID: b.ID, RelationshipTypeID: rt.ID},
		{SourceVillagerID: b.ID, TargetVillagerID: a.ID, RelationshipTypeID: rt.ID},
	}
	for i := range edges {
		if err := db.Create(&edges[i]).Error; err != nil {
			t.Fatalf("seed edge: %v", err)
		}
	}

	rec := record.Record{Semester: "113", LocationID: 1, AccountID: 1}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}
	if err := db.Create(&record.VillagerAtRecord{VillagerID: a.ID, RecordID: rec.ID}).Error; err != nil {
		t.Fatalf("seed association: %v", err)
	}

	deleted, err := svc.DeleteVillager(a.ID)
	if err != nil {
		t.Fatalf("DeleteVillager: %v", err)
	}
	if !deleted {
		t.Fatalf("expected deletion")
	}

	var edgeCount int64
	if err := db.Model(&VillagerRelationship{}).Count(&edgeCount).Error; err != nil {
		t.Fatalf("count edges: %v", err)
	}
	if edgeCount != 0 {
		t.Fatalf("expected all edges gone, got %d", edgeCount)
	}

	var assocCount int64
	if err := db.Model(&record.VillagerAtRecord{}).Count(&assocCount).Error; err != nil {
		t.Fatalf("count associations: %v", err)
	}
	if assocCount != 0 {
		t.Fatalf("expected record associations gone, got %d", assocCount)
	}

	// The record itself survives
	var recCount int64
	if err := db.Model(&record.Record{}).Count(&recCount).Error; err != nil {
		t.Fatalf("count records: %v", err)
	}
	if recCount != 1 {
		t.Fatalf("expected record to survive, got %d", recCount)
	}
}

func TestDeleteVillagerMissing(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	deleted, err := svc.DeleteVillager(1234)
	if err != nil {
		t.Fatalf("DeleteVillager: %v", err)
	}
	if deleted {
		t.Fatalf("expected false for missing id")
	}
}

func TestGetVillagerRelationshipsRoles(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	parent := seedVillager(t, db, "Parent", "F", nil)
	child := seedVillager(t, db, "Child", "M", nil)
	rt := seedRelationshipType(t, db, "parent-child", "parent", "child")

	created, err := svc.CreateRelationship(RelationshipInput{
		SourceVillagerID:   parent.ID,
		TargetVillagerID:   child.ID,
		RelationshipTypeID: rt.ID,
	})
	if err != nil {
		t.Fatalf("CreateRelationship: %v", err)
	}

	// Seen from the source side: role is the source role
	fromParent, err := svc.GetVillagerRelationships(parent.ID)
	if err != nil {
		t.Fatalf("GetVillagerRelationships(parent): %v", err)
	}
	if len(fromParent) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(fromParent))
	}
	if fromParent[0].RelationshipID != created.ID ||
		fromParent[0].RelativeID != child.ID ||
		fromParent[0].RelativeName != "Child" ||
		fromParent[0].Role != "parent" {
		t.Fatalf("unexpected source-side view: %+v", fromParent[0])
	}

	// Seen from the target side: role flips to the target role
	fromChild, err := svc.GetVillagerRelationships(child.ID)
	if err != nil {
		t.Fatalf("GetVillagerRelationships(child): %v", err)
	}
	if len(fromChild) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(fromChild))
	}
	if fromChild[0].RelativeID != parent.ID ||
		fromChild[0].RelativeName != "Parent" ||
		fromChild[0].Role != "child" {
		t.Fatalf("unexpected target-side view: %+v", fromChild[0])
	}
}

func TestCreateRelationshipValidation(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	a := seedVillager(t, db, "A", "M", nil)
	b := seedVillager(t, db, "B", "F", nil)
	rt := seedRelationshipType(t, db, "siblings", "sibling", "sibling")

	_, err := svc.CreateRelationship(RelationshipInput{
		SourceVillagerID: a.ID, TargetVillagerID: 999, RelationshipTypeID: rt.ID,
	})
	if !errors.Is(err, ErrVillagerNotFound) {
		t.Fatalf("expected ErrVillagerNotFound, got %v", err)
	}

	_, err = svc.CreateRelationship(RelationshipInput{
		SourceVillagerID: a.ID, TargetVillagerID: b.ID, RelationshipTypeID: 999,
	})
	if !errors.Is(err, ErrRelationshipTypeNotFound) {
		t.Fatalf("expected ErrRelationshipTypeNotFound, got %v", err)
	}

	if _, err = svc.CreateRelationship(RelationshipInput{
		SourceVillagerID: a.ID, TargetVillagerID: b.ID, RelationshipTypeID: rt.ID,
	}); err != nil {
		t.Fatalf("CreateRelationship: %v", err)
	}

	_, err = svc.CreateRelationship(RelationshipInput{
		SourceVillagerID: a.ID, TargetVillagerID: b.ID, RelationshipTypeID: rt.ID,
	})
	if !errors.Is(err, ErrDuplicateRelationship) {
		t.Fatalf("expected ErrDuplicateRelationship, got %v", err)
	}

	// Reverse direction is a different edge and is allowed
	if _, err = svc.CreateRelationship(RelationshipInput{
		SourceVillagerID: b.ID, TargetVillagerID: a.ID, RelationshipTypeID: rt.ID,
	}); err != nil {
		t.Fatalf("reverse edge: %v", err)
	}
}

func TestDeleteRelationship(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	a := seedVillager(t, db, "A", "M", nil)
	b := seedVillager(t, db, "B", "F", nil)
	rt := seedRelationshipType(t, db, "spouses", "spouse", "spouse")

	created, err := svc.CreateRelationship(RelationshipInput{
		SourceVillagerID: a.ID, TargetVillagerID: b.ID, RelationshipTypeID: rt.ID,
	})
	if err != nil {
		t.Fatalf("CreateRelationship: %v", err)
	}

	deleted, err := svc.DeleteRelationship(created.ID)
	if err != nil {
		t.Fatalf("DeleteRelationship: %v", err)
	}
	if !deleted {
		t.Fatalf("expected deletion")
	}

	deleted, err = svc.DeleteRelationship(created.ID)
	if err != nil {
		t.Fatalf("DeleteRelationship second call: %v", err)
	}
	if deleted {
		t.Fatalf("expected false for already-deleted edge")
	}
}

func TestGetRelationshipTypesSorted(t *testing.T) {
	db := newTestDB(t)
	svc := &VillagerService{DB: db}

	seedRelationshipType(t, db, "spouses", "spouse", "spouse")
	seedRelationshipType(t, db, "parent-child", "parent", "child")

	types, err := svc.GetRelationshipTypes()
	if err != nil {
		t.Fatalf("GetRelationshipTypes: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(types))
	}
	if types[0].Name != "parent-child" || types[1].Name != "spouses" {
		t.Fatalf("expected name order, got %q then %q", types[0].Name, types[1].Name)
	}
}
