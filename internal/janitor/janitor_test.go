package janitor

import (
	"fmt"
	"testing"

	authdomain "mtasks-backend/internal/auth/domain"
	listdomain "mtasks-backend/internal/list/domain"
	taskdomain "mtasks-backend/internal/task/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &listdomain.List{}, &taskdomain.Task{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestSweep_OrphanedTasks(t *testing.T) {
	db := newTestDB(t)

	db.Create(&authdomain.User{ID: "u1", Name: "T", Email: "t@x.com", Password: "h"})
	db.Create(&listdomain.List{ID: "l1", Title: "Work", OwnerID: "u1"})
	db.Create(&taskdomain.Task{ID: "t1", ListID: "l1", Title: "keep", Priority: taskdomain.PriorityMedium})
	db.Create(&taskdomain.Task{ID: "t2", ListID: "gone", Title: "orphan", Priority: taskdomain.PriorityMedium})

	New(db, "@every 1h").Sweep()

	if n := count(t, db, &taskdomain.Task{}); n != 1 {
		t.Errorf("Expected 1 task after sweep, got %d", n)
	}
	var survivor taskdomain.Task
	if err := db.First(&survivor, "id = ?", "t1").Error; err != nil {
		t.Errorf("Task with a live list was swept: %v", err)
	}
}

func TestSweep_DeletedUser(t *testing.T) {
	db := newTestDB(t)

	db.Create(&authdomain.User{ID: "u1", Name: "T", Email: "t@x.com", Password: "h"})
	db.Create(&listdomain.List{ID: "l1", Title: "Work", OwnerID: "u1"})
	db.Create(&taskdomain.Task{ID: "t1", ListID: "l1", Title: "x", Priority: taskdomain.PriorityMedium})
	db.Delete(&authdomain.User{}, "id = ?", "u1")

	j := New(db, "@every 1h")

	// The first sweep runs tasks before lists, so the task survives until
	// its list has been reclaimed.
	j.Sweep()
	if n := count(t, db, &listdomain.List{}); n != 0 {
		t.Errorf("Expected 0 lists after first sweep, got %d", n)
	}

	j.Sweep()
	if n := count(t, db, &taskdomain.Task{}); n != 0 {
		t.Errorf("Expected 0 tasks after second sweep, got %d", n)
	}
}

func TestSweep_NoOrphans(t *testing.T) {
	db := newTestDB(t)

	db.Create(&authdomain.User{ID: "u1", Name: "T", Email: "t@x.com", Password: "h"})
	db.Create(&listdomain.List{ID: "l1", Title: "Work", OwnerID: "u1"})
	db.Create(&taskdomain.Task{ID: "t1", ListID: "l1", Title: "x", Priority: taskdomain.PriorityMedium})

	New(db, "@every 1h").Sweep()

	if n := count(t, db, &listdomain.List{}); n != 1 {
		t.Errorf("Sweep removed a live list")
	}
	if n := count(t, db, &taskdomain.Task{}); n != 1 {
		t.Errorf("Sweep removed a live task")
	}
}
