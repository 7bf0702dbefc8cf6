package janitor

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Janitor reclaims orphaned rows in the background. Deleting a list or a
// user account is intentionally a single-document operation, so dependent
// tasks and lists linger until the next sweep.
type Janitor struct {
	db       *gorm.DB
	schedule string
	cron     *cron.Cron
}

func New(db *gorm.DB, schedule string) *Janitor {
	return &Janitor{
		db:       db,
		schedule: schedule,
	}
}

// Start runs one sweep immediately, then on the configured schedule.
func (j *Janitor) Start() error {
	j.Sweep()

	j.cron = cron.New()
	if _, err := j.cron.AddFunc(j.schedule, j.Sweep); err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("[Janitor] started (schedule: %s)", j.schedule)
	return nil
}

// Stop halts the schedule. A sweep already in flight finishes.
func (j *Janitor) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Sweep deletes tasks whose list is gone, then lists whose owner is gone.
// Tasks go first: sweeping lists first would strand their tasks until the
// next run.
func (j *Janitor) Sweep() {
	tasks := j.db.Exec("DELETE FROM tasks WHERE list_id NOT IN (SELECT id FROM lists)")
	if tasks.Error != nil {
		log.Printf("[Janitor] task sweep failed: %v", tasks.Error)
		return
	}

	lists := j.db.Exec("DELETE FROM lists WHERE owner_id NOT IN (SELECT id FROM users)")
	if lists.Error != nil {
		log.Printf("[Janitor] list sweep failed: %v", lists.Error)
		return
	}

	if tasks.RowsAffected > 0 || lists.RowsAffected > 0 {
		log.Printf("[Janitor] reclaimed %d orphaned tasks, %d orphaned lists",
			tasks.RowsAffected, lists.RowsAffected)
	}
}
