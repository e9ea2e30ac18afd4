package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the indexes the admin list/filter endpoints lean on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"projects", "idx_projects_status", "status"},
		{"projects", "idx_projects_created_at", "created_at"},

		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_priority", "priority"},
		{"tasks", "idx_tasks_project_id", "project_id"},
		{"tasks", "idx_tasks_created_at", "created_at"},

		{"billings", "idx_billings_status", "status"},
		{"billings", "idx_billings_project_id", "project_id"},

		{"contact_forms", "idx_contact_forms_is_read", "is_read"},
		{"contact_forms", "idx_contact_forms_service", "service"},
		{"contact_forms", "idx_contact_forms_created_at", "created_at"},
	}

	for _, idx := range indexes {
		if db.Dialector.Name() == "postgres" {
			var count int64
			err := db.Raw(`
				SELECT COUNT(*)
				FROM pg_indexes
				WHERE tablename = ? AND indexname = ?
			`, idx.table, idx.name).Count(&count).Error

			if err != nil {
				return fmt.Errorf("failed to check index %s: %w", idx.name, err)
			}

			if count > 0 {
				continue
			}
		} else if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
