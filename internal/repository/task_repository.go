package repository

import (
	"github.com/jestatech/jts-site/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByStatus orders HIGH before MEDIUM before LOW within one status.
func (r *GormTaskRepository) FindByStatus(status string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("status = ?", status).
		Order("CASE priority WHEN 'HIGH' THEN 0 WHEN 'MEDIUM' THEN 1 ELSE 2 END").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByPriority(priority string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("priority = ?", priority).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByAssignedTo(assignedTo string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("assigned_to = ?", assignedTo).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) FindByProjectID(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) Save(task *models.Task) error {
	return r.db.Save(task).Error
}

func (r *GormTaskRepository) DeleteByID(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

func (r *GormTaskRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormTaskRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}
