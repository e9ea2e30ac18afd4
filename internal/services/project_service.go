package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jestatech/jts-site/internal/dto"
	"github.com/jestatech/jts-site/internal/models"
	"github.com/jestatech/jts-site/internal/repository"
	"github.com/jestatech/jts-site/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectHasNoFiles   = errors.New("no files found in project")
	ErrFileNotInProject    = errors.New("file not found in project")
	ErrInvalidFilePathList = errors.New("invalid file paths format")
)

// ProjectService wraps project persistence and the project file lifecycle.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	store       *storage.Store
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, store *storage.Store) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		store:       store,
	}
}

// GetAllProjects returns every project.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// GetLatestProjects returns projects newest first.
func (s *ProjectService) GetLatestProjects() ([]models.Project, error) {
	return s.projectRepo.FindLatest()
}

// GetProjectByID returns one project.
func (s *ProjectService) GetProjectByID(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProjectsByStatus returns projects with one status.
func (s *ProjectService) GetProjectsByStatus(status models.ProjectStatus) ([]models.Project, error) {
	return s.projectRepo.FindByStatus(status)
}

// CreateProject persists a new project.
func (s *ProjectService) CreateProject(project models.Project) (*models.Project, error) {
	if err := s.projectRepo.Save(&project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}

// UpdateProject applies a patch to a stored project and persists the result.
func (s *ProjectService) UpdateProject(id uint64, patch dto.ProjectPatch) (*models.Project, error) {
	project, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(project)

	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project by ID.
func (s *ProjectService) DeleteProject(id uint64) error {
	exists, err := s.projectRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}
	return s.projectRepo.DeleteByID(id)
}

// RemoveFileResult reports the outcome of a file removal.
type RemoveFileResult struct {
	Project        *models.Project
	RemainingFiles []string
	FileDeleted    bool
}

// RemoveFile takes one web path out of a project's stored file list. The
// physical delete is best-effort: the database update proceeds even when the
// file cannot be removed. When the deleted path was the primary image, the
// next remaining path is promoted, or the image is cleared.
func (s *ProjectService) RemoveFile(projectID uint64, filePath string) (*RemoveFileResult, error) {
	project, err := s.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	if project.FilePaths == nil || *project.FilePaths == "" {
		return nil, ErrProjectHasNoFiles
	}

	var fileList []string
	if err := json.Unmarshal([]byte(*project.FilePaths), &fileList); err != nil {
		return nil, ErrInvalidFilePathList
	}

	idx := -1
	for i, p := range fileList {
		if p == filePath {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrFileNotInProject
	}

	fileDeleted := true
	if err := s.store.Delete(filePath); err != nil {
		log.Printf("failed to delete file from filesystem: %v", err)
		fileDeleted = false
	}

	fileList = append(fileList[:idx], fileList[idx+1:]...)

	if len(fileList) == 0 {
		project.FilePaths = nil
	} else {
		encoded, err := json.Marshal(fileList)
		if err != nil {
			return nil, fmt.Errorf("failed to encode file paths: %w", err)
		}
		str := string(encoded)
		project.FilePaths = &str
	}

	if project.ImageURL != nil && *project.ImageURL == filePath {
		if len(fileList) == 0 {
			project.ImageURL = nil
		} else {
			promoted := fileList[0]
			project.ImageURL = &promoted
		}
	}

	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &RemoveFileResult{
		Project:        project,
		RemainingFiles: fileList,
		FileDeleted:    fileDeleted,
	}, nil
}
