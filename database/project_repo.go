package database

import (
	"gorm.io/gorm"

	"github.com/djblanc360/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

const projectSkillSelect = `
SELECT p.id, p.title, p.slug, p.company, p.date, p.description, p.case_study,
       p.github_url, p.demo_url, p.image_url, p.featured, p.created_at,
       s.id AS skill_id, s.name AS skill_name, s.categories AS skill_categories,
       s.level AS skill_level, s.icon AS skill_icon, s.color AS skill_color,
       s.created_at AS skill_created_at
FROM portfolio_projects p
LEFT JOIN portfolio_projects_to_skills ps ON ps.project_id = p.id
LEFT JOIN portfolio_skills s ON s.id = ps.skill_id`

// FindAll returns every project with its skills, newest date first.
func (r *ProjectRepo) FindAll() ([]models.ProjectWithSkills, error) {
	var rows []projectSkillRow
	err := r.db.Raw(projectSkillSelect + `
ORDER BY p.date DESC NULLS LAST, p.id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldProjectRows(rows), nil
}

// FindFeatured returns projects flagged as featured, newest date first.
func (r *ProjectRepo) FindFeatured() ([]models.ProjectWithSkills, error) {
	var rows []projectSkillRow
	err := r.db.Raw(projectSkillSelect + `
WHERE p.featured = 1
ORDER BY p.date DESC NULLS LAST, p.id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldProjectRows(rows), nil
}

// FindBySlug returns one project with its skills, or nil when no project has
// that slug.
func (r *ProjectRepo) FindBySlug(slug string) (*models.ProjectWithSkills, error) {
	var rows []projectSkillRow
	err := r.db.Raw(projectSkillSelect+`
WHERE p.slug = ?`, slug).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	folded := foldProjectRows(rows)
	if len(folded) == 0 {
		return nil, nil
	}
	return &folded[0], nil
}

// FindByID returns the bare project row, or nil when absent.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists reports whether any project already uses the slug, compared
// case-insensitively.
func (r *ProjectRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("LOWER(slug) = LOWER(?)", slug).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new project. The database assigns id and created_at.
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies a partial update: only the columns present in the map are
// touched, absent fields keep their stored values.
func (r *ProjectRepo) Update(id int, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project and its association rows in one transaction.
// Association rows go first so the owning row never leaves orphans behind.
func (r *ProjectRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectToSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}
