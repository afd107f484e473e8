package database

import (
	"gorm.io/gorm"

	"github.com/djblanc360/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *SkillRepo) GetDB() *gorm.DB {
	return r.db
}

const skillProjectSelect = `
SELECT s.id, s.name, s.categories, s.level, s.icon, s.color, s.created_at,
       p.id AS project_id, p.title AS project_title, p.slug AS project_slug,
       p.company AS project_company, p.date AS project_date,
       p.description AS project_description, p.case_study AS project_case_study,
       p.github_url AS project_github_url, p.demo_url AS project_demo_url,
       p.image_url AS project_image_url, p.featured AS project_featured,
       p.created_at AS project_created_at
FROM portfolio_skills s
LEFT JOIN portfolio_projects_to_skills ps ON ps.skill_id = s.id
LEFT JOIN portfolio_projects p ON p.id = ps.project_id`

// FindAll returns every skill, alphabetical by name.
func (r *SkillRepo) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("name ASC").Find(&skills).Error
	return skills, err
}

// FindAllWithProjects returns every skill with its projects, alphabetical by
// skill name.
func (r *SkillRepo) FindAllWithProjects() ([]models.SkillWithProjects, error) {
	var rows []skillProjectRow
	err := r.db.Raw(skillProjectSelect + `
ORDER BY s.name ASC, s.id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldSkillRows(rows), nil
}

// FindByID returns the bare skill row, or nil when absent.
func (r *SkillRepo) FindByID(id int) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// NameExists reports whether any skill already uses the name, compared
// case-insensitively.
func (r *SkillRepo) NameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new skill. Categories pass through the StringList codec on
// the way in, so the stored column is always a JSON array of strings.
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Delete removes a skill and its association rows in one transaction,
// association rows first.
func (r *SkillRepo) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", id).Delete(&models.ProjectToSkill{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Skill{}, id).Error
	})
}

// RenameCategory rewrites oldName to newName inside every skill's category
// list, preserving list order and untouched entries. The whole batch runs in
// one transaction: a failure partway through rolls everything back. Returns
// the number of skill rows rewritten.
func (r *SkillRepo) RenameCategory(oldName, newName string) (int, error) {
	updated := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var skills []models.Skill
		if err := tx.Find(&skills).Error; err != nil {
			return err
		}

		for _, skill := range skills {
			replaced, changed := skill.Categories.Replace(oldName, newName)
			if !changed {
				continue
			}
			err := tx.Model(&models.Skill{}).
				Where("id = ?", skill.ID).
				Update("categories", replaced).Error
			if err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
