package database

import (
	"gorm.io/gorm"

	"github.com/djblanc360/portfolio-backend/models"
)

type ProjectSkillRepo struct {
	db *gorm.DB
}

func NewProjectSkillRepo(db *gorm.DB) *ProjectSkillRepo {
	return &ProjectSkillRepo{db}
}

// Exists reports whether the association row is already present.
func (r *ProjectSkillRepo) Exists(projectID, skillID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectToSkill{}).
		Where("project_id = ? AND skill_id = ?", projectID, skillID).
		Count(&count).Error
	return count > 0, err
}

// Add attaches a skill to a project. Adding an association that is already
// present is a no-op, so the call is idempotent for the caller.
func (r *ProjectSkillRepo) Add(projectID, skillID int) error {
	exists, err := r.Exists(projectID, skillID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.db.Create(&models.ProjectToSkill{ProjectID: projectID, SkillID: skillID}).Error
}

// Remove detaches a skill from a project. Removing an absent association is
// a no-op.
func (r *ProjectSkillRepo) Remove(projectID, skillID int) error {
	return r.db.
		Where("project_id = ? AND skill_id = ?", projectID, skillID).
		Delete(&models.ProjectToSkill{}).Error
}
