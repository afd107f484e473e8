package models

// ProjectToSkill is an association row linking a project to a skill. The pair
// is the whole identity; the composite primary key keeps duplicate
// associations out of the table.
type ProjectToSkill struct {
	ProjectID int `json:"projectId" db:"project_id" gorm:"column:project_id;primaryKey;not null;index:idx_projects_to_skills_project_id"`
	SkillID   int `json:"skillId" db:"skill_id" gorm:"column:skill_id;primaryKey;not null;index:idx_projects_to_skills_skill_id"`
}

func (ProjectToSkill) TableName() string {
	return "portfolio_projects_to_skills"
}
