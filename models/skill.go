package models

import "time"

// Skill represents a single skill shown on the portfolio. A skill may belong
// to several categories at once; the list is persisted as a JSON array inside
// a text column (see StringList).
type Skill struct {
	ID         int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name       string     `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Categories StringList `json:"categories" db:"categories" gorm:"type:text;not null"`
	Level      int        `json:"level" db:"level" gorm:"type:integer;not null"`
	Icon       *string    `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Color      *string    `json:"color,omitempty" db:"color" gorm:"type:text"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Skill) TableName() string {
	return "portfolio_skills"
}

// SkillWithProjects is the denormalized read shape: a skill carrying every
// project associated with it through the join table.
type SkillWithProjects struct {
	Skill
	Projects []Project `json:"projects"`
}
