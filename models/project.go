package models

import "time"

// Project represents a portfolio project. The slug is the external lookup
// key for single-project retrieval and must be unique.
type Project struct {
	ID          int        `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Company     string     `json:"company" db:"company" gorm:"type:text;not null"`
	Date        *time.Time `json:"date" db:"date" gorm:"type:timestamp"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null"`
	CaseStudy   string     `json:"caseStudy" db:"case_study" gorm:"column:case_study;type:text"`
	GithubURL   *string    `json:"githubUrl,omitempty" db:"github_url" gorm:"column:github_url;type:text"`
	DemoURL     *string    `json:"demoUrl,omitempty" db:"demo_url" gorm:"column:demo_url;type:text"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url" gorm:"column:image_url;type:text"`
	Featured    int        `json:"featured" db:"featured" gorm:"type:integer;not null;default:0"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (Project) TableName() string {
	return "portfolio_projects"
}

// ProjectWithSkills is the denormalized read shape: a project carrying every
// skill associated with it through the join table.
type ProjectWithSkills struct {
	Project
	Skills []Skill `json:"skills"`
}
