package database

import (
	"time"

	"github.com/djblanc360/portfolio-backend/models"
)

// The left joins below legitimately repeat the parent row once per
// association, so the flat row set has to be folded back into nested shapes.
// Rows are consumed in query order; the first sight of a parent id seeds its
// entry, and children are appended with an id-dedup check since the join
// table carries no application-level uniqueness history.

// projectSkillRow is one row of projects left-joined through the association
// table to skills. Skill columns are nullable: a project with no skills
// appears as a single row with a null skill id.
type projectSkillRow struct {
	ID          int               `gorm:"column:id"`
	Title       string            `gorm:"column:title"`
	Slug        string            `gorm:"column:slug"`
	Company     string            `gorm:"column:company"`
	Date        *time.Time        `gorm:"column:date"`
	Description string            `gorm:"column:description"`
	CaseStudy   string            `gorm:"column:case_study"`
	GithubURL   *string           `gorm:"column:github_url"`
	DemoURL     *string           `gorm:"column:demo_url"`
	ImageURL    *string           `gorm:"column:image_url"`
	Featured    int               `gorm:"column:featured"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
	SkillID     *int              `gorm:"column:skill_id"`
	SkillName   *string           `gorm:"column:skill_name"`
	Categories  models.StringList `gorm:"column:skill_categories"`
	Level       *int              `gorm:"column:skill_level"`
	Icon        *string           `gorm:"column:skill_icon"`
	Color       *string           `gorm:"column:skill_color"`
	SkillAdded  *time.Time        `gorm:"column:skill_created_at"`
}

func (r projectSkillRow) project() models.Project {
	return models.Project{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Company:     r.Company,
		Date:        r.Date,
		Description: r.Description,
		CaseStudy:   r.CaseStudy,
		GithubURL:   r.GithubURL,
		DemoURL:     r.DemoURL,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
		CreatedAt:   r.CreatedAt,
	}
}

func (r projectSkillRow) skill() (models.Skill, bool) {
	if r.SkillID == nil {
		return models.Skill{}, false
	}
	skill := models.Skill{
		ID:         *r.SkillID,
		Categories: r.Categories,
		Icon:       r.Icon,
		Color:      r.Color,
	}
	if r.SkillName != nil {
		skill.Name = *r.SkillName
	}
	if r.Level != nil {
		skill.Level = *r.Level
	}
	if r.SkillAdded != nil {
		skill.CreatedAt = *r.SkillAdded
	}
	return skill, true
}

// foldProjectRows groups flat joined rows into projects with nested skill
// lists. Insertion order of the map entries follows row order, so the fold
// preserves whatever ordering the query established.
func foldProjectRows(rows []projectSkillRow) []models.ProjectWithSkills {
	index := make(map[int]int, len(rows))
	folded := make([]models.ProjectWithSkills, 0, len(rows))

	for _, row := range rows {
		at, seen := index[row.ID]
		if !seen {
			at = len(folded)
			index[row.ID] = at
			folded = append(folded, models.ProjectWithSkills{
				Project: row.project(),
				Skills:  []models.Skill{},
			})
		}

		skill, ok := row.skill()
		if !ok {
			continue
		}
		if !containsSkill(folded[at].Skills, skill.ID) {
			folded[at].Skills = append(folded[at].Skills, skill)
		}
	}

	return folded
}

// skillProjectRow is the mirror join: skills left-joined through the
// association table to projects.
type skillProjectRow struct {
	ID           int               `gorm:"column:id"`
	Name         string            `gorm:"column:name"`
	Categories   models.StringList `gorm:"column:categories"`
	Level        int               `gorm:"column:level"`
	Icon         *string           `gorm:"column:icon"`
	Color        *string           `gorm:"column:color"`
	CreatedAt    time.Time         `gorm:"column:created_at"`
	ProjectID    *int              `gorm:"column:project_id"`
	ProjectTitle *string           `gorm:"column:project_title"`
	ProjectSlug  *string           `gorm:"column:project_slug"`
	Company      *string           `gorm:"column:project_company"`
	Date         *time.Time        `gorm:"column:project_date"`
	Description  *string           `gorm:"column:project_description"`
	CaseStudy    *string           `gorm:"column:project_case_study"`
	GithubURL    *string           `gorm:"column:project_github_url"`
	DemoURL      *string           `gorm:"column:project_demo_url"`
	ImageURL     *string           `gorm:"column:project_image_url"`
	Featured     *int              `gorm:"column:project_featured"`
	ProjectAdded *time.Time        `gorm:"column:project_created_at"`
}

func (r skillProjectRow) skill() models.Skill {
	return models.Skill{
		ID:         r.ID,
		Name:       r.Name,
		Categories: r.Categories,
		Level:      r.Level,
		Icon:       r.Icon,
		Color:      r.Color,
		CreatedAt:  r.CreatedAt,
	}
}

func (r skillProjectRow) project() (models.Project, bool) {
	if r.ProjectID == nil {
		return models.Project{}, false
	}
	project := models.Project{
		ID:        *r.ProjectID,
		Date:      r.Date,
		GithubURL: r.GithubURL,
		DemoURL:   r.DemoURL,
		ImageURL:  r.ImageURL,
	}
	if r.ProjectTitle != nil {
		project.Title = *r.ProjectTitle
	}
	if r.ProjectSlug != nil {
		project.Slug = *r.ProjectSlug
	}
	if r.Company != nil {
		project.Company = *r.Company
	}
	if r.Description != nil {
		project.Description = *r.Description
	}
	if r.CaseStudy != nil {
		project.CaseStudy = *r.CaseStudy
	}
	if r.Featured != nil {
		project.Featured = *r.Featured
	}
	if r.ProjectAdded != nil {
		project.CreatedAt = *r.ProjectAdded
	}
	return project, true
}

// foldSkillRows groups flat joined rows into skills with nested project lists.
func foldSkillRows(rows []skillProjectRow) []models.SkillWithProjects {
	index := make(map[int]int, len(rows))
	folded := make([]models.SkillWithProjects, 0, len(rows))

	for _, row := range rows {
		at, seen := index[row.ID]
		if !seen {
			at = len(folded)
			index[row.ID] = at
			folded = append(folded, models.SkillWithProjects{
				Skill:    row.skill(),
				Projects: []models.Project{},
			})
		}

		project, ok := row.project()
		if !ok {
			continue
		}
		if !containsProject(folded[at].Projects, project.ID) {
			folded[at].Projects = append(folded[at].Projects, project)
		}
	}

	return folded
}

// GroupSkillsByCategory buckets skills by every category they carry. A skill
// with N categories lands in N buckets, deduplicated by id within each
// bucket. Bucket contents keep the order of the input slice.
func GroupSkillsByCategory(skills []models.Skill) map[string][]models.Skill {
	grouped := make(map[string][]models.Skill)
	for _, skill := range skills {
		for _, category := range skill.Categories {
			if containsSkill(grouped[category], skill.ID) {
				continue
			}
			grouped[category] = append(grouped[category], skill)
		}
	}
	return grouped
}

func containsSkill(skills []models.Skill, id int) bool {
	for _, s := range skills {
		if s.ID == id {
			return true
		}
	}
	return false
}

func containsProject(projects []models.Project, id int) bool {
	for _, p := range projects {
		if p.ID == id {
			return true
		}
	}
	return false
}
