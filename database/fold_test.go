package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djblanc360/portfolio-backend/models"
)

func intPtr(i int) *int           { return &i }
func sPtr(s string) *string       { return &s }
func tPtr(t time.Time) *time.Time { return &t }

func projectRow(projectID int, slug string, skillID *int, skillName string) projectSkillRow {
	row := projectSkillRow{
		ID:    projectID,
		Title: "Project " + slug,
		Slug:  slug,
	}
	if skillID != nil {
		row.SkillID = skillID
		row.SkillName = sPtr(skillName)
		row.Level = intPtr(80)
		row.Categories = models.StringList{"Frontend"}
	}
	return row
}

func TestFoldProjectRows(t *testing.T) {
	t.Run("groups repeated parent rows into one project", func(t *testing.T) {
		rows := []projectSkillRow{
			projectRow(1, "alpha", intPtr(10), "React"),
			projectRow(1, "alpha", intPtr(11), "TypeScript"),
			projectRow(2, "beta", intPtr(10), "React"),
		}

		folded := foldProjectRows(rows)

		require.Len(t, folded, 2)
		assert.Equal(t, "alpha", folded[0].Slug)
		require.Len(t, folded[0].Skills, 2)
		assert.Equal(t, 10, folded[0].Skills[0].ID)
		assert.Equal(t, 11, folded[0].Skills[1].ID)
		require.Len(t, folded[1].Skills, 1)
	})

	t.Run("project with no skills gets an empty, non-nil list", func(t *testing.T) {
		rows := []projectSkillRow{projectRow(1, "alpha", nil, "")}

		folded := foldProjectRows(rows)

		require.Len(t, folded, 1)
		assert.NotNil(t, folded[0].Skills)
		assert.Empty(t, folded[0].Skills)
	})

	t.Run("duplicate association rows are deduplicated by skill id", func(t *testing.T) {
		// The join table has no uniqueness history, so a duplicate
		// association legitimately yields the same skill row twice.
		rows := []projectSkillRow{
			projectRow(1, "alpha", intPtr(10), "React"),
			projectRow(1, "alpha", intPtr(10), "React"),
		}

		folded := foldProjectRows(rows)

		require.Len(t, folded, 1)
		assert.Len(t, folded[0].Skills, 1)
	})

	t.Run("preserves row order of projects", func(t *testing.T) {
		rows := []projectSkillRow{
			projectRow(3, "newest", nil, ""),
			projectRow(1, "middle", nil, ""),
			projectRow(2, "oldest", nil, ""),
		}

		folded := foldProjectRows(rows)

		require.Len(t, folded, 3)
		assert.Equal(t, []string{"newest", "middle", "oldest"},
			[]string{folded[0].Slug, folded[1].Slug, folded[2].Slug})
	})

	t.Run("empty input folds to an empty slice", func(t *testing.T) {
		assert.Empty(t, foldProjectRows(nil))
	})
}

func skillRow(skillID int, name string, projectID *int, slug string) skillProjectRow {
	row := skillProjectRow{
		ID:         skillID,
		Name:       name,
		Categories: models.StringList{"Frontend"},
		Level:      80,
	}
	if projectID != nil {
		row.ProjectID = projectID
		row.ProjectSlug = sPtr(slug)
		row.ProjectTitle = sPtr("Project " + slug)
		row.Date = tPtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	}
	return row
}

func TestFoldSkillRows(t *testing.T) {
	t.Run("groups repeated skill rows into one skill", func(t *testing.T) {
		rows := []skillProjectRow{
			skillRow(10, "React", intPtr(1), "alpha"),
			skillRow(10, "React", intPtr(2), "beta"),
			skillRow(11, "TypeScript", nil, ""),
		}

		folded := foldSkillRows(rows)

		require.Len(t, folded, 2)
		assert.Equal(t, "React", folded[0].Name)
		require.Len(t, folded[0].Projects, 2)
		assert.Equal(t, "alpha", folded[0].Projects[0].Slug)
		assert.NotNil(t, folded[1].Projects)
		assert.Empty(t, folded[1].Projects)
	})

	t.Run("duplicate association rows are deduplicated by project id", func(t *testing.T) {
		rows := []skillProjectRow{
			skillRow(10, "React", intPtr(1), "alpha"),
			skillRow(10, "React", intPtr(1), "alpha"),
		}

		folded := foldSkillRows(rows)

		require.Len(t, folded, 1)
		assert.Len(t, folded[0].Projects, 1)
	})
}

func TestGroupSkillsByCategory(t *testing.T) {
	t.Run("two frontend skills and one backend skill", func(t *testing.T) {
		skills := []models.Skill{
			{ID: 1, Name: "React", Categories: models.StringList{"Frontend"}},
			{ID: 2, Name: "Tailwind CSS", Categories: models.StringList{"Frontend"}},
			{ID: 3, Name: "Node.js", Categories: models.StringList{"Backend"}},
		}

		grouped := GroupSkillsByCategory(skills)

		require.Len(t, grouped, 2)
		assert.Len(t, grouped["Frontend"], 2)
		assert.Len(t, grouped["Backend"], 1)
	})

	t.Run("multi-category skill lands in every bucket it names", func(t *testing.T) {
		skills := []models.Skill{
			{ID: 1, Name: "TypeScript", Categories: models.StringList{"Frontend", "Backend"}},
			{ID: 2, Name: "React", Categories: models.StringList{"Frontend"}},
		}

		grouped := GroupSkillsByCategory(skills)

		require.Len(t, grouped, 2)
		assert.Len(t, grouped["Frontend"], 2)
		require.Len(t, grouped["Backend"], 1)
		assert.Equal(t, "TypeScript", grouped["Backend"][0].Name)
	})

	t.Run("skill never appears twice inside one bucket", func(t *testing.T) {
		skills := []models.Skill{
			{ID: 1, Name: "React", Categories: models.StringList{"Frontend", "Frontend"}},
		}

		grouped := GroupSkillsByCategory(skills)

		assert.Len(t, grouped["Frontend"], 1)
	})

	t.Run("bucket contents keep input order", func(t *testing.T) {
		skills := []models.Skill{
			{ID: 1, Name: "AWS", Categories: models.StringList{"DevOps"}},
			{ID: 2, Name: "Docker", Categories: models.StringList{"DevOps"}},
		}

		grouped := GroupSkillsByCategory(skills)

		require.Len(t, grouped["DevOps"], 2)
		assert.Equal(t, "AWS", grouped["DevOps"][0].Name)
		assert.Equal(t, "Docker", grouped["DevOps"][1].Name)
	})

	t.Run("no categories means no buckets", func(t *testing.T) {
		skills := []models.Skill{{ID: 1, Name: "Orphan", Categories: models.StringList{}}}

		assert.Empty(t, GroupSkillsByCategory(skills))
	})
}
