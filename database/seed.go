package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/djblanc360/portfolio-backend/models"
)

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// Seed loads demo content. It is a no-op when any project already exists, so
// hitting the seed endpoint twice cannot duplicate rows.
func Seed(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	skills := []models.Skill{
		{Name: "React", Categories: models.StringList{"Frontend"}, Level: 90, Icon: strPtr("react"), Color: strPtr("from-[#61DAFB] to-[#282C34]")},
		{Name: "TypeScript", Categories: models.StringList{"Frontend", "Backend"}, Level: 85, Icon: strPtr("typescript"), Color: strPtr("from-[#3178C6] to-[#235A97]")},
		{Name: "Next.js", Categories: models.StringList{"Frontend", "Backend"}, Level: 85, Icon: strPtr("nextjs"), Color: strPtr("from-[#000000] to-[#333333]")},
		{Name: "Tailwind CSS", Categories: models.StringList{"Frontend"}, Level: 90, Icon: strPtr("tailwind"), Color: strPtr("from-[#38B2AC] to-[#0694A2]")},
		{Name: "Node.js", Categories: models.StringList{"Backend"}, Level: 85, Icon: strPtr("nodejs"), Color: strPtr("from-[#339933] to-[#1F6B1F]")},
		{Name: "GraphQL", Categories: models.StringList{"Backend"}, Level: 75, Icon: strPtr("graphql"), Color: strPtr("from-[#E10098] to-[#B3007A]")},
		{Name: "PostgreSQL", Categories: models.StringList{"Backend", "Database"}, Level: 75, Icon: strPtr("postgresql"), Color: strPtr("from-[#336791] to-[#254B6B]")},
		{Name: "AWS", Categories: models.StringList{"DevOps"}, Level: 70, Icon: strPtr("aws"), Color: strPtr("from-[#FF9900] to-[#CC7A00]")},
		{Name: "Docker", Categories: models.StringList{"DevOps"}, Level: 75, Icon: strPtr("docker"), Color: strPtr("from-[#2496ED] to-[#1D78BE]")},
	}

	projects := []models.Project{
		{
			Title:       "Enchanted E-Commerce",
			Slug:        "enchanted-ecommerce",
			Company:     "Arcane Technologies",
			Date:        datePtr(2024, time.March, 15),
			Description: "A full-stack e-commerce platform with a headless storefront and a custom checkout flow.",
			CaseStudy:   "## Overview\n\nBuilt a storefront from scratch with server-rendered product pages and an optimistic cart.",
			GithubURL:   strPtr("https://github.com/example/enchanted-ecommerce"),
			DemoURL:     strPtr("https://enchanted-ecommerce.example.com"),
			Featured:    1,
		},
		{
			Title:       "Spellbound Dashboard",
			Slug:        "spellbound-dashboard",
			Company:     "Mystic Web Solutions",
			Date:        datePtr(2023, time.November, 2),
			Description: "An analytics dashboard with live charts and role-based views.",
			CaseStudy:   "## Overview\n\nDesigned a data pipeline feeding real-time widgets with graceful degradation when sources lag.",
			GithubURL:   strPtr("https://github.com/example/spellbound-dashboard"),
			Featured:    1,
		},
		{
			Title:       "Arcane API",
			Slug:        "arcane-api",
			Company:     "Arcane Technologies",
			Date:        datePtr(2023, time.June, 20),
			Description: "A public GraphQL API serving the company's partner integrations.",
			CaseStudy:   "## Overview\n\nSchema-first API with persisted queries and per-partner rate limits.",
			Featured:    0,
		},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range skills {
			if err := tx.Create(&skills[i]).Error; err != nil {
				return err
			}
		}
		for i := range projects {
			if err := tx.Create(&projects[i]).Error; err != nil {
				return err
			}
		}

		// Associations by seed position: e-commerce uses the frontend stack,
		// the dashboard mixes both sides, the API is backend-only.
		associations := []models.ProjectToSkill{
			{ProjectID: projects[0].ID, SkillID: skills[0].ID},
			{ProjectID: projects[0].ID, SkillID: skills[1].ID},
			{ProjectID: projects[0].ID, SkillID: skills[2].ID},
			{ProjectID: projects[0].ID, SkillID: skills[3].ID},
			{ProjectID: projects[1].ID, SkillID: skills[0].ID},
			{ProjectID: projects[1].ID, SkillID: skills[4].ID},
			{ProjectID: projects[1].ID, SkillID: skills[6].ID},
			{ProjectID: projects[2].ID, SkillID: skills[4].ID},
			{ProjectID: projects[2].ID, SkillID: skills[5].ID},
			{ProjectID: projects[2].ID, SkillID: skills[6].ID},
			{ProjectID: projects[2].ID, SkillID: skills[7].ID},
			{ProjectID: projects[2].ID, SkillID: skills[8].ID},
		}
		for _, a := range associations {
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
