package database

import (
	"gorm.io/gorm"

	"github.com/djblanc360/portfolio-backend/models"
)

type Database struct {
	db               *gorm.DB
	projectRepo      *ProjectRepo
	skillRepo        *SkillRepo
	projectSkillRepo *ProjectSkillRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		projectRepo:      NewProjectRepo(db),
		skillRepo:        NewSkillRepo(db),
		projectSkillRepo: NewProjectSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectSkillRepo() *ProjectSkillRepo {
	return d.projectSkillRepo
}

// Seed loads demo content through the shared connection; no-op once any
// project exists.
func (d Database) Seed() (bool, error) {
	return Seed(d.db)
}

// AutoMigrate creates or updates the three portfolio tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.ProjectToSkill{},
	)
}
