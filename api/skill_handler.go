package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/djblanc360/portfolio-backend/database"
	"github.com/djblanc360/portfolio-backend/errs"
	"github.com/djblanc360/portfolio-backend/models"
)

// skillStore is the slice of the skill repository the handler needs.
type skillStore interface {
	FindAll() ([]models.Skill, error)
	FindAllWithProjects() ([]models.SkillWithProjects, error)
	FindByID(id int) (*models.Skill, error)
	NameExists(name string) (bool, error)
	Add(skill *models.Skill) error
	Delete(id int) error
	RenameCategory(oldName, newName string) (int, error)
}

// associationStore manages project-to-skill rows.
type associationStore interface {
	Add(projectID, skillID int) error
	Remove(projectID, skillID int) error
}

// projectLookup is the minimal project access the skill handler needs to
// validate association endpoints.
type projectLookup interface {
	FindByID(id int) (*models.Project, error)
}

type skillHandler struct {
	responder    Responder
	logger       zerolog.Logger
	skills       skillStore
	associations associationStore
	projects     projectLookup
	cache        *queryCache
}

func newSkillHandler(skills skillStore, associations associationStore, projects projectLookup, cache *queryCache) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		skills:       skills,
		associations: associations,
		projects:     projects,
		cache:        cache,
	}
}

// getSkills serves either the nested skills-with-projects list or, with
// ?byCategory=true, a mapping from category name to its skills.
func (h skillHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("byCategory") == "true" {
			if cached, ok := h.cache.get(cacheKeySkillsByCategory); ok {
				h.responder.WriteJSON(w, cached)
				return
			}

			skills, err := h.skills.FindAll()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
				return
			}

			grouped := database.GroupSkillsByCategory(skills)
			h.cache.set(cacheKeySkillsByCategory, grouped)
			h.responder.WriteJSON(w, grouped)
			return
		}

		if cached, ok := h.cache.get(cacheKeySkillsAll); ok {
			h.responder.WriteJSON(w, cached)
			return
		}

		skills, err := h.skills.FindAllWithProjects()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.cache.set(cacheKeySkillsAll, skills)
		h.responder.WriteJSON(w, skills)
	}
}

type createSkillRequest struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Category   string   `json:"category"`
	Level      *int     `json:"level"`
	Icon       *string  `json:"icon"`
	Color      *string  `json:"color"`
}

// createSkill validates name, categories and level, rejects duplicate names
// case-insensitively, and persists the category list through the JSON text
// codec. A legacy single `category` field is folded into the list.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		categories := req.Categories
		if len(categories) == 0 && req.Category != "" {
			categories = []string{req.Category}
		}
		if len(categories) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("categories"))
			return
		}
		for _, category := range categories {
			if category == "" {
				h.responder.WriteError(w, errs.NewInvalidFieldError("categories", "entries must be non-empty strings"))
				return
			}
		}

		if req.Level == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("level"))
			return
		}
		if *req.Level < 0 || *req.Level > 100 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("level", "must be between 0 and 100"))
			return
		}

		exists, err := h.skills.NameExists(req.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check name", "skill", err))
			return
		}
		if exists {
			h.responder.WriteError(w, errs.NewAlreadyExists("skill"))
			return
		}

		skill := models.Skill{
			Name:       req.Name,
			Categories: models.StringList(categories),
			Level:      *req.Level,
			Icon:       req.Icon,
			Color:      req.Color,
		}

		if err := h.skills.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create skill", "skill", err))
			return
		}

		h.cache.invalidateAll()

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill removes the skill's association rows and then the skill itself.
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.pathID(w, r, "skillID")
		if !ok {
			return
		}

		existing, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete skill", "skill", err))
			return
		}

		h.cache.invalidateAll()

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}

// addSkillToProject attaches a skill to a project. Re-adding an existing
// association is a no-op.
func (h skillHandler) addSkillToProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, skillID, ok := h.associationIDs(w, r)
		if !ok {
			return
		}

		if err := h.associations.Add(projectID, skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create association", "project skill", err))
			return
		}

		h.cache.invalidateAll()

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill added to project",
		})
	}
}

// removeSkillFromProject detaches a skill from a project. Removing an absent
// association is a no-op.
func (h skillHandler) removeSkillFromProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, skillID, ok := h.associationIDs(w, r)
		if !ok {
			return
		}

		if err := h.associations.Remove(projectID, skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete association", "project skill", err))
			return
		}

		h.cache.invalidateAll()

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill removed from project",
		})
	}
}

type renameCategoryRequest struct {
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

type renameCategoryResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

// renameCategory rewrites a category name inside every skill that carries it
// and reports how many skill rows were touched.
func (h skillHandler) renameCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req renameCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode rename request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.OldName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("oldName"))
			return
		}
		if req.NewName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("newName"))
			return
		}

		updated, err := h.skills.RenameCategory(req.OldName, req.NewName)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("rename category", "skills", err))
			return
		}

		h.cache.invalidateAll()

		h.responder.WriteJSON(w, renameCategoryResponse{UpdatedCount: updated})
	}
}

// associationIDs parses and validates both ids of an association endpoint,
// answering 400/404 itself when something is off.
func (h skillHandler) associationIDs(w http.ResponseWriter, r *http.Request) (projectID, skillID int, ok bool) {
	projectID, ok = h.pathID(w, r, "projectID")
	if !ok {
		return 0, 0, false
	}
	skillID, ok = h.pathID(w, r, "skillID")
	if !ok {
		return 0, 0, false
	}

	project, err := h.projects.FindByID(projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
		return 0, 0, false
	}
	if project == nil {
		h.responder.WriteError(w, errs.NewNotFound("project"))
		return 0, 0, false
	}

	skill, err := h.skills.FindByID(skillID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
		return 0, 0, false
	}
	if skill == nil {
		h.responder.WriteError(w, errs.NewNotFound("skill"))
		return 0, 0, false
	}

	return projectID, skillID, true
}

func (h skillHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing "+name))
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid "+name))
		return 0, false
	}
	return id, true
}
