package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/djblanc360/portfolio-backend/errs"
	"github.com/djblanc360/portfolio-backend/models"
	"github.com/djblanc360/portfolio-backend/services"
)

// projectStore is the slice of the project repository the handler needs.
type projectStore interface {
	FindAll() ([]models.ProjectWithSkills, error)
	FindFeatured() ([]models.ProjectWithSkills, error)
	FindBySlug(slug string) (*models.ProjectWithSkills, error)
	FindByID(id int) (*models.Project, error)
	SlugExists(slug string) (bool, error)
	Add(project *models.Project) error
	Update(id int, fields map[string]any) error
	Delete(id int) error
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
	cache     *queryCache
}

func newProjectHandler(projects projectStore, cache *queryCache) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		cache:     cache,
	}
}

// getProjects serves the read side: all projects, featured projects, or a
// single project by slug, each as a nested project-with-skills shape.
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.URL.Query().Get("slug")
		featured := r.URL.Query().Get("featured") == "true"

		if slug != "" {
			key := cacheKeyProjectPrefix + slug
			if cached, ok := h.cache.get(key); ok {
				h.responder.WriteJSON(w, cached)
				return
			}

			project, err := h.projects.FindBySlug(slug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
				return
			}
			if project == nil {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}

			h.cache.set(key, project)
			h.responder.WriteJSON(w, project)
			return
		}

		key := cacheKeyProjectsAll
		query := h.projects.FindAll
		if featured {
			key = cacheKeyProjectsFeatured
			query = h.projects.FindFeatured
		}

		if cached, ok := h.cache.get(key); ok {
			h.responder.WriteJSON(w, cached)
			return
		}

		projects, err := query()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.cache.set(key, projects)
		h.responder.WriteJSON(w, projects)
	}
}

// caseStudyResponse carries a rendered case study.
type caseStudyResponse struct {
	Slug string `json:"slug"`
	HTML string `json:"html"`
}

// getCaseStudy renders a project's case-study Markdown to HTML.
func (h projectHandler) getCaseStudy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		key := cacheKeyCaseStudyPrefix + slug
		if cached, ok := h.cache.get(key); ok {
			h.responder.WriteJSON(w, cached)
			return
		}

		project, err := h.projects.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		html, err := services.RenderMarkdown(project.CaseStudy)
		if err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to render case study")
			h.responder.WriteError(w, errs.NewInternalError("failed to render case study"))
			return
		}

		response := caseStudyResponse{Slug: slug, HTML: html}
		h.cache.set(key, response)
		h.responder.WriteJSON(w, response)
	}
}

type createProjectRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Company     string  `json:"company"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	CaseStudy   string  `json:"caseStudy"`
	GithubURL   *string `json:"githubUrl"`
	DemoURL     *string `json:"demoUrl"`
	ImageURL    *string `json:"imageUrl"`
	Featured    *int    `json:"featured"`
}

// createProject validates required fields in order, rejects duplicate slugs
// case-insensitively, and returns the persisted row with an empty skills
// list.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		required := []struct {
			field string
			value string
		}{
			{"title", req.Title},
			{"slug", req.Slug},
			{"company", req.Company},
			{"date", req.Date},
			{"description", req.Description},
			{"caseStudy", req.CaseStudy},
		}
		for _, f := range required {
			if f.value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(f.field))
				return
			}
		}

		date, err := parseDate(req.Date)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("date", "expected RFC3339 or YYYY-MM-DD"))
			return
		}

		exists, err := h.projects.SlugExists(req.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check slug", "project", err))
			return
		}
		if exists {
			h.responder.WriteError(w, errs.NewAlreadyExists("project"))
			return
		}

		featured := 0
		if req.Featured != nil {
			featured = *req.Featured
		}

		project := models.Project{
			Title:       req.Title,
			Slug:        req.Slug,
			Company:     req.Company,
			Date:        &date,
			Description: req.Description,
			CaseStudy:   req.CaseStudy,
			GithubURL:   req.GithubURL,
			DemoURL:     req.DemoURL,
			ImageURL:    req.ImageURL,
			Featured:    featured,
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		h.cache.invalidateAll()

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, models.ProjectWithSkills{
			Project: project,
			Skills:  []models.Skill{},
		})
	}
}

type updateProjectRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Company     *string `json:"company"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	CaseStudy   *string `json:"caseStudy"`
	GithubURL   *string `json:"githubUrl"`
	DemoURL     *string `json:"demoUrl"`
	ImageURL    *string `json:"imageUrl"`
	Featured    *int    `json:"featured"`
}

// updateProject applies a partial update: only fields present in the body are
// written, everything else keeps its stored value.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.pathID(w, r, "projectID")
		if !ok {
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var req updateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		fields := make(map[string]any)
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Slug != nil {
			if !strings.EqualFold(*req.Slug, existing.Slug) {
				exists, err := h.projects.SlugExists(*req.Slug)
				if err != nil {
					h.responder.WriteError(w, wrapDatabaseError("check slug", "project", err))
					return
				}
				if exists {
					h.responder.WriteError(w, errs.NewAlreadyExists("project"))
					return
				}
			}
			fields["slug"] = *req.Slug
		}
		if req.Company != nil {
			fields["company"] = *req.Company
		}
		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("date", "expected RFC3339 or YYYY-MM-DD"))
				return
			}
			fields["date"] = date
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.CaseStudy != nil {
			fields["case_study"] = *req.CaseStudy
		}
		if req.GithubURL != nil {
			fields["github_url"] = *req.GithubURL
		}
		if req.DemoURL != nil {
			fields["demo_url"] = *req.DemoURL
		}
		if req.ImageURL != nil {
			fields["image_url"] = *req.ImageURL
		}
		if req.Featured != nil {
			fields["featured"] = *req.Featured
		}

		if err := h.projects.Update(projectID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.cache.invalidateAll()

		updated, err := h.projects.FindByID(projectID)
		if err != nil || updated == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		withSkills, err := h.projects.FindBySlug(updated.Slug)
		if err != nil || withSkills == nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, withSkills)
	}
}

// deleteProject removes the project's association rows and then the project
// itself.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.pathID(w, r, "projectID")
		if !ok {
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.cache.invalidateAll()

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// pathID parses a numeric URL parameter, answering 400 itself on failure.
func (h projectHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
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

// parseDate accepts the two formats the dashboard sends.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
