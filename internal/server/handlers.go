package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alexanderramin/fitai/internal/coach"
	"github.com/alexanderramin/fitai/internal/domain"
	"github.com/alexanderramin/fitai/internal/repository"
)

type errorBody struct {
	Message string `json:"error"`
	Field   string `json:"field,omitempty"`
}

type completionRequest struct {
	Completed domain.Completion `json:"completed"`
	Day       *string           `json:"day"`
	Done      *bool             `json:"done"`
}

type completionResponse struct {
	*domain.Profile
	Motivation string `json:"motivation,omitempty"`
}

type scheduleResponse struct {
	Schedule []domain.ScheduleDay `json:"schedule"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

func (s *Server) userID(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get(UserHeader)); id != "" {
		return id
	}
	return s.deps.DefaultUser
}

// respondError maps domain errors to status codes. Unexpected errors are
// logged and reported without detail.
func respondError(c echo.Context, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, errorBody{Message: vErr.Error(), Field: vErr.Field})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody{Message: "profile not found"})
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return c.JSON(he.Code, errorBody{Message: "invalid request body"})
	}
	requestLogger(c).Error().Err(err).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, errorBody{Message: "internal server error"})
}

func (s *Server) health(c echo.Context) error {
	if s.deps.Ping != nil {
		if err := s.deps.Ping(c.Request().Context()); err != nil {
			requestLogger(c).Error().Err(err).Msg("health check failed")
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createProfile(c echo.Context) error {
	var fields domain.ProfileFields
	if err := c.Bind(&fields); err != nil {
		return respondError(c, err)
	}
	p, err := s.deps.Profiles.CreateOrUpdate(c.Request().Context(), s.userID(c), fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) getProfile(c echo.Context) error {
	p, err := s.deps.Profiles.Get(c.Request().Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) updateProfile(c echo.Context) error {
	var fields domain.ProfileFields
	if err := c.Bind(&fields); err != nil {
		return respondError(c, err)
	}
	p, err := s.deps.Profiles.Update(c.Request().Context(), s.userID(c), fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) updateCompletion(c echo.Context) error {
	var req completionRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	userID := s.userID(c)

	switch {
	case req.Completed != nil:
		p, err := s.deps.Profiles.ReplaceCompletion(ctx, userID, req.Completed)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, completionResponse{Profile: p})
	case req.Day != nil:
		if req.Done == nil {
			return respondError(c, &domain.ValidationError{Field: "done", Message: "is required"})
		}
		p, err := s.deps.Profiles.SetCompletion(ctx, userID, *req.Day, *req.Done)
		if err != nil {
			return respondError(c, err)
		}
		resp := completionResponse{Profile: p}
		if *req.Done {
			resp.Motivation = coach.RandomMotivation()
		}
		return c.JSON(http.StatusOK, resp)
	default:
		return respondError(c, &domain.ValidationError{Field: "completed", Message: "provide completed or day and done"})
	}
}

func (s *Server) progress(c echo.Context) error {
	progress, err := s.deps.Profiles.Progress(c.Request().Context(), s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, progress)
}

func (s *Server) generatePlans(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := s.deps.Profiles.Get(ctx, s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, s.deps.Coach.GeneratePlans(ctx, *p))
}

func (s *Server) generateSchedule(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := s.deps.Profiles.Get(ctx, s.userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, scheduleResponse{Schedule: s.deps.Coach.GenerateSchedule(ctx, *p)})
}

func (s *Server) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()

	p, err := s.deps.Profiles.Get(ctx, s.userID(c))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		p = nil
	case err != nil:
		return respondError(c, err)
	}

	reply, err := s.deps.Coach.Chat(ctx, req.Message, p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}
