// Package handler provides the HTTP handlers for the cafes feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cafe_backend/internal/app/authz"
	"cafe_backend/internal/app/middleware"
	"cafe_backend/internal/feature/cafes/domain/entity"
	"cafe_backend/internal/feature/cafes/transport/http/dto"
	"cafe_backend/internal/feature/cafes/usecase"
	"cafe_backend/internal/platform/flash"
	"cafe_backend/internal/platform/forms"
)

// CafeUsecase defines the café operations the handlers drive.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CafeUsecase interface {
	List(ctx context.Context) ([]entity.Cafe, error)
	Get(ctx context.Context, id uint) (*entity.Cafe, error)
	Create(ctx context.Context, cafe *entity.Cafe) error
	Update(ctx context.Context, id uint, fields entity.Cafe) (*entity.Cafe, error)
	Delete(ctx context.Context, id uint) error
}

// CafeHandler handles the listing, registration, edit and delete pages.
type CafeHandler struct {
	cafes CafeUsecase
}

// NewCafeHandler creates a new instance of CafeHandler.
func NewCafeHandler(cafes CafeUsecase) *CafeHandler {
	return &CafeHandler{cafes: cafes}
}

// Home renders the café listing.
func (h *CafeHandler) Home(c *gin.Context) {
	cafes, err := h.cafes.List(c.Request.Context())
	if err != nil {
		slog.Error("list cafes failed", "error", err)
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", "The café list could not be loaded.")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Cafes":     cafes,
		"Principal": middleware.PrincipalFrom(c),
		"Flash":     flash.Pop(c),
		"Year":      time.Now().Year(),
	})
}

// ShowRegister renders the empty café registration form.
func (h *CafeHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Form":   dto.CafeForm{},
		"Errors": map[string]string{},
	})
}

// Register handles the café registration submission.
// Validation failures and a taken map URL re-render the form with
// field messages; success redirects to the homepage.
func (h *CafeHandler) Register(c *gin.Context) {
	var form dto.CafeForm
	if res := forms.Validate(c.ShouldBind(&form)); !res.Valid {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Form":   form,
			"Errors": res.Errors,
		})
		return
	}

	cafe := form.ToEntity()
	if err := h.cafes.Create(c.Request.Context(), &cafe); err != nil {
		if errors.Is(err, usecase.ErrMapURLTaken) {
			c.HTML(http.StatusOK, "register.html", gin.H{
				"Form":   form,
				"Errors": map[string]string{"MapURL": "A café with this map URL is already listed."},
			})
			return
		}
		slog.Error("create cafe failed", "error", err, "name", form.Name)
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", "The café could not be saved.")
		return
	}

	slog.Info("cafe registered", "cafe_id", cafe.ID, "name", cafe.Name)
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowEdit renders the edit form pre-populated with the café's current
// values. An unknown id gets the 404 page.
func (h *CafeHandler) ShowEdit(c *gin.Context) {
	id, ok := h.cafeID(c)
	if !ok {
		return
	}
	cafe, err := h.cafes.Get(c.Request.Context(), id)
	if err != nil {
		h.getFailed(c, id, err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"CafeID": cafe.ID,
		"Form":   dto.FromEntity(cafe),
		"Errors": map[string]string{},
	})
}

// Edit handles the edit submission: a full replace of every mutable
// field, amenity flags included.
func (h *CafeHandler) Edit(c *gin.Context) {
	id, ok := h.cafeID(c)
	if !ok {
		return
	}

	var form dto.CafeForm
	if res := forms.Validate(c.ShouldBind(&form)); !res.Valid {
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"CafeID": id,
			"Form":   form,
			"Errors": res.Errors,
		})
		return
	}

	if _, err := h.cafes.Update(c.Request.Context(), id, form.ToEntity()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCafeNotFound):
			h.notFound(c)
		case errors.Is(err, usecase.ErrMapURLTaken):
			c.HTML(http.StatusOK, "edit.html", gin.H{
				"CafeID": id,
				"Form":   form,
				"Errors": map[string]string{"MapURL": "Another café is already listed under this map URL."},
			})
		default:
			slog.Error("update cafe failed", "error", err, "cafe_id", id)
			h.renderError(c, http.StatusInternalServerError, "Something went wrong", "The café could not be updated.")
		}
		return
	}

	slog.Info("cafe updated", "cafe_id", id)
	c.Redirect(http.StatusSeeOther, "/")
}

// Delete removes a café after the authorization gate approves the
// principal. A denial renders the 403 page from the structured reason.
func (h *CafeHandler) Delete(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if denial := authz.CanDelete(principal); denial != nil {
		slog.Warn("cafe delete denied", "user_id", principal.UserID, "authenticated", principal.Authenticated)
		h.renderError(c, http.StatusForbidden, denial.Title, denial.Description)
		return
	}

	id, ok := h.cafeID(c)
	if !ok {
		return
	}
	if err := h.cafes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCafeNotFound) {
			h.notFound(c)
			return
		}
		slog.Error("delete cafe failed", "error", err, "cafe_id", id)
		h.renderError(c, http.StatusInternalServerError, "Something went wrong", "The café could not be deleted.")
		return
	}

	slog.Info("cafe deleted", "cafe_id", id, "user_id", principal.UserID)
	c.Redirect(http.StatusFound, "/")
}

// cafeID parses the :id path parameter, rendering the 404 page when it
// is not a positive integer.
func (h *CafeHandler) cafeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.notFound(c)
		return 0, false
	}
	return uint(id), true
}

func (h *CafeHandler) getFailed(c *gin.Context, id uint, err error) {
	if errors.Is(err, usecase.ErrCafeNotFound) {
		h.notFound(c)
		return
	}
	slog.Error("load cafe failed", "error", err, "cafe_id", id)
	h.renderError(c, http.StatusInternalServerError, "Something went wrong", "The café could not be loaded.")
}

func (h *CafeHandler) notFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, "Café not found", "There is no café with that id. It may have been deleted.")
}

func (h *CafeHandler) renderError(c *gin.Context, status int, title, description string) {
	c.HTML(status, "error.html", gin.H{
		"Title":       title,
		"Description": description,
	})
}
