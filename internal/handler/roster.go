package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nehawork/smart-attendence/internal/service"
)

// RosterHandler exposes student and section management. Student
// creation is admin-only; the listings serve both roles since the
// teacher dashboard drives marking and reports from them.
type RosterHandler struct {
	Roster *service.Roster
}

func NewRosterHandler(r *service.Roster) *RosterHandler {
	if r == nil {
		panic("nil service passed to NewRosterHandler")
	}
	return &RosterHandler{Roster: r}
}

type addStudentReq struct {
	Name      string `json:"name"`
	Class     string `json:"class"`
	Division  string `json:"division"`
	ImagePath string `json:"image_path"`
}

// AddStudent creates one roster entry. The image reference comes from
// the external file-storage collaborator and passes through untouched.
func (h *RosterHandler) AddStudent(c echo.Context) error {
	var req addStudentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Roster.AddStudent(ctx, req.Name, req.Class, req.Division, req.ImagePath)
	if err != nil {
		if service.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create student failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// ListStudents returns the roster ordered by name. With both class and
// division query parameters present it narrows to one section and
// returns the (id, name) projection used by the marking screen.
func (h *RosterHandler) ListStudents(c echo.Context) error {
	class := c.QueryParam("class")
	division := c.QueryParam("division")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if class != "" && division != "" {
		refs, err := h.Roster.ListStudentsBySection(ctx, class, division)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"students": refs})
	}

	students, err := h.Roster.ListStudents(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"students": students})
}

// ListSections returns the distinct (class, division) pairs on the
// roster — the authoritative section list the dashboards select from.
func (h *RosterHandler) ListSections(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sections, err := h.Roster.ListSections(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sections": sections})
}

// ListClasses returns the sorted distinct class labels.
func (h *RosterHandler) ListClasses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	classes, err := h.Roster.ListClasses(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"classes": classes})
}

// ListDivisions returns the sorted divisions of the class in the path.
func (h *RosterHandler) ListDivisions(c echo.Context) error {
	class := c.Param("class")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	divisions, err := h.Roster.ListDivisionsForClass(ctx, class)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"divisions": divisions})
}
