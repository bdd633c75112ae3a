package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nehawork/smart-attendence/internal/export"
	"github.com/nehawork/smart-attendence/internal/service"
)

// LeaveHandler exposes leave submission, filtering, the derived lookup
// views and the spreadsheet export.
type LeaveHandler struct {
	Leave *service.Leave
}

func NewLeaveHandler(l *service.Leave) *LeaveHandler {
	if l == nil {
		panic("nil service passed to NewLeaveHandler")
	}
	return &LeaveHandler{Leave: l}
}

type submitLeaveReq struct {
	StudentName string `json:"student_name"`
	Class       string `json:"class"`
	Division    string `json:"division"`
	LeaveFrom   string `json:"leave_from"` // RFC3339
	LeaveTo     string `json:"leave_to"`   // RFC3339
}

// Submit validates and stores one leave window.
func (h *LeaveHandler) Submit(c echo.Context) error {
	var req submitLeaveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	from, err := time.Parse(time.RFC3339, req.LeaveFrom)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "leave_from must be RFC3339"})
	}
	to, err := time.Parse(time.RFC3339, req.LeaveTo)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "leave_to must be RFC3339"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Leave.Submit(ctx, strings.TrimSpace(req.StudentName), req.Class, req.Division, from, to)
	if err != nil {
		if service.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "submit leave failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List returns leave records narrowed by the optional class, division
// and student query parameters.
func (h *LeaveHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	leaves, err := h.Leave.Filter(ctx,
		c.QueryParam("class"), c.QueryParam("division"), c.QueryParam("student"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"leaves": leaves})
}

// Export serves the filtered leave rows as an XLSX download. The same
// query parameters as List apply, so what the caller sees in the table
// is exactly what lands in the workbook.
func (h *LeaveHandler) Export(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	leaves, err := h.Leave.Filter(ctx,
		c.QueryParam("class"), c.QueryParam("division"), c.QueryParam("student"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	payload, err := export.LeaveReport(leaves)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.LeaveReportFilename))
	return c.Blob(http.StatusOK, export.MIMEXLSX, payload)
}

// Classes returns the sorted classes that have leave records.
func (h *LeaveHandler) Classes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	classes, err := h.Leave.ClassesWithLeaves(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"classes": classes})
}

// Divisions returns the sorted divisions with leave records for the
// class in the path.
func (h *LeaveHandler) Divisions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	divisions, err := h.Leave.DivisionsForClass(ctx, c.Param("class"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"divisions": divisions})
}

// Students returns the sorted student names with leave records for the
// section in the query parameters.
func (h *LeaveHandler) Students(c echo.Context) error {
	class := c.QueryParam("class")
	division := c.QueryParam("division")
	if class == "" || division == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "class and division required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	students, err := h.Leave.StudentsForSection(ctx, class, division)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"students": students})
}
