package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nehawork/smart-attendence/internal/model"
	"github.com/nehawork/smart-attendence/internal/queue"
	"github.com/nehawork/smart-attendence/internal/service"
)

// AttendanceHandler exposes marking and the attendance reports.
type AttendanceHandler struct {
	Att *service.Attendance
}

func NewAttendanceHandler(a *service.Attendance) *AttendanceHandler {
	if a == nil {
		panic("nil service passed to NewAttendanceHandler")
	}
	return &AttendanceHandler{Att: a}
}

type markClassReq struct {
	Class    string             `json:"class"`
	Division string             `json:"division"`
	Students []model.StudentRef `json:"students"`
}

type markOneReq struct {
	StudentID int64  `json:"student_id"`
	Class     string `json:"class"`
	Division  string `json:"division"`
	Status    string `json:"status"` // optional, defaults to Present
}

// MarkClass appends one Present row per supplied student for today.
// On success an attendance.marked event goes to the broker; a publish
// failure is logged and ignored so marking never depends on the broker.
func (h *AttendanceHandler) MarkClass(c echo.Context) error {
	var req markClassReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Students) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "students required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	count, err := h.Att.MarkClassPresent(ctx, req.Students, req.Class, req.Division)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "mark attendance failed"})
	}

	now := time.Now()
	if err := queue.PublishAttendanceMarked(ctx, queue.AttendanceMarkedEvent{
		Class:    req.Class,
		Division: req.Division,
		Date:     now.Format(model.DateLayout),
		Count:    count,
		MarkedAt: now.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("attendance event publish failed: %v", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"marked": count})
}

// MarkOne appends a single attendance row for today.
func (h *AttendanceHandler) MarkOne(c echo.Context) error {
	var req markOneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StudentID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "student_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Att.MarkOne(ctx, req.StudentID, req.Class, req.Division, req.Status); err != nil {
		if service.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "mark attendance failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "marked"})
}

// Summary returns the Present/Absent counts per (date, section) group,
// most recent date first.
func (h *AttendanceHandler) Summary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	summary, err := h.Att.Summarize(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": summary})
}

// Detail returns the per-student lines behind one summary row. The
// section arrives as separate class and division query parameters, not
// as a display label to re-split.
func (h *AttendanceHandler) Detail(c echo.Context) error {
	date := c.QueryParam("date")
	class := c.QueryParam("class")
	division := c.QueryParam("division")
	if date == "" || class == "" || division == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date, class and division required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	detail, err := h.Att.DetailFor(ctx, date, model.Section{Class: class, Division: division})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": detail})
}

// Filter returns raw attendance rows, optionally narrowed by the class
// and date query parameters ("All" or absent means no filter).
func (h *AttendanceHandler) Filter(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	records, err := h.Att.Filter(ctx, c.QueryParam("class"), c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"records": records})
}
