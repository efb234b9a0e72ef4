package ipc

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/slidepager"
	"github.com/matjam/slidepager/internal/deck"
	"github.com/matjam/slidepager/internal/imagecodec"
	"github.com/matjam/slidepager/internal/transition"
	"github.com/matjam/slidepager/internal/types"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap := m.Status()
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:   "ok",
			Message:  "slidepager is running",
			Version:  strings.Trim(slidepager.Version, "\n\r "),
			PID:      os.Getpid(),
			Socket:   SocketPath(),
			Config:   viper.ConfigFileUsed(),
			Phase:    snap.Phase,
			Slide:    snap.Slide,
			Elements: snap.Elements,
			Page:     m.Deck().Current(),
			Pages:    m.Deck().Len(),
		}, "  ")
	}
}

// POST /transition
func transitionHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req TransitionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: "invalid transition request"})
		}
		if _, err := types.ParseDirection(req.Direction); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: err.Error()})
		}
		if req.Steps == nil {
			steps := m.DefaultSteps()
			req.Steps = &steps
		} else if *req.Steps <= 0 {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: "steps must be positive"})
		}

		if len(req.Before) == 0 || len(req.After) == 0 {
			before, after, err := m.DefaultImages(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusBadGateway, Response{Status: "error", Message: err.Error()})
			}
			if len(req.Before) == 0 {
				req.Before = before
			}
			if len(req.After) == 0 {
				req.After = after
			}
		}

		err := m.Submit(c.Request().Context(), Command{Type: CommandTransition, Transition: &req})
		if err != nil {
			return c.JSON(errorStatus(err), Response{Status: "error", Message: err.Error()})
		}
		return c.JSON(http.StatusOK, Response{
			Status:  "ok",
			Message: "sliding " + strings.ToLower(req.Direction),
			Data:    map[string]any{"steps": *req.Steps},
		})
	}
}

// POST /cancel
func cancelHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.Submit(c.Request().Context(), Command{Type: CommandCancel}); err != nil {
			return c.JSON(errorStatus(err), Response{Status: "error", Message: err.Error()})
		}
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /stop
func stopHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.Submit(c.Request().Context(), Command{Type: CommandStop}); err != nil {
			return c.JSON(errorStatus(err), Response{Status: "error", Message: err.Error()})
		}
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /next and POST /prev: slide from the current page to its neighbour.
func turnHandler(m ManagerInterface, delta int, dir types.Direction) echo.HandlerFunc {
	return func(c echo.Context) error {
		steps := m.DefaultSteps()
		if q := c.QueryParam("steps"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: "steps must be a positive integer"})
			}
			steps = n
		}

		err := m.Deck().Turn(delta, os.ReadFile, func(before, after []byte) error {
			return m.Submit(c.Request().Context(), Command{Type: CommandTransition, Transition: &TransitionRequest{
				Direction: dir.String(),
				Steps:     &steps,
				Before:    before,
				After:     after,
			}})
		})
		if err != nil {
			return c.JSON(errorStatus(err), Response{Status: "error", Message: err.Error()})
		}
		log.Infof("Turned to %s", m.Deck().Current())
		return c.JSON(http.StatusOK, Response{
			Status:  "ok",
			Message: "sliding " + dir.String(),
			Data:    map[string]any{"page": m.Deck().Current(), "steps": steps},
		})
	}
}

// POST /load
func loadHandler(m ManagerInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var paths []string
		if err := c.Bind(&paths); err != nil || len(paths) == 0 {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: "invalid JSON array of pages"})
		}

		pages := make([]string, 0, len(paths))
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: err.Error()})
			}
			if !info.IsDir() {
				pages = append(pages, path)
				continue
			}
			found, err := deck.ReadDir(path)
			if err != nil {
				return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: err.Error()})
			}
			pages = append(pages, found...)
		}

		m.Deck().SetPages(pages)
		log.Infof("Loaded %d pages", len(pages))

		return c.JSON(http.StatusOK, Response{
			Status:  "ok",
			Message: "pages loaded",
			Data:    map[string]any{"loaded": len(pages)},
		})
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, deck.ErrTooFewPages):
		return http.StatusConflict
	case errors.Is(err, imagecodec.ErrDecode), errors.Is(err, transition.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrStopped):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
