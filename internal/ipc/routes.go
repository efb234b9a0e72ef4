package ipc

import (
	"github.com/labstack/echo/v4"
	"github.com/matjam/slidepager/internal/types"
)

func RegisterRoutes(e *echo.Echo, manager ManagerInterface) {
	e.GET("/status", statusHandler(manager))
	e.POST("/transition", transitionHandler(manager))
	e.POST("/cancel", cancelHandler(manager))
	e.POST("/stop", stopHandler(manager))
	e.POST("/next", turnHandler(manager, 1, types.DirectionLeft))
	e.POST("/prev", turnHandler(manager, -1, types.DirectionRight))
	e.POST("/load", loadHandler(manager))
}
