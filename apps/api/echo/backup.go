package echoapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vidyasetu/vidyasetu/storage/document"
)

type backupApi struct {
	db *document.DB
}

func registerBackupAPI(g *echo.Group, db *document.DB) {
	api := backupApi{db: db}

	g.GET("/backup", api.export)
	g.POST("/backup", api.restore)
	g.DELETE("/data", api.clear)
}

// Handlers

func (api *backupApi) export(ctx echo.Context) error {
	filename := fmt.Sprintf("vidyasetu_backup_%s.json", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=`+filename)
	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	ctx.Response().WriteHeader(http.StatusOK)
	return api.db.Export(ctx.Response())
}

// restore replaces all existing data with the uploaded backup.
func (api *backupApi) restore(ctx echo.Context) error {
	if err := api.db.Import(ctx.Request().Body); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *backupApi) clear(ctx echo.Context) error {
	if err := api.db.Reset(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
