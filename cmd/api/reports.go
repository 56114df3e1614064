package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sportdesk/internal/backend"
	"sportdesk/internal/export"
)

var exportsGenerated = expvar.NewInt("exports_generated")

var errConfirmationRequired = errors.New("confirmation required")

func confirmed(r *http.Request) bool {
	ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return ok
}

func isUnauthenticated(err error) bool {
	return errors.Is(err, backend.ErrUnauthenticated)
}

func (app *application) exportMeta(subtitle string) export.Meta {
	return export.Meta{
		Subtitle: subtitle,
		Now:      app.now(),
		Location: app.config.export.location,
		Money:    app.config.export.money,
	}
}

// sendWorkbook writes a finished workbook as an attachment. Assembly errors
// never reach the client as a partial file.
func (app *application) sendWorkbook(w http.ResponseWriter, r *http.Request, wb *export.Workbook, err error, rows int) {
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			app.unprocessableResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, fmt.Errorf("build workbook: %w", err))
		return
	}

	data := wb.Bytes()
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, wb.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Export-ID", wb.ID.String())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		app.logger.Warnw("export write failed", "export_id", wb.ID.String(), "error", err.Error())
		return
	}

	exportsGenerated.Add(1)
	app.logger.Infow("export generated", "export_id", wb.ID.String(), "file", wb.Filename, "rows", rows, "bytes", len(data))
}

// exportReportHandler godoc
//
//	@Summary		Export statistics report
//	@Description	Multi-sheet workbook: overview, top customers, per court, per equipment, trend.
//	@Tags			reports
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200
//	@Failure		422	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reports/export [get]
func (app *application) exportReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	report, err := app.backend.Report(ctx, getSession(r))
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}

	wb, err := export.ReportWorkbook(report, app.exportMeta("Tổng hợp đặt sân và thuê thiết bị"))
	app.sendWorkbook(w, r, wb, err, len(report.Trend))
}
