package admin

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/lhochwald/unterweisung/config"
	"github.com/lhochwald/unterweisung/internal/middleware"
	"github.com/lhochwald/unterweisung/internal/repository"
	"github.com/lhochwald/unterweisung/internal/service"
	"github.com/rs/zerolog/log"
)

// AdminController serves the back office: login, participant dashboard and
// the CSV export.
type AdminController struct {
	cfg           *config.Config
	repo          repository.ParticipationRepository
	exportService service.ExportService
}

func NewAdminController(cfg *config.Config, repo repository.ParticipationRepository, exportService service.ExportService) *AdminController {
	return &AdminController{
		cfg:           cfg,
		repo:          repo,
		exportService: exportService,
	}
}

// LoginPage renders the login form.
func (c *AdminController) LoginPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "admin_login.html", gin.H{"Error": ""})
}

// Login checks the configured credentials. Failures re-render the form with
// a generic message; there is no lockout.
func (c *AdminController) Login(ctx *gin.Context) {
	username := ctx.PostForm("username")
	password := ctx.PostForm("password")

	if username != c.cfg.Admin.Username || password != c.cfg.Admin.Password {
		log.Warn().Str("username", username).Msg("Failed admin login attempt")
		ctx.HTML(http.StatusOK, "admin_login.html", gin.H{"Error": "Falsche Zugangsdaten"})
		return
	}

	sess := sessions.Default(ctx)
	sess.Set(middleware.SessionKeyAdmin, true)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to save admin session")
		ctx.String(http.StatusInternalServerError, "Sitzung konnte nicht gespeichert werden")
		return
	}
	ctx.Redirect(http.StatusFound, "/admin")
}

// Logout drops the admin flag and returns to the login page.
func (c *AdminController) Logout(ctx *gin.Context) {
	sess := sessions.Default(ctx)
	sess.Delete(middleware.SessionKeyAdmin)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to save session on admin logout")
	}
	ctx.Redirect(http.StatusFound, "/admin/login")
}

// Dashboard lists every participation record, newest first.
func (c *AdminController) Dashboard(ctx *gin.Context) {
	participations, err := c.repo.FindAllNewestFirst()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load participations for dashboard")
		ctx.String(http.StatusInternalServerError, "Teilnahmen konnten nicht geladen werden")
		return
	}
	ctx.HTML(http.StatusOK, "admin.html", gin.H{"Participations": participations})
}

// ExportExcel streams all records as a semicolon-delimited CSV download.
func (c *AdminController) ExportExcel(ctx *gin.Context) {
	data, err := c.exportService.ParticipantsCSV()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build participant export")
		ctx.String(http.StatusInternalServerError, "Export konnte nicht erstellt werden")
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+service.ExportFilename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
