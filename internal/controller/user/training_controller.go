package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/lhochwald/unterweisung/internal/catalog"
	"github.com/lhochwald/unterweisung/internal/service"
	"github.com/rs/zerolog/log"
)

// Session keys of the training flow. They are cleared as a whole whenever
// the flow restarts.
const (
	sessName       = "name"
	sessDepartment = "department"
	sessScore      = "score"
	sessTotal      = "total"
	sessPassed     = "passed"
)

// TrainingController serves the user-facing flow: start form, instruction
// pages, quiz and certificate download.
type TrainingController struct {
	quizService        service.QuizService
	certificateService service.CertificateService
}

func NewTrainingController(quizService service.QuizService, certificateService service.CertificateService) *TrainingController {
	return &TrainingController{
		quizService:        quizService,
		certificateService: certificateService,
	}
}

// StartPage renders the entry form asking for name and department.
func (c *TrainingController) StartPage(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", nil)
}

// StartTraining resets any prior session state, stores name and department
// and sends the visitor to the first instruction page. The fields are
// accepted as-is, without validation.
func (c *TrainingController) StartTraining(ctx *gin.Context) {
	sess := sessions.Default(ctx)
	sess.Clear()
	sess.Set(sessName, ctx.PostForm("name"))
	sess.Set(sessDepartment, ctx.PostForm("department"))
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to save session at flow start")
		ctx.String(http.StatusInternalServerError, "Sitzung konnte nicht gespeichert werden")
		return
	}
	ctx.Redirect(http.StatusFound, "/unterweisung/1")
}

// InstructionPage renders instruction page :nr. Pages 1..9 link to their
// successor, the last page links to the quiz. Numbers outside the catalog
// range are a 404.
func (c *TrainingController) InstructionPage(ctx *gin.Context) {
	nr, err := strconv.Atoi(ctx.Param("nr"))
	if err != nil || nr < 1 || nr > len(catalog.Pages) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}

	page := catalog.Pages[nr-1]
	nextLink := fmt.Sprintf("/unterweisung/%d", nr+1)
	nextText := "Weiter"
	if nr == len(catalog.Pages) {
		nextLink = "/quiz"
		nextText = "Zum Quiz"
	}

	ctx.HTML(http.StatusOK, page.Template, gin.H{
		"Title":    page.Title,
		"NextLink": nextLink,
		"NextText": nextText,
	})
}

// QuizPage renders the question form. Visitors without a started session are
// sent back to the start page.
func (c *TrainingController) QuizPage(ctx *gin.Context) {
	sess := sessions.Default(ctx)
	if sess.Get(sessName) == nil {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	type quizQuestion struct {
		Num       int
		Statement string
	}
	questions := make([]quizQuestion, 0, len(catalog.Questions))
	for i, q := range catalog.Questions {
		questions = append(questions, quizQuestion{Num: i + 1, Statement: q.Statement})
	}

	ctx.HTML(http.StatusOK, "quiz.html", gin.H{"Questions": questions})
}

// SubmitQuiz scores the submitted answers, stores the result in the session
// and renders the pass or fail view.
func (c *TrainingController) SubmitQuiz(ctx *gin.Context) {
	sess := sessions.Default(ctx)
	if sess.Get(sessName) == nil {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	answers := make(map[int]string)
	for i := range catalog.Questions {
		if value, ok := ctx.GetPostForm(fmt.Sprintf("q%d", i+1)); ok {
			answers[i+1] = value
		}
	}

	result := c.quizService.Evaluate(answers)

	sess.Set(sessScore, result.Score)
	sess.Set(sessTotal, result.Total)
	sess.Set(sessPassed, result.Passed)
	if err := sess.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to save quiz result in session")
		ctx.String(http.StatusInternalServerError, "Sitzung konnte nicht gespeichert werden")
		return
	}

	template := "quiz_failed.html"
	if result.Passed {
		template = "bestanden.html"
	}
	ctx.HTML(http.StatusOK, template, gin.H{
		"Punkte": result.Score,
		"Gesamt": result.Total,
	})
}

// Certificate issues the PDF and streams it as a download. Without a passing
// quiz result in the session the visitor is redirected to the start page and
// nothing is persisted.
func (c *TrainingController) Certificate(ctx *gin.Context) {
	sess := sessions.Default(ctx)
	passed, _ := sess.Get(sessPassed).(bool)
	if !passed {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	name, _ := sess.Get(sessName).(string)
	department, _ := sess.Get(sessDepartment).(string)
	score, _ := sess.Get(sessScore).(int)
	total, _ := sess.Get(sessTotal).(int)

	cert, err := c.certificateService.Issue(name, department, service.QuizResult{
		Score:  score,
		Total:  total,
		Passed: passed,
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("Certificate issuance failed")
		ctx.String(http.StatusInternalServerError, "Zertifikat konnte nicht erstellt werden")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cert.Filename))
	ctx.Data(http.StatusOK, "application/pdf", cert.PDF)
}
