package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/service"
	"github.com/hirelab/interview-trainer/internal/session"
)

type InterviewController struct {
	interviewService service.InterviewService
	exportService    service.ExportService
	cfg              *config.Config
}

func NewInterviewController(is service.InterviewService, es service.ExportService, cfg *config.Config) *InterviewController {
	return &InterviewController{interviewService: is, exportService: es, cfg: cfg}
}

// StartInterview godoc
// @Summary Start a new interview session
// @Description Validates the intake form, saves the candidate profile and generates tailored questions.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param intake body dto.StartInterviewRequest true "Profile, resume and job target"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Router /interviews [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	var req dto.StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	state, err := c.interviewService.StartInterview(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Msg("StartInterview: intake rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetSession godoc
// @Summary Get the current state of a session
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /interviews/{session_id} [get]
func (c *InterviewController) GetSession(ctx *gin.Context) {
	state, err := c.interviewService.GetState(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitAnswer godoc
// @Summary Submit the answer for the current question
// @Description Rejects answers below the configured minimum length; the position does not advance on rejection.
// @Tags Interviews
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.AnswerRequest true "Answer text"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Answer too short"
// @Router /interviews/{session_id}/answers [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	state, err := c.interviewService.SubmitAnswer(ctx.Param("session_id"), req.Answer)
	if err != nil {
		c.answerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SkipQuestion godoc
// @Summary Skip the current question
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /interviews/{session_id}/skip [post]
func (c *InterviewController) SkipQuestion(ctx *gin.Context) {
	state, err := c.interviewService.Skip(ctx.Param("session_id"))
	if err != nil {
		c.answerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GoBack godoc
// @Summary Navigate back to the previous question
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Already at the first question"
// @Router /interviews/{session_id}/back [post]
func (c *InterviewController) GoBack(ctx *gin.Context) {
	state, err := c.interviewService.Back(ctx.Param("session_id"))
	if err != nil {
		c.answerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// FinishInterview godoc
// @Summary Evaluate a completed session and persist its result
// @Description A broken evaluation backend degrades content quality only; the transition to results always succeeds.
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.InterviewResultDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session has unanswered questions"
// @Failure 500 {object} dto.ErrorResponse "Result could not be saved; the session is kept for retry"
// @Router /interviews/{session_id}/finish [post]
func (c *InterviewController) FinishInterview(ctx *gin.Context) {
	result, err := c.interviewService.Finish(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		c.answerError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DownloadReport godoc
// @Summary Download the report of a completed session
// @Produce json
// @Tags Interviews
// @Param session_id path string true "Session ID"
// @Success 200 {object} service.Report
// @Failure 404 {object} dto.ErrorResponse "No result for this session"
// @Router /interviews/{session_id}/report [get]
func (c *InterviewController) DownloadReport(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")
	report, err := c.exportService.BuildReport(sessionID)
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("DownloadReport: no result")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "No result found for this session"})
		return
	}
	payload, err := c.exportService.Marshal(report)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to serialize report"})
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.json", sessionID))
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Narration godoc
// @Summary Narration text of the current question
// @Description Degrades to an unavailable notice when the voice feature is disabled.
// @Tags Interviews
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.NoticeResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /interviews/{session_id}/narration [get]
func (c *InterviewController) Narration(ctx *gin.Context) {
	if !c.cfg.Interview.EnableVoice {
		ctx.JSON(http.StatusOK, dto.NoticeResponse{Available: false, Notice: "Voice narration is disabled"})
		return
	}
	state, err := c.interviewService.GetState(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
		return
	}
	if state.Question == nil {
		ctx.JSON(http.StatusOK, dto.NoticeResponse{Available: false, Notice: "No current question to narrate"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"available": true, "text": state.Question.Question})
}

// answerError maps state-machine errors onto status codes.
func (c *InterviewController) answerError(ctx *gin.Context, err error) {
	var tooShort *session.AnswerTooShortError
	switch {
	case errors.Is(err, session.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
	case errors.As(err, &tooShort):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, session.ErrAtFirstQuestion),
		errors.Is(err, session.ErrNotInterviewing),
		errors.Is(err, session.ErrNotEvaluating):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("Interview operation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal error", Details: []string{err.Error()}})
	}
}
