package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/model"
	"github.com/hirelab/interview-trainer/internal/repository"
	"github.com/hirelab/interview-trainer/internal/service"
)

type JobMarketController struct {
	jobMarketRepo repository.JobMarketRepository
	profileRepo   repository.ProfileRepository
	resultRepo    repository.ResultRepository
	llm           service.LLMService
}

func NewJobMarketController(
	jobMarketRepo repository.JobMarketRepository,
	profileRepo repository.ProfileRepository,
	resultRepo repository.ResultRepository,
	llm service.LLMService,
) *JobMarketController {
	return &JobMarketController{
		jobMarketRepo: jobMarketRepo,
		profileRepo:   profileRepo,
		resultRepo:    resultRepo,
		llm:           llm,
	}
}

// GetJobMarket godoc
// @Summary List the job market reference data
// @Tags Job Market
// @Produce json
// @Success 200 {array} dto.JobMarketDTO
// @Router /job-market [get]
func (c *JobMarketController) GetJobMarket(ctx *gin.Context) {
	entries, err := c.jobMarketRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("GetJobMarket: repository error")
		ctx.JSON(http.StatusOK, []dto.JobMarketDTO{})
		return
	}
	out := make([]dto.JobMarketDTO, 0, len(entries))
	for _, e := range entries {
		var d dto.JobMarketDTO
		if err := copier.Copy(&d, &e); err != nil {
			continue
		}
		out = append(out, d)
	}
	ctx.JSON(http.StatusOK, out)
}

// GetRecommendations godoc
// @Summary AI job matching for a user
// @Description Matches the user's resume and latest scores against the job market table. Returns an empty list when the backend is unavailable.
// @Tags Job Market
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} model.JobRecommendation
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Router /users/{user_id}/recommendations [get]
func (c *JobMarketController) GetRecommendations(ctx *gin.Context) {
	userID := ctx.Param("user_id")
	profile, err := c.profileRepo.FindByUserID(userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown user"})
		return
	}

	scores := latestScores(c.resultRepo, userID)
	jobs, err := c.jobMarketRepo.FindAll()
	if err != nil {
		log.Warn().Err(err).Msg("GetRecommendations: job market unavailable")
	}
	recs := c.llm.JobRecommendations(ctx.Request.Context(), profile.CVText, scores, jobs)
	if recs == nil {
		recs = []model.JobRecommendation{}
	}
	ctx.JSON(http.StatusOK, recs)
}

// latestScores returns the newest result's category scores, or an empty map
// for users who have not completed an interview yet.
func latestScores(resultRepo repository.ResultRepository, userID string) model.CategoryScores {
	results, err := resultRepo.ListByUserDesc(userID, 1)
	if err != nil || len(results) == 0 {
		return model.CategoryScores{}
	}
	return results[0].Scores()
}
