package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/service"
)

type CVController struct {
	cvService service.CVService
}

func NewCVController(cvService service.CVService) *CVController {
	return &CVController{cvService: cvService}
}

// ExtractCV godoc
// @Summary Extract resume text from an uploaded PDF
// @Description Degrades to an unavailable notice when extraction fails; never fatal.
// @Tags CV
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} dto.ExtractResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file"
// @Router /cv/extract [post]
func (c *CVController) ExtractCV(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing file upload"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unreadable file upload"})
		return
	}
	defer file.Close()

	text, err := c.cvService.ExtractPDF(file)
	if err != nil {
		if errors.Is(err, service.ErrExtractionUnavailable) {
			ctx.JSON(http.StatusOK, dto.NoticeResponse{Available: false, Notice: "PDF extraction is unavailable; paste the resume text instead"})
			return
		}
		log.Error().Err(err).Msg("ExtractCV: unexpected extraction error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Extraction failed"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ExtractResponse{Text: text, CharCount: len(text)})
}
