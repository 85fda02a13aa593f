package service

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"code.sajari.com/docconv"
	"github.com/rs/zerolog/log"
)

const (
	minCVLength = 100
	maxCVLength = 10000
)

var ErrExtractionUnavailable = errors.New("document extraction is unavailable")

// CVService validates resume text and extracts text from uploaded documents.
type CVService interface {
	ValidateCV(cvText string) error
	ExtractPDF(r io.Reader) (string, error)
}

type cvService struct{}

func NewCVService() CVService {
	return &cvService{}
}

// The intake check accepts both English and Indonesian resumes.
var (
	experienceKeywords = []string{"experience", "work", "pengalaman", "kerja"}
	skillKeywords      = []string{"skill", "kemampuan", "keahlian", "kompeten"}
)

// ValidateCV enforces the intake guards: length within [100, 10000] raw
// characters and at least one experience-or-skill keyword present.
func (s *cvService) ValidateCV(cvText string) error {
	if len(strings.TrimSpace(cvText)) < minCVLength {
		return fmt.Errorf("resume is too short: minimum %d characters", minCVLength)
	}
	if len(cvText) > maxCVLength {
		return fmt.Errorf("resume is too long: maximum %d characters", maxCVLength)
	}
	lower := strings.ToLower(cvText)
	for _, kw := range append(append([]string{}, experienceKeywords...), skillKeywords...) {
		if strings.Contains(lower, kw) {
			return nil
		}
	}
	return errors.New("resume must mention experience or skills")
}

// ExtractPDF pulls plain text out of an uploaded PDF. Failure degrades the
// upload feature to unavailable; it never aborts the process.
func (s *cvService) ExtractPDF(r io.Reader) (string, error) {
	res, err := docconv.Convert(r, "application/pdf", true)
	if err != nil {
		log.Warn().Err(err).Msg("PDF extraction failed")
		return "", fmt.Errorf("%w: %v", ErrExtractionUnavailable, err)
	}
	text := strings.TrimSpace(res.Body)
	if text == "" {
		return "", fmt.Errorf("%w: document contains no extractable text", ErrExtractionUnavailable)
	}
	return text, nil
}
