package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hirelab/interview-trainer/config"
	"github.com/hirelab/interview-trainer/internal/dto"
	"github.com/hirelab/interview-trainer/internal/service"
	"github.com/hirelab/interview-trainer/internal/session"
)

type stubInterviewService struct {
	state *dto.SessionStateDTO
	err   error
}

func (s *stubInterviewService) StartInterview(ctx context.Context, req dto.StartInterviewRequest) (*dto.SessionStateDTO, error) {
	return s.state, s.err
}
func (s *stubInterviewService) GetState(sessionID string) (*dto.SessionStateDTO, error) {
	return s.state, s.err
}
func (s *stubInterviewService) SubmitAnswer(sessionID, answer string) (*dto.SessionStateDTO, error) {
	return s.state, s.err
}
func (s *stubInterviewService) Skip(sessionID string) (*dto.SessionStateDTO, error) {
	return s.state, s.err
}
func (s *stubInterviewService) Back(sessionID string) (*dto.SessionStateDTO, error) {
	return s.state, s.err
}
func (s *stubInterviewService) Finish(ctx context.Context, sessionID string) (*dto.InterviewResultDTO, error) {
	return nil, s.err
}

type stubExportService struct {
	report *service.Report
	err    error
}

func (s *stubExportService) BuildReport(sessionID string) (*service.Report, error) {
	return s.report, s.err
}
func (s *stubExportService) Marshal(report *service.Report) ([]byte, error) {
	return json.Marshal(report)
}

func testRouter(is service.InterviewService, es service.ExportService, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewInterviewController(is, es, cfg)
	r := gin.New()
	r.POST("/interviews", ctrl.StartInterview)
	r.POST("/interviews/:session_id/answers", ctrl.SubmitAnswer)
	r.POST("/interviews/:session_id/back", ctrl.GoBack)
	r.GET("/interviews/:session_id/report", ctrl.DownloadReport)
	r.GET("/interviews/:session_id/narration", ctrl.Narration)
	return r
}

func TestStartInterviewBadBody(t *testing.T) {
	router := testRouter(&stubInterviewService{}, &stubExportService{}, &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(`{"cv_text": ""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestStartInterviewCreated(t *testing.T) {
	state := &dto.SessionStateDTO{SessionID: "s1", Stage: "interviewing", TotalQuestions: 8}
	router := testRouter(&stubInterviewService{state: state}, &stubExportService{}, &config.Config{})

	body := `{"cv_text": "long enough resume text", "target_job": "Engineer"}`
	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	var got dto.SessionStateDTO
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.SessionID != "s1" || got.TotalQuestions != 8 {
		t.Errorf("body = %+v", got)
	}
}

func TestAnswerErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", session.ErrNotFound, http.StatusNotFound},
		{"too short", &session.AnswerTooShortError{Length: 10, Minimum: 50}, http.StatusUnprocessableEntity},
		{"not interviewing", session.ErrNotInterviewing, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := testRouter(&stubInterviewService{err: tc.err}, &stubExportService{}, &config.Config{})

			req := httptest.NewRequest(http.MethodPost, "/interviews/s1/answers", strings.NewReader(`{"answer": "text"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestGoBackAtFirstQuestion(t *testing.T) {
	router := testRouter(&stubInterviewService{err: session.ErrAtFirstQuestion}, &stubExportService{}, &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/interviews/s1/back", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestDownloadReportHeaders(t *testing.T) {
	report := &service.Report{SessionID: "s1", JobTitle: "Engineer"}
	router := testRouter(&stubInterviewService{}, &stubExportService{report: report}, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/interviews/s1/report", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "report_s1.json") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestNarrationDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Interview.EnableVoice = false
	state := &dto.SessionStateDTO{Question: &dto.QuestionDTO{Question: "Tell me about yourself."}}
	router := testRouter(&stubInterviewService{state: state}, &stubExportService{}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/interviews/s1/narration", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var notice dto.NoticeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &notice); err != nil {
		t.Fatal(err)
	}
	if notice.Available {
		t.Error("narration should report unavailable when voice is disabled")
	}
}

func TestNarrationEnabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Interview.EnableVoice = true
	state := &dto.SessionStateDTO{Question: &dto.QuestionDTO{Question: "Tell me about yourself."}}
	router := testRouter(&stubInterviewService{state: state}, &stubExportService{}, cfg)

	req := httptest.NewRequest(http.MethodGet, "/interviews/s1/narration", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["available"] != true || body["text"] != "Tell me about yourself." {
		t.Errorf("body = %v", body)
	}
}
