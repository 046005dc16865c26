package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pipeline"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalysisUsecase struct {
	analyzeRes usecase.AnalysisResult
	analyzeErr error
	gotInput   usecase.AnalyzeInput
	history    []usecase.AnalysisResult
	historyErr error
	gotLimit   int
	state      usecase.SessionState
	current    *usecase.AnalysisResult
	pathErr    error
	gotGaps    []string
}

func (f *fakeAnalysisUsecase) Analyze(ctx context.Context, userID uuid.UUID, in usecase.AnalyzeInput) (usecase.AnalysisResult, error) {
	f.gotInput = in
	return f.analyzeRes, f.analyzeErr
}

func (f *fakeAnalysisUsecase) History(ctx context.Context, userID uuid.UUID, limit int) ([]usecase.AnalysisResult, error) {
	f.gotLimit = limit
	return f.history, f.historyErr
}

func (f *fakeAnalysisUsecase) Current(userID uuid.UUID) (usecase.SessionState, *usecase.AnalysisResult) {
	return f.state, f.current
}

func (f *fakeAnalysisUsecase) GenerateLearningPath(ctx context.Context, gaps []string) pipeline.LearningPath {
	f.gotGaps = gaps
	entries := make([]pipeline.LearningPathEntry, 0, len(gaps))
	for _, g := range gaps {
		entries = append(entries, pipeline.LearningPathEntry{Skill: g})
	}
	return pipeline.LearningPath{Entries: entries, FailedSkills: []string{}}
}

func (f *fakeAnalysisUsecase) LearningPathForCurrent(ctx context.Context, userID uuid.UUID) (pipeline.LearningPath, error) {
	if f.pathErr != nil {
		return pipeline.LearningPath{}, f.pathErr
	}
	return f.GenerateLearningPath(ctx, []string{"AWS"}), nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var testUserID = uuid.MustParse("0b7f0c7e-9d1c-4a55-8f5e-3f3b8c2d1a10")

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	app.Use(func(c fiber.Ctx) error {
		if c.Get("X-Test-User") != "" {
			c.Locals(middleware.CtxUserIDKey, testUserID)
		}
		return c.Next()
	})
	register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, authed bool) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("X-Test-User", "1")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestAnalysisHandler_Analyze(t *testing.T) {
	uc := &fakeAnalysisUsecase{analyzeRes: usecase.AnalysisResult{MatchPercentage: 33, Gaps: []string{"AWS"}}}
	app := newTestApp(NewAnalysisHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/analyses", `{"text":"React and AWS","persist":false}`, true)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "React and AWS", uc.gotInput.Text)
	require.NotNil(t, uc.gotInput.Persist)
	assert.False(t, *uc.gotInput.Persist)

	var res usecase.AnalysisResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 33, res.MatchPercentage)
	assert.Equal(t, []string{"AWS"}, res.Gaps)
}

func TestAnalysisHandler_AnalyzeRequiresUser(t *testing.T) {
	app := newTestApp(NewAnalysisHandler(&fakeAnalysisUsecase{}).RegisterRoutes)

	status, _ := do(t, app, http.MethodPost, "/analyses", `{"text":"React"}`, false)

	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAnalysisHandler_AnalyzeValidation(t *testing.T) {
	app := newTestApp(NewAnalysisHandler(&fakeAnalysisUsecase{}).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/analyses", `{"url":"not a url"}`, true)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), `"field":"AnalyzeRequest.url"`)
}

func TestAnalysisHandler_AnalyzeErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"fetch", &usecase.PostingFetchError{URL: "https://x", Err: errors.New("refused")}, http.StatusBadGateway},
		{"empty", usecase.ErrEmptyPosting, http.StatusUnprocessableEntity},
		{"superseded", usecase.ErrSuperseded, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(NewAnalysisHandler(&fakeAnalysisUsecase{analyzeErr: tc.err}).RegisterRoutes)

			status, env := do(t, app, http.MethodPost, "/analyses", `{"url":"https://jobs.example.com/1"}`, true)

			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, env.Status)
		})
	}
}

func TestAnalysisHandler_FetchErrorMessage(t *testing.T) {
	uc := &fakeAnalysisUsecase{analyzeErr: &usecase.PostingFetchError{URL: "https://x", Err: errors.New("refused")}}
	app := newTestApp(NewAnalysisHandler(uc).RegisterRoutes)

	_, env := do(t, app, http.MethodPost, "/analyses", `{"url":"https://jobs.example.com/1"}`, true)

	assert.Equal(t, "could not retrieve the posting; provide the text directly", env.Message)
}

func TestAnalysisHandler_History(t *testing.T) {
	uc := &fakeAnalysisUsecase{history: []usecase.AnalysisResult{{MatchPercentage: 10}, {MatchPercentage: 20}}}
	app := newTestApp(NewAnalysisHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/analyses?limit=2", "", true)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, uc.gotLimit)

	var body struct {
		Items []usecase.AnalysisResult `json:"items"`
		Total int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 10, body.Items[0].MatchPercentage)

	status, _ = do(t, app, http.MethodGet, "/analyses?limit=abc", "", true)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAnalysisHandler_Current(t *testing.T) {
	uc := &fakeAnalysisUsecase{state: usecase.SessionIdle}
	app := newTestApp(NewAnalysisHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/analyses/current", "", true)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"state":"idle","result":null}`, string(env.Data))
}

func TestLearningPathHandler_ExplicitSkills(t *testing.T) {
	uc := &fakeAnalysisUsecase{}
	app := newTestApp(NewLearningPathHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/learning-paths", `{"skills":["AWS","Node.js"]}`, true)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"AWS", "Node.js"}, uc.gotGaps)
	var body struct {
		Entries []pipeline.LearningPathEntry `json:"entries"`
		Source  string                       `json:"source"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, sourceRequest, body.Source)
	assert.Len(t, body.Entries, 2)
}

func TestLearningPathHandler_CurrentAnalysis(t *testing.T) {
	uc := &fakeAnalysisUsecase{}
	app := newTestApp(NewLearningPathHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/learning-paths", "", true)

	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"source":"current_analysis"`)
}

func TestLearningPathHandler_NoAnalysis(t *testing.T) {
	app := newTestApp(NewLearningPathHandler(&fakeAnalysisUsecase{pathErr: usecase.ErrNoAnalysis}).RegisterRoutes)

	status, _ := do(t, app, http.MethodPost, "/learning-paths", `{"skills":[]}`, true)

	assert.Equal(t, http.StatusNotFound, status)
}

func TestSkillHandler(t *testing.T) {
	app := newTestApp(NewSkillHandler(usecase.NewSkillUsecase(nil)).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/skills/extract", `{"text":"Senior React Developer with Node.js and AWS experience"}`, false)
	require.Equal(t, http.StatusOK, status)
	var out usecase.ExtractOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, []string{"React", "Node.js", "AWS"}, out.Skills)

	status, _ = do(t, app, http.MethodPost, "/skills/extract", `{"text":"  "}`, false)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = do(t, app, http.MethodGet, "/skills/taxonomy", "", false)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"name":"Frontend"`)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(map[string]Pinger{
		"postgres": pingFunc(func(context.Context) error { return nil }),
		"redis":    pingFunc(func(context.Context) error { return errors.New("down") }),
	})
	app := newTestApp(h.RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"degraded","dependencies":{"postgres":"ok","redis":"unavailable"}}`, string(env.Data))
}

type memProfileStore struct {
	skills []string
}

func (m *memProfileStore) FetchUserSkills(context.Context, uuid.UUID) ([]string, error) {
	return m.skills, nil
}

func (m *memProfileStore) AddByName(_ context.Context, _ uuid.UUID, name string) error {
	m.skills = append(m.skills, name)
	return nil
}

func TestProfileHandler(t *testing.T) {
	store := &memProfileStore{}
	app := newTestApp(NewProfileHandler(usecase.NewProfileUsecase(store, nil)).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/profile/skills", `{"skills":["reactjs","Cobol"]}`, true)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.JSONEq(t, `{"skills":["React"],"unknown":["Cobol"]}`, string(env.Data))

	status, env = do(t, app, http.MethodGet, "/profile/skills", "", true)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"skills":["React"]}`, string(env.Data))

	status, _ = do(t, app, http.MethodPost, "/profile/skills", `{"skills":[]}`, true)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/profile/skills", "", false)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProfileHandler_NoDatabase(t *testing.T) {
	app := newTestApp(NewProfileHandler(usecase.NewProfileUsecase(nil, nil)).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/profile/skills", "", true)

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "Skill profile unavailable", env.Message)
}
