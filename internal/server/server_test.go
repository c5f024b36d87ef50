package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"mcp-diet-plan/internal/models"
	"mcp-diet-plan/internal/summary"
	"mcp-diet-plan/internal/wizard"
)

type envelope struct {
	Step              models.Step                `json:"step"`
	PendingTransition bool                       `json:"pendingTransition"`
	Warning           string                     `json:"warning"`
	Notice            string                     `json:"notice"`
	Events            []models.OverTargetChanged `json:"events"`
	Data              json.RawMessage            `json:"data"`
}

type toolResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func newTestServer(t *testing.T, dbPath string) *DietPlanServer {
	t.Helper()
	s, err := NewDietPlanServer(&Config{Host: "127.0.0.1", Port: 0, DBPath: dbPath}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { s.Stop() })
	return s
}

func post(t *testing.T, s *DietPlanServer, tool string, args map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"name": tool, "arguments": args})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func call(t *testing.T, s *DietPlanServer, tool string, args map[string]interface{}) envelope {
	t.Helper()
	rec := post(t, s, tool, args)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res toolResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].Text), &env))
	return env
}

var profileArgs = map[string]interface{}{
	"name":          "Ravi",
	"age":           42,
	"weightKg":      "78.5",
	"heightCm":      172,
	"conditionType": "Type 1",
}

func toPlan(t *testing.T, s *DietPlanServer) {
	t.Helper()
	call(t, s, "advance", map[string]interface{}{"step": "profile"})
	env := call(t, s, "submit_profile", profileArgs)
	require.Equal(t, models.StepReading, env.Step)
	env = call(t, s, "submit_reading", map[string]interface{}{"preMeal": 100, "postMeal": "140"})
	require.Equal(t, models.StepDietPlan, env.Step)
	assert.False(t, env.PendingTransition)
}

func toggle(t *testing.T, s *DietPlanServer, label string, slot models.MealSlot, class models.AdherenceClass) envelope {
	t.Helper()
	return call(t, s, "toggle_item", map[string]interface{}{
		"label": label, "mealSlot": slot, "adherenceClass": class,
	})
}

func TestServer_FullFlow(t *testing.T) {
	s := newTestServer(t, ":memory:")
	toPlan(t, s)

	env := call(t, s, "get_plan", nil)
	var plan wizard.PlanView
	require.NoError(t, json.Unmarshal(env.Data, &plan))
	assert.Equal(t, models.Type1, plan.ConditionType)
	assert.Equal(t, models.StatusNormal, plan.Status)
	assert.Equal(t, 1700, plan.TargetKcal)
	require.Len(t, plan.Meals, len(models.MealSlots))
	assert.Equal(t, models.Breakfast, plan.Meals[0].Slot)
	require.Len(t, plan.Meals[0].Classes, 3)
	assert.Len(t, plan.Meals[0].Classes[0].Items, 3)

	env = toggle(t, s, "Pancake", models.Breakfast, models.HighIntake)
	assert.Empty(t, env.Events)
	toggle(t, s, "Burger", models.Lunch, models.HighIntake)
	toggle(t, s, "Pizza", models.Dinner, models.HighIntake)
	assert.Empty(t, env.Warning)

	env = toggle(t, s, "Donut", models.Snacks, models.HighIntake)
	require.Len(t, env.Events, 1)
	assert.True(t, env.Events[0].OverTarget)
	assert.Equal(t, 1960, env.Events[0].Totals.Kcal)
	assert.Equal(t, models.OverTargetWarning, env.Warning)

	// Further toggles above target do not re-emit.
	env = toggle(t, s, "Milk", models.Breakfast, models.Moderate)
	assert.Empty(t, env.Events)

	env = call(t, s, "confirm_plan", nil)
	assert.Equal(t, models.StepLifestyle, env.Step)

	env = call(t, s, "get_tips", nil)
	var tips []string
	require.NoError(t, json.Unmarshal(env.Data, &tips))
	require.Len(t, tips, 4)
	assert.Equal(t, "🏃‍♀️ Exercise moderately (30 min daily).", tips[0])

	env = call(t, s, "finish", nil)
	assert.Equal(t, models.StepSummary, env.Step)
	var view summary.View
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Ravi", view.Name)
	assert.Equal(t, 42, view.Age)
	assert.Equal(t, 78.5, view.WeightKg)
	assert.Equal(t, "1600–1800 kcal/day", view.RangeLabel)
	assert.Len(t, view.Items, 5)
	assert.Equal(t, 2060, view.Totals.Kcal)
	assert.True(t, view.OverTarget)
	assert.Equal(t, models.OverTargetWarning, view.Warning)
}

func TestServer_DropBelowTargetClearsWarning(t *testing.T) {
	s := newTestServer(t, ":memory:")
	toPlan(t, s)

	toggle(t, s, "Pancake", models.Breakfast, models.HighIntake)
	toggle(t, s, "Burger", models.Lunch, models.HighIntake)
	toggle(t, s, "Pizza", models.Dinner, models.HighIntake)
	env := toggle(t, s, "Donut", models.Snacks, models.HighIntake)
	require.Equal(t, models.OverTargetWarning, env.Warning)

	env = toggle(t, s, "Donut", models.Snacks, models.HighIntake)
	require.Len(t, env.Events, 1)
	assert.False(t, env.Events[0].OverTarget)
	assert.Empty(t, env.Warning)
}

func TestServer_ValidationErrors(t *testing.T) {
	s := newTestServer(t, ":memory:")

	rec := post(t, s, "submit_profile", map[string]interface{}{
		"name": "", "age": "forty", "weightKg": "70", "heightCm": "-5", "conditionType": "Type 9",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var fields []string
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "age", "heightCm", "conditionType"}, fields)

	env := call(t, s, "get_session", nil)
	assert.Equal(t, models.StepLanding, env.Step)
}

func TestServer_ReadingValidation(t *testing.T) {
	s := newTestServer(t, ":memory:")
	call(t, s, "submit_profile", profileArgs)

	rec := post(t, s, "submit_reading", map[string]interface{}{"preMeal": "", "postMeal": 120})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter both readings.")

	rec = post(t, s, "submit_reading", map[string]interface{}{"preMeal": 0, "postMeal": 120})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Values must be positive numbers.")

	env := call(t, s, "get_session", nil)
	assert.Equal(t, models.StepReading, env.Step)
}

func TestServer_ToggleBeforePlan(t *testing.T) {
	s := newTestServer(t, ":memory:")
	rec := post(t, s, "toggle_item", map[string]interface{}{
		"label": "Pancake", "mealSlot": "Breakfast", "adherenceClass": "high",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = post(t, s, "get_plan", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_ToggleUnknownItem(t *testing.T) {
	s := newTestServer(t, ":memory:")
	toPlan(t, s)

	rec := post(t, s, "toggle_item", map[string]interface{}{
		"label": "Caviar", "mealSlot": "Breakfast", "adherenceClass": "high",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_BackAndHome(t *testing.T) {
	s := newTestServer(t, ":memory:")

	env := call(t, s, "navigate_back", nil)
	assert.Equal(t, models.StepLanding, env.Step)
	assert.Equal(t, "🚫 No previous page available.", env.Notice)

	toPlan(t, s)
	env = call(t, s, "navigate_back", nil)
	assert.Equal(t, models.StepReading, env.Step)
	assert.Empty(t, env.Notice)

	env = call(t, s, "navigate_home", nil)
	assert.Equal(t, models.StepLanding, env.Step)

	env = call(t, s, "navigate_back", nil)
	assert.Equal(t, "🚫 No previous page available.", env.Notice)

	env = call(t, s, "get_session", nil)
	var sess models.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Nil(t, sess.Profile)
	assert.Empty(t, sess.Selection)
}

func TestServer_ResumeAcrossRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "diet-plan.db")

	first := newTestServer(t, dbPath)
	toPlan(t, first)
	toggle(t, first, "Oats porridge", models.Breakfast, models.Mandatory)
	call(t, first, "confirm_plan", nil)
	require.NoError(t, first.Stop())

	second := newTestServer(t, dbPath)
	env := call(t, second, "resume", nil)
	assert.Equal(t, models.StepLifestyle, env.Step)
	assert.JSONEq(t, `{"resumed":true}`, string(env.Data))

	env = call(t, second, "get_session", nil)
	var sess models.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	require.NotNil(t, sess.Profile)
	assert.Equal(t, "Ravi", sess.Profile.Name)
	require.Len(t, sess.Selection, 1)
	assert.Equal(t, "Oats porridge", sess.Selection[0].Label)
	assert.Equal(t, 250, sess.Totals.Kcal)

	// The checkpoint is consumed by a successful resume.
	env = call(t, second, "resume", nil)
	assert.JSONEq(t, `{"resumed":false}`, string(env.Data))
}

func TestServer_ResumeWithoutCheckpoint(t *testing.T) {
	s := newTestServer(t, ":memory:")
	env := call(t, s, "resume", nil)
	assert.Equal(t, models.StepLanding, env.Step)
	assert.JSONEq(t, `{"resumed":false}`, string(env.Data))
}

func TestServer_UnknownTool(t *testing.T) {
	s := newTestServer(t, ":memory:")
	rec := post(t, s, "log_meal", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_InvalidJSON(t *testing.T) {
	s := newTestServer(t, ":memory:")
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t, ":memory:")
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status string `json:"status"`
		Server struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"server"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, serverName, body.Server.Name)
}

func TestFormValue_AcceptsStringsAndNumbers(t *testing.T) {
	var p SubmitReadingParams
	require.NoError(t, json.Unmarshal([]byte(`{"preMeal": 98.5, "postMeal": " 140 "}`), &p))
	assert.Equal(t, formValue("98.5"), p.PreMeal)
	assert.Equal(t, formValue(" 140 "), p.PostMeal)

	require.Error(t, json.Unmarshal([]byte(`{"preMeal": true}`), &p))
}
