// internal/server/tools.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"go.uber.org/zap"

	"mcp-diet-plan/internal/models"
	"mcp-diet-plan/internal/summary"
)

// formValue accepts either a JSON string or a JSON number and keeps the raw
// text, so forms can post "70" or 70 alike.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*v = formValue(n.String())
	return nil
}

type SubmitProfileParams struct {
	Name          formValue `json:"name" description:"Full name"`
	Age           formValue `json:"age" description:"Age in years"`
	WeightKg      formValue `json:"weightKg" description:"Weight in kg"`
	HeightCm      formValue `json:"heightCm" description:"Height in cm"`
	ConditionType formValue `json:"conditionType" description:"Type 1, Type 2, Gestational or Pre-diabetes"`
}

type SubmitReadingParams struct {
	PreMeal  formValue `json:"preMeal" description:"Pre-meal glucose in mg/dL"`
	PostMeal formValue `json:"postMeal" description:"Post-meal glucose in mg/dL"`
}

type ToggleItemParams struct {
	Label          string                `json:"label" description:"Item label as shown in the plan"`
	MealSlot       models.MealSlot       `json:"mealSlot" description:"Breakfast, Lunch, Dinner or Snacks"`
	AdherenceClass models.AdherenceClass `json:"adherenceClass" description:"mandatory, moderate or high"`
}

type StepParams struct {
	Step models.Step `json:"step" description:"Wizard step to show"`
}

type ResumeParams struct {
	TargetStep models.Step `json:"targetStep,omitempty" description:"Step to resume at (defaults to the saved step)"`
}

// stepResponse is the envelope every tool returns: where the wizard is now,
// plus any notices and over-target notifications raised by the call.
type stepResponse struct {
	Step              models.Step                `json:"step"`
	PendingTransition bool                       `json:"pendingTransition"`
	Warning           string                     `json:"warning,omitempty"`
	Notice            string                     `json:"notice,omitempty"`
	Events            []models.OverTargetChanged `json:"events,omitempty"`
	Data              interface{}                `json:"data,omitempty"`
}

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	// Convert the Arguments map to JSON bytes, then unmarshal to target
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return models.NewValidationError("arguments", fmt.Sprintf("failed to unmarshal parameters: %v", err))
	}

	return nil
}

// respond wraps data in the envelope and drains pending notifications.
func (s *DietPlanServer) respond(data interface{}, notice string) (*protocol.CallToolResult, error) {
	resp := stepResponse{
		Step:              s.wizard.Current(),
		PendingTransition: s.wizard.PendingTransition(),
		Warning:           s.wizard.Session().Warning,
		Notice:            notice,
		Events:            s.observer.drain(),
		Data:              data,
	}
	return s.createJSONResponse(resp)
}

func (s *DietPlanServer) handleSubmitProfile(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SubmitProfileParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	err := s.wizard.SubmitProfile(models.ProfileForm{
		Name:          string(params.Name),
		Age:           string(params.Age),
		WeightKg:      string(params.WeightKg),
		HeightCm:      string(params.HeightCm),
		ConditionType: string(params.ConditionType),
	})
	if err != nil {
		return nil, err
	}
	return s.respond(s.wizard.Session().Profile, "")
}

func (s *DietPlanServer) handleSubmitReading(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params SubmitReadingParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	err := s.wizard.SubmitReading(ctx, models.ReadingForm{
		PreMeal:  string(params.PreMeal),
		PostMeal: string(params.PostMeal),
	})
	if err != nil {
		return nil, err
	}
	status := s.wizard.Session().Status
	return s.respond(map[string]interface{}{"status": status}, "Generating personalized plan...")
}

func (s *DietPlanServer) handleToggleItem(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ToggleItemParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	res, err := s.wizard.Toggle(params.Label, params.MealSlot, params.AdherenceClass)
	if err != nil {
		return nil, err
	}
	return s.respond(res, "")
}

func (s *DietPlanServer) handleNavigateBack(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	if err := s.wizard.Back(); err != nil {
		if errors.Is(err, models.ErrNoHistory) {
			return s.respond(nil, "🚫 No previous page available.")
		}
		return nil, err
	}
	return s.respond(nil, "")
}

func (s *DietPlanServer) handleNavigateHome(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	if err := s.wizard.Reset(ctx); err != nil {
		return nil, err
	}
	return s.respond(nil, "")
}

func (s *DietPlanServer) handleAdvance(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params StepParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.Step == models.StepLanding {
		return s.handleNavigateHome(ctx, req)
	}
	if err := s.wizard.Advance(params.Step); err != nil {
		return nil, err
	}
	return s.respond(nil, "")
}

func (s *DietPlanServer) handleConfirmPlan(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	if err := s.wizard.ConfirmPlan(ctx); err != nil {
		return nil, err
	}
	return s.respond(nil, "")
}

func (s *DietPlanServer) handleFinish(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	if err := s.wizard.Finish(ctx); err != nil {
		return nil, err
	}
	return s.handleGetSummary(ctx, req)
}

func (s *DietPlanServer) handleResume(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ResumeParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	err := s.wizard.ResumeFromStore(ctx, params.TargetStep)
	if errors.Is(err, models.ErrNoCheckpoint) {
		return s.respond(map[string]interface{}{"resumed": false}, "No saved plan to resume.")
	}
	if err != nil {
		return nil, err
	}
	return s.respond(map[string]interface{}{"resumed": true}, "")
}

func (s *DietPlanServer) handleGetSession(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.respond(s.wizard.Session(), "")
}

func (s *DietPlanServer) handleGetPlan(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	view, err := s.wizard.Plan()
	if err != nil {
		return nil, err
	}
	return s.respond(view, "")
}

func (s *DietPlanServer) handleGetTips(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	tips, err := s.wizard.Tips()
	if err != nil {
		return nil, err
	}
	return s.respond(tips, "")
}

func (s *DietPlanServer) handleGetSummary(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	view, err := summary.Project(s.wizard.Session(), s.catalog)
	if err != nil {
		return nil, err
	}
	return s.respond(view, "")
}

// registerTools builds the dispatch table for inbound events.
func (s *DietPlanServer) registerTools() {
	s.tools = map[string]toolHandler{
		"submit_profile": s.handleSubmitProfile,
		"submit_reading": s.handleSubmitReading,
		"toggle_item":    s.handleToggleItem,
		"navigate_back":  s.handleNavigateBack,
		"navigate_home":  s.handleNavigateHome,
		"advance":        s.handleAdvance,
		"confirm_plan":   s.handleConfirmPlan,
		"finish":         s.handleFinish,
		"resume":         s.handleResume,
		"get_session":    s.handleGetSession,
		"get_plan":       s.handleGetPlan,
		"get_tips":       s.handleGetTips,
		"get_summary":    s.handleGetSummary,
	}

	for name := range s.tools {
		s.logger.Debug("Registered tool", zap.String("name", name))
	}
}
