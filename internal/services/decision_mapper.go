package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/initium-os/axiom-backend/internal/types"
)

var validRiskLevels = map[string]struct{}{
	"low":    {},
	"medium": {},
	"high":   {},
}

// Wire mirrors of the decision schema. Required fields are pointers so a
// missing key is distinguishable from a zero value; fields with declared
// defaults stay optional.
type wireActionImpact struct {
	ImmediateGain     *string `json:"immediate_gain"`
	ImmediateLoss     *string `json:"immediate_loss"`
	ResourcesConsumed *string `json:"resources_consumed"`
	LongTermPositive  *string `json:"long_term_positive"`
	LongTermNegative  *string `json:"long_term_negative"`
	HabitImpact       *string `json:"habit_impact"`
	IdentityImpact    *string `json:"identity_impact"`
	VisibleCost       *string `json:"visible_cost"`
	HiddenCost        *string `json:"hidden_cost"`
	OpportunityCost   *string `json:"opportunity_cost"`
	RiskProbability   *string `json:"risk_probability"`
	RiskSeverity      *int    `json:"risk_severity"`
}

type wireObjectiveAlignment struct {
	ObjectiveID      *string `json:"objective_id"`
	ObjectiveName    *string `json:"objective_name"`
	HelpsObjective   *bool   `json:"helps_objective"`
	AlignmentScore   *int    `json:"alignment_score"`
	IsLongTermDamage *bool   `json:"is_long_term_damage"`
}

type wireActionAnalysis struct {
	ActionName      *string                   `json:"action_name"`
	Impact          *wireActionImpact         `json:"impact"`
	Alignments      *[]wireObjectiveAlignment `json:"alignments"`
	CalculatedScore *float64                  `json:"calculated_score"`
	IsAllowed       *bool                     `json:"is_allowed"`
	RejectionReason *string                   `json:"rejection_reason"`
}

type wireDecisionResult struct {
	ID              *string               `json:"id"`
	Context         *string               `json:"context"`
	AnalyzedActions *[]wireActionAnalysis `json:"analyzed_actions"`
	WinningAction   *string               `json:"winning_action"`
	AIRationale     *string               `json:"ai_rationale"`
	CreatedAt       *time.Time            `json:"created_at"`
}

// mapDecisionResult deserializes the model's JSON into a DecisionResult.
// The decode is deliberately strict: a missing required field, a wrong type,
// or an out-of-range constrained value fails the whole mapping. There is no
// corrective reconciliation of near-miss shapes.
func mapDecisionResult(raw string) (*types.DecisionResult, error) {
	var wire wireDecisionResult
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("invalid decision JSON: %w", err)
	}

	if wire.Context == nil {
		return nil, fmt.Errorf("missing required field context")
	}
	if wire.AIRationale == nil {
		return nil, fmt.Errorf("missing required field ai_rationale")
	}
	if wire.AnalyzedActions == nil {
		return nil, fmt.Errorf("missing required field analyzed_actions")
	}

	result := &types.DecisionResult{
		Context:         *wire.Context,
		AIRationale:     *wire.AIRationale,
		WinningAction:   wire.WinningAction,
		AnalyzedActions: make([]types.ActionAnalysis, 0, len(*wire.AnalyzedActions)),
	}
	if wire.ID != nil {
		result.ID = *wire.ID
	}
	if wire.CreatedAt != nil {
		result.CreatedAt = *wire.CreatedAt
	}

	for i, action := range *wire.AnalyzedActions {
		mapped, err := mapActionAnalysis(i, action)
		if err != nil {
			return nil, err
		}
		result.AnalyzedActions = append(result.AnalyzedActions, *mapped)
	}
	return result, nil
}

func mapActionAnalysis(index int, wire wireActionAnalysis) (*types.ActionAnalysis, error) {
	if wire.ActionName == nil {
		return nil, fmt.Errorf("analyzed_actions[%d]: missing required field action_name", index)
	}
	if wire.Impact == nil {
		return nil, fmt.Errorf("analyzed_actions[%d]: missing required field impact", index)
	}
	if wire.Alignments == nil {
		return nil, fmt.Errorf("analyzed_actions[%d]: missing required field alignments", index)
	}

	impact, err := mapActionImpact(index, *wire.Impact)
	if err != nil {
		return nil, err
	}

	analysis := &types.ActionAnalysis{
		ActionName:      *wire.ActionName,
		Impact:          *impact,
		Alignments:      make([]types.ObjectiveAlignment, 0, len(*wire.Alignments)),
		RejectionReason: wire.RejectionReason,
		IsAllowed:       true,
	}
	if wire.CalculatedScore != nil {
		analysis.CalculatedScore = *wire.CalculatedScore
	}
	if wire.IsAllowed != nil {
		analysis.IsAllowed = *wire.IsAllowed
	}

	for j, alignment := range *wire.Alignments {
		mapped, aErr := mapObjectiveAlignment(index, j, alignment)
		if aErr != nil {
			return nil, aErr
		}
		analysis.Alignments = append(analysis.Alignments, *mapped)
	}
	return analysis, nil
}

func mapActionImpact(index int, wire wireActionImpact) (*types.ActionImpact, error) {
	requiredText := map[string]*string{
		"immediate_gain":     wire.ImmediateGain,
		"immediate_loss":     wire.ImmediateLoss,
		"resources_consumed": wire.ResourcesConsumed,
		"long_term_positive": wire.LongTermPositive,
		"long_term_negative": wire.LongTermNegative,
		"habit_impact":       wire.HabitImpact,
		"identity_impact":    wire.IdentityImpact,
		"visible_cost":       wire.VisibleCost,
		"hidden_cost":        wire.HiddenCost,
		"opportunity_cost":   wire.OpportunityCost,
	}
	for field, value := range requiredText {
		if value == nil {
			return nil, fmt.Errorf("analyzed_actions[%d].impact: missing required field %s", index, field)
		}
	}
	if wire.RiskProbability == nil {
		return nil, fmt.Errorf("analyzed_actions[%d].impact: missing required field risk_probability", index)
	}
	if _, ok := validRiskLevels[*wire.RiskProbability]; !ok {
		return nil, fmt.Errorf("analyzed_actions[%d].impact: risk_probability must be one of low, medium, high", index)
	}
	if wire.RiskSeverity == nil {
		return nil, fmt.Errorf("analyzed_actions[%d].impact: missing required field risk_severity", index)
	}
	if *wire.RiskSeverity < 1 || *wire.RiskSeverity > 10 {
		return nil, fmt.Errorf("analyzed_actions[%d].impact: risk_severity must be between 1 and 10", index)
	}

	return &types.ActionImpact{
		ImmediateGain:     *wire.ImmediateGain,
		ImmediateLoss:     *wire.ImmediateLoss,
		ResourcesConsumed: *wire.ResourcesConsumed,
		LongTermPositive:  *wire.LongTermPositive,
		LongTermNegative:  *wire.LongTermNegative,
		HabitImpact:       *wire.HabitImpact,
		IdentityImpact:    *wire.IdentityImpact,
		VisibleCost:       *wire.VisibleCost,
		HiddenCost:        *wire.HiddenCost,
		OpportunityCost:   *wire.OpportunityCost,
		RiskProbability:   *wire.RiskProbability,
		RiskSeverity:      *wire.RiskSeverity,
	}, nil
}

func mapObjectiveAlignment(actionIndex, index int, wire wireObjectiveAlignment) (*types.ObjectiveAlignment, error) {
	prefix := fmt.Sprintf("analyzed_actions[%d].alignments[%d]", actionIndex, index)
	if wire.ObjectiveID == nil {
		return nil, fmt.Errorf("%s: missing required field objective_id", prefix)
	}
	if wire.ObjectiveName == nil {
		return nil, fmt.Errorf("%s: missing required field objective_name", prefix)
	}
	if wire.HelpsObjective == nil {
		return nil, fmt.Errorf("%s: missing required field helps_objective", prefix)
	}

	alignment := &types.ObjectiveAlignment{
		ObjectiveID:    *wire.ObjectiveID,
		ObjectiveName:  *wire.ObjectiveName,
		HelpsObjective: *wire.HelpsObjective,
	}
	if wire.AlignmentScore != nil {
		if *wire.AlignmentScore < 0 || *wire.AlignmentScore > 10 {
			return nil, fmt.Errorf("%s: alignment_score must be between 0 and 10", prefix)
		}
		alignment.AlignmentScore = *wire.AlignmentScore
	}
	if wire.IsLongTermDamage != nil {
		alignment.IsLongTermDamage = *wire.IsLongTermDamage
	}
	return alignment, nil
}
