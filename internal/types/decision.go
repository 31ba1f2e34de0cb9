package types

import (
	"time"

	"github.com/google/uuid"
)

type DecisionRequest struct {
	Context             string  `json:"context" binding:"required"`
	UserVoiceTranscript *string `json:"user_voice_transcript,omitempty"`
}

type ActionImpact struct {
	ImmediateGain     string `json:"immediate_gain"`
	ImmediateLoss     string `json:"immediate_loss"`
	ResourcesConsumed string `json:"resources_consumed"`
	LongTermPositive  string `json:"long_term_positive"`
	LongTermNegative  string `json:"long_term_negative"`
	HabitImpact       string `json:"habit_impact"`
	IdentityImpact    string `json:"identity_impact"`
	VisibleCost       string `json:"visible_cost"`
	HiddenCost        string `json:"hidden_cost"`
	OpportunityCost   string `json:"opportunity_cost"`
	RiskProbability   string `json:"risk_probability"`
	RiskSeverity      int    `json:"risk_severity"`
}

type ObjectiveAlignment struct {
	ObjectiveID      string `json:"objective_id"`
	ObjectiveName    string `json:"objective_name"`
	HelpsObjective   bool   `json:"helps_objective"`
	AlignmentScore   int    `json:"alignment_score"`
	IsLongTermDamage bool   `json:"is_long_term_damage"`
}

type ActionAnalysis struct {
	ActionName      string               `json:"action_name"`
	Impact          ActionImpact         `json:"impact"`
	Alignments      []ObjectiveAlignment `json:"alignments"`
	CalculatedScore float64              `json:"calculated_score"`
	IsAllowed       bool                 `json:"is_allowed"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
}

type DecisionResult struct {
	ID              string           `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	CreatedAt       time.Time        `json:"created_at"`
	Context         string           `json:"context"`
	AnalyzedActions []ActionAnalysis `json:"analyzed_actions"`
	WinningAction   *string          `json:"winning_action,omitempty"`
	AIRationale     string           `json:"ai_rationale"`
}
