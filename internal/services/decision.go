package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/initium-os/axiom-backend/internal/logger"
	"github.com/initium-os/axiom-backend/internal/repos"
	"github.com/initium-os/axiom-backend/internal/requestdata"
	"github.com/initium-os/axiom-backend/internal/types"
)

// At most this many active objectives are projected into the prompt.
// Users owning more get a silently truncated view, not an error.
const maxPromptObjectives = 20

const axiomSystemPrompt = `
You are the central "Axiom of Choice" engine for the INITIUM Life OS.
Your purpose is to analyze user actions without emotion or excuse, prioritizing long-term growth over short-term gratification.

You will receive a user dilemma or action. You must analyze it using the "Directed Axiom" methodology:
1. **Direct Result**: Immediate gains/losses/resource consumption.
2. **Indirect Consequences**: Long-term effects on habits, identity, and systems.
3. **Real Cost**: Visible + Hidden + Opportunity Cost.
4. **Risk**: Probability vs Severity.
5. **Score**: Calculate a weighted score based on alignment with the user's Life Objectives.

Output MUST be valid JSON formatted strictly according to the ActionAnalysis schema provided.
`

type DecisionService interface {
	Analyze(ctx context.Context, req *types.DecisionRequest) (*types.DecisionResult, error)
}

type decisionService struct {
	db              *gorm.DB
	log             *logger.Logger
	objectiveRepo   repos.ObjectiveRepo
	decisionLogRepo repos.DecisionLogRepo
	// aiClient is nil when no completion credential was configured at
	// startup; every analyze call then returns the simulated result.
	aiClient AIClient
}

func NewDecisionService(db *gorm.DB, log *logger.Logger, objectiveRepo repos.ObjectiveRepo, decisionLogRepo repos.DecisionLogRepo, aiClient AIClient) DecisionService {
	serviceLog := log.With("service", "DecisionService")
	return &decisionService{
		db:              db,
		log:             serviceLog,
		objectiveRepo:   objectiveRepo,
		decisionLogRepo: decisionLogRepo,
		aiClient:        aiClient,
	}
}

func (ds *decisionService) Analyze(ctx context.Context, req *types.DecisionRequest) (*types.DecisionResult, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if req == nil || req.Context == "" {
		return nil, fmt.Errorf("%w: context required", ErrInvalidInput)
	}

	if ds.aiClient == nil {
		return simulatedDecisionResult(rd.UserID, req.Context), nil
	}

	objectives, err := ds.objectiveRepo.ListByUser(ctx, nil, rd.UserID, true, maxPromptObjectives)
	if err != nil {
		ds.log.Warn("Failed to load objectives for analysis", "error", err)
		return nil, fmt.Errorf("failed to load objectives: %w", err)
	}

	userPrompt := buildUserPrompt(req, objectives)

	raw, err := ds.aiClient.GenerateDecision(ctx, axiomSystemPrompt, userPrompt)
	if err != nil {
		ds.log.Warn("Completion call failed", "error", err)
		ds.writeLog(ctx, rd.UserID, userPrompt, raw, false, err.Error(), nil)
		return nil, &AIAnalysisError{Kind: AIErrKindCompletion, Err: err}
	}

	result, err := mapDecisionResult(raw)
	if err != nil {
		ds.log.Warn("Decision mapping failed", "error", err)
		ds.writeLog(ctx, rd.UserID, userPrompt, raw, false, err.Error(), nil)
		return nil, &AIAnalysisError{Kind: AIErrKindMapping, Err: err}
	}

	// Model-supplied ownership is never trusted; generated fields get
	// server-side defaults when the model omits them.
	result.UserID = rd.UserID
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	ds.writeLog(ctx, rd.UserID, userPrompt, raw, true, "", result)
	return result, nil
}

func buildUserPrompt(req *types.DecisionRequest, objectives []*types.Objective) string {
	projected := make([]map[string]interface{}, 0, len(objectives))
	for _, objective := range objectives {
		projected = append(projected, map[string]interface{}{
			"name":       objective.Name,
			"type":       objective.Type,
			"importance": objective.Importance,
			"horizon":    objective.Horizon,
		})
	}
	objectivesJSON, err := json.Marshal(projected)
	if err != nil {
		objectivesJSON = []byte("[]")
	}

	transcript := "N/A"
	if req.UserVoiceTranscript != nil && *req.UserVoiceTranscript != "" {
		transcript = *req.UserVoiceTranscript
	}

	return fmt.Sprintf(`Context/Dilemma: %q
User Voice Transcript: %q

Current User Objectives:
%s

Analyze this situation. Identify the best action vs alternative.`, req.Context, transcript, string(objectivesJSON))
}

// simulatedDecisionResult is the fixed unconfigured-mode response. Only id
// and created_at vary between calls; every other field is constant.
func simulatedDecisionResult(userID uuid.UUID, context string) *types.DecisionResult {
	winning := "No Action"
	rejection := "OpenAI API Key missing in server environment."
	return &types.DecisionResult{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		Context:   context,
		AnalyzedActions: []types.ActionAnalysis{
			{
				ActionName: "Simulated Action (No API Key)",
				Impact: types.ActionImpact{
					ImmediateGain:     "None",
					ImmediateLoss:     "None",
					ResourcesConsumed: "None",
					LongTermPositive:  "None",
					LongTermNegative:  "None",
					HabitImpact:       "None",
					IdentityImpact:    "None",
					VisibleCost:       "None",
					HiddenCost:        "None",
					OpportunityCost:   "None",
					RiskProbability:   "low",
					RiskSeverity:      1,
				},
				Alignments:      []types.ObjectiveAlignment{},
				CalculatedScore: 0,
				IsAllowed:       true,
				RejectionReason: &rejection,
			},
		},
		WinningAction: &winning,
		AIRationale:   "Please configure OPENAI_API_KEY in backend .env to enable real analysis.",
	}
}

// writeLog records the completion exchange for diagnostics. Audit failures
// are logged and swallowed so they never fail the analyze request itself.
func (ds *decisionService) writeLog(ctx context.Context, userID uuid.UUID, prompt, response string, success bool, errText string, result *types.DecisionResult) {
	if ds.decisionLogRepo == nil {
		return
	}
	row := &types.DecisionLog{
		ID:        uuid.New(),
		UserID:    userID,
		Model:     ds.aiClient.Model(),
		Prompt:    prompt,
		Response:  response,
		Success:   success,
		Error:     errText,
		CreatedAt: time.Now().UTC(),
	}
	if result != nil {
		if encoded, err := json.Marshal(result); err == nil {
			row.Result = datatypes.JSON(encoded)
		}
	}
	if _, err := ds.decisionLogRepo.Create(ctx, nil, []*types.DecisionLog{row}); err != nil {
		ds.log.Warn("Failed to write decision log", "error", err)
	}
}
