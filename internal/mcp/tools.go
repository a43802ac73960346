package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/AdAstra1111/project-lane-navigator-sub012/internal/ruleset"
)

type GetRulesetInput struct {
	Lane string `json:"lane" jsonschema:"production lane id"`
}

type DeriveProfileInput struct {
	Lane        string               `json:"lane" jsonschema:"production lane id"`
	Influencers []ruleset.Influencer `json:"influencers,omitempty" jsonschema:"weighted reference titles"`
}

type MergeRulesetInput struct {
	Lane             string               `json:"lane" jsonschema:"production lane id"`
	Influencers      []ruleset.Influencer `json:"influencers,omitempty" jsonschema:"weighted reference titles for the derived floor"`
	ProjectOverrides []ruleset.Override   `json:"project_overrides,omitempty" jsonschema:"project-layer overrides, applied first"`
	RunOverrides     []ruleset.Override   `json:"run_overrides,omitempty" jsonschema:"run-layer overrides, win on shared paths"`
}

type DetectConflictsInput struct {
	Profile ruleset.EngineProfile `json:"profile" jsonschema:"profile to validate"`
}

type ScoreDraftInput struct {
	Text string `json:"text" jsonschema:"draft text"`
}

type RunGateInput struct {
	Text       string                 `json:"text" jsonschema:"draft text"`
	Lane       string                 `json:"lane,omitempty" jsonschema:"lane whose defaults gate the draft"`
	Profile    *ruleset.EngineProfile `json:"profile,omitempty" jsonschema:"explicit profile, takes precedence over lane"`
	Final      bool                   `json:"final,omitempty" jsonschema:"apply the tightened final-pass thresholds"`
	PriorScore *float64               `json:"prior_score,omitempty" jsonschema:"melodrama score of the previous draft"`
}

type BuildRepairInput struct {
	Failures       []string               `json:"failures" jsonschema:"gate failure codes"`
	Lane           string                 `json:"lane,omitempty" jsonschema:"lane whose priorities open the instruction"`
	Profile        *ruleset.EngineProfile `json:"profile,omitempty" jsonschema:"explicit profile, takes precedence over lane"`
	ForbiddenFound []string               `json:"forbidden_found,omitempty" jsonschema:"forbidden move ids found in the draft"`
}

type FingerprintDraftInput struct {
	Text    string                 `json:"text" jsonschema:"draft text"`
	Lane    string                 `json:"lane,omitempty" jsonschema:"lane whose profile shapes the fingerprint"`
	Profile *ruleset.EngineProfile `json:"profile,omitempty" jsonschema:"explicit profile, takes precedence over lane"`
}

type SimilarityRiskInput struct {
	Fingerprint ruleset.Fingerprint   `json:"fingerprint" jsonschema:"fingerprint of the current draft"`
	Recent      []ruleset.Fingerprint `json:"recent,omitempty" jsonschema:"fingerprints from the recent window"`
}

type RulesSummaryInput struct {
	Lane    string                 `json:"lane,omitempty" jsonschema:"production lane id"`
	Profile *ruleset.EngineProfile `json:"profile,omitempty" jsonschema:"explicit profile, takes precedence over lane"`
}

type ProfileOutput struct {
	Profile ruleset.EngineProfile `json:"profile"`
}

type MergeRulesetOutput struct {
	Profile   ruleset.EngineProfile `json:"profile"`
	Conflicts []ruleset.Conflict    `json:"conflicts"`
}

type DetectConflictsOutput struct {
	Conflicts []ruleset.Conflict `json:"conflicts"`
}

type ScoreDraftOutput struct {
	Metrics        ruleset.Metrics `json:"metrics"`
	MelodramaScore float64         `json:"melodrama_score"`
	NuanceScore    float64         `json:"nuance_score"`
}

type RunGateOutput struct {
	Passed bool               `json:"passed"`
	Result ruleset.GateResult `json:"result"`
}

type BuildRepairOutput struct {
	Instruction string `json:"instruction"`
}

type FingerprintDraftOutput struct {
	Fingerprint ruleset.Fingerprint `json:"fingerprint"`
}

type SimilarityRiskOutput struct {
	Risk float64 `json:"risk"`
}

type RulesSummaryOutput struct {
	Summary string `json:"summary"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_ruleset",
		Description: "Return the default ruleset profile for a lane",
	}, s.handleGetRuleset)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "derive_profile",
		Description: "Derive a profile from a lane and weighted influencers",
	}, s.handleDeriveProfile)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "merge_ruleset",
		Description: "Merge influencer and override layers into a final profile",
	}, s.handleMergeRuleset)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "detect_conflicts",
		Description: "Check a profile for internal contradictions",
	}, s.handleDetectConflicts)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "score_draft",
		Description: "Compute text metrics and melodrama and nuance scores for a draft",
	}, s.handleScoreDraft)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "run_gate",
		Description: "Run the quality gate over a draft",
	}, s.handleRunGate)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "build_repair",
		Description: "Build a rewrite instruction from gate failures",
	}, s.handleBuildRepair)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "fingerprint_draft",
		Description: "Fingerprint a draft for repetition tracking",
	}, s.handleFingerprintDraft)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "similarity_risk",
		Description: "Estimate repetition risk against recent fingerprints",
	}, s.handleSimilarityRisk)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "rules_summary",
		Description: "Render a human-readable summary of a profile",
	}, s.handleRulesSummary)
}

func (s *Server) handleGetRuleset(ctx context.Context, req *sdk.CallToolRequest, input GetRulesetInput) (*sdk.CallToolResult, ProfileOutput, error) {
	lane, err := ruleset.ParseLane(input.Lane)
	if err != nil {
		return nil, ProfileOutput{}, err
	}
	profile, err := ruleset.DefaultProfile(lane)
	if err != nil {
		return nil, ProfileOutput{}, err
	}
	s.logCall("get_ruleset", zap.String("lane", input.Lane))
	return nil, ProfileOutput{Profile: profile}, nil
}

func (s *Server) handleDeriveProfile(ctx context.Context, req *sdk.CallToolRequest, input DeriveProfileInput) (*sdk.CallToolResult, ProfileOutput, error) {
	lane, err := ruleset.ParseLane(input.Lane)
	if err != nil {
		return nil, ProfileOutput{}, err
	}
	profile, err := ruleset.DeriveProfile(lane, input.Influencers, s.tunables)
	if err != nil {
		return nil, ProfileOutput{}, err
	}
	s.logCall("derive_profile", zap.String("lane", input.Lane), zap.Int("influencers", len(input.Influencers)))
	return nil, ProfileOutput{Profile: profile}, nil
}

func (s *Server) handleMergeRuleset(ctx context.Context, req *sdk.CallToolRequest, input MergeRulesetInput) (*sdk.CallToolResult, MergeRulesetOutput, error) {
	lane, err := ruleset.ParseLane(input.Lane)
	if err != nil {
		return nil, MergeRulesetOutput{}, err
	}
	base, err := ruleset.DefaultProfile(lane)
	if err != nil {
		return nil, MergeRulesetOutput{}, err
	}

	var derived *ruleset.EngineProfile
	if len(input.Influencers) > 0 {
		d, err := ruleset.DeriveProfile(lane, input.Influencers, s.tunables)
		if err != nil {
			return nil, MergeRulesetOutput{}, err
		}
		derived = &d
	}

	merged, err := ruleset.MergeRuleset(base, derived, input.ProjectOverrides, input.RunOverrides)
	if err != nil {
		return nil, MergeRulesetOutput{}, err
	}
	s.logCall("merge_ruleset", zap.String("lane", input.Lane),
		zap.Int("project_overrides", len(input.ProjectOverrides)),
		zap.Int("run_overrides", len(input.RunOverrides)))
	return nil, MergeRulesetOutput{Profile: merged, Conflicts: ruleset.DetectConflicts(merged)}, nil
}

func (s *Server) handleDetectConflicts(ctx context.Context, req *sdk.CallToolRequest, input DetectConflictsInput) (*sdk.CallToolResult, DetectConflictsOutput, error) {
	if input.Profile.Lane == "" {
		return nil, DetectConflictsOutput{}, fmt.Errorf("profile is required")
	}
	conflicts := ruleset.DetectConflicts(input.Profile)
	s.logCall("detect_conflicts", zap.String("lane", string(input.Profile.Lane)), zap.Int("conflicts", len(conflicts)))
	return nil, DetectConflictsOutput{Conflicts: conflicts}, nil
}

func (s *Server) handleScoreDraft(ctx context.Context, req *sdk.CallToolRequest, input ScoreDraftInput) (*sdk.CallToolResult, ScoreDraftOutput, error) {
	if input.Text == "" {
		return nil, ScoreDraftOutput{}, fmt.Errorf("text is required")
	}
	metrics := ruleset.ComputeMetrics(input.Text)
	s.logCall("score_draft", zap.Int("word_count", metrics.WordCount))
	return nil, ScoreDraftOutput{
		Metrics:        metrics,
		MelodramaScore: ruleset.MelodramaScore(metrics, s.tunables),
		NuanceScore:    ruleset.NuanceScore(metrics, s.tunables),
	}, nil
}

func (s *Server) handleRunGate(ctx context.Context, req *sdk.CallToolRequest, input RunGateInput) (*sdk.CallToolResult, RunGateOutput, error) {
	if input.Text == "" {
		return nil, RunGateOutput{}, fmt.Errorf("text is required")
	}
	profile, err := s.resolveProfile(input.Lane, input.Profile)
	if err != nil {
		return nil, RunGateOutput{}, err
	}
	metrics := ruleset.ComputeMetrics(input.Text)
	result := ruleset.RunGate(metrics, input.Text, profile, input.PriorScore, input.Final, s.tunables)
	s.logCall("run_gate", zap.String("lane", string(profile.Lane)),
		zap.Bool("final", input.Final),
		zap.Bool("passed", result.Passed()),
		zap.Int("failures", len(result.Failures)))
	return nil, RunGateOutput{Passed: result.Passed(), Result: result}, nil
}

func (s *Server) handleBuildRepair(ctx context.Context, req *sdk.CallToolRequest, input BuildRepairInput) (*sdk.CallToolResult, BuildRepairOutput, error) {
	profile, err := s.resolveProfile(input.Lane, input.Profile)
	if err != nil {
		return nil, BuildRepairOutput{}, err
	}
	failures := make([]ruleset.FailureCode, 0, len(input.Failures))
	for _, failure := range input.Failures {
		failures = append(failures, ruleset.FailureCode(failure))
	}
	instruction := ruleset.BuildRepairInstruction(failures, profile, input.ForbiddenFound)
	s.logCall("build_repair", zap.String("lane", string(profile.Lane)), zap.Int("failures", len(failures)))
	return nil, BuildRepairOutput{Instruction: instruction}, nil
}

func (s *Server) handleFingerprintDraft(ctx context.Context, req *sdk.CallToolRequest, input FingerprintDraftInput) (*sdk.CallToolResult, FingerprintDraftOutput, error) {
	if input.Text == "" {
		return nil, FingerprintDraftOutput{}, fmt.Errorf("text is required")
	}
	profile, err := s.resolveProfile(input.Lane, input.Profile)
	if err != nil {
		return nil, FingerprintDraftOutput{}, err
	}
	fp := ruleset.ComputeFingerprint(input.Text, profile)
	s.logCall("fingerprint_draft", zap.String("lane", string(fp.Lane)), zap.String("dominant_signal", fp.DominantSignal))
	return nil, FingerprintDraftOutput{Fingerprint: fp}, nil
}

func (s *Server) handleSimilarityRisk(ctx context.Context, req *sdk.CallToolRequest, input SimilarityRiskInput) (*sdk.CallToolResult, SimilarityRiskOutput, error) {
	risk := ruleset.SimilarityRisk(input.Fingerprint, input.Recent)
	s.logCall("similarity_risk", zap.Int("recent", len(input.Recent)), zap.Float64("risk", risk))
	return nil, SimilarityRiskOutput{Risk: risk}, nil
}

func (s *Server) handleRulesSummary(ctx context.Context, req *sdk.CallToolRequest, input RulesSummaryInput) (*sdk.CallToolResult, RulesSummaryOutput, error) {
	profile, err := s.resolveProfile(input.Lane, input.Profile)
	if err != nil {
		return nil, RulesSummaryOutput{}, err
	}
	s.logCall("rules_summary", zap.String("lane", string(profile.Lane)))
	return nil, RulesSummaryOutput{Summary: ruleset.Summary(profile)}, nil
}

// resolveProfile picks the explicit profile when one is supplied, otherwise
// the default profile of the named lane.
func (s *Server) resolveProfile(laneValue string, profile *ruleset.EngineProfile) (ruleset.EngineProfile, error) {
	if profile != nil {
		return profile.Clone(), nil
	}
	lane, err := ruleset.ParseLane(laneValue)
	if err != nil {
		return ruleset.EngineProfile{}, err
	}
	return ruleset.DefaultProfile(lane)
}
