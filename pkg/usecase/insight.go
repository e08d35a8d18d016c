package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/service/index"
	"github.com/labchain/anamnesis/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/pattern_analysis.md
var patternAnalysisPromptTmpl string

//go:embed prompt/case_insights.md
var caseInsightsPromptTmpl string

var (
	patternAnalysisPrompt = template.Must(template.New("pattern_analysis").Parse(patternAnalysisPromptTmpl))
	caseInsightsPrompt    = template.Must(template.New("case_insights").Parse(caseInsightsPromptTmpl))
)

type patternPromptData struct {
	FocusArea string
	Records   string
}

type insightPromptData struct {
	SessionNumber int
	Depression    int
	Anxiety       int
	Loneliness    int
	Challenges    string
	ClientProfile string
	KeyTopics     string
	SimilarCases  string
}

// AnalyzePatterns synthesizes cross-record patterns for one focus area,
// optionally restricted to a date range. This is a generation-service
// call; a failed call surfaces ErrGenerationService and returns no
// partial analysis.
func (uc *UseCases) AnalyzePatterns(ctx context.Context, focusArea types.FocusArea, dateRange *model.DateRange) (*model.PatternAnalysis, error) {
	if !focusArea.IsValid() {
		return nil, goerr.New("invalid focus area", goerr.V(FocusAreaKey, focusArea))
	}

	var records []*model.HistoricalRecord
	var err error
	if dateRange != nil {
		records, err = uc.repo.ListByDateRange(ctx, *dateRange)
	} else {
		records, err = uc.repo.List(ctx)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to collect records for analysis")
	}

	blocks := make([]string, len(records))
	for i, record := range records {
		blocks[i] = index.Project(record, types.DimensionComprehensive)
	}

	var buf bytes.Buffer
	if err := patternAnalysisPrompt.Execute(&buf, patternPromptData{
		FocusArea: focusArea.Label(),
		Records:   strings.Join(blocks, "\n\n---\n\n"),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to render pattern analysis prompt")
	}

	text, err := uc.generate(ctx, buf.String())
	if err != nil {
		return nil, goerr.Wrap(err, "pattern analysis generation failed",
			goerr.V(FocusAreaKey, focusArea),
		)
	}

	analysis := parsePatternAnalysis(text)
	if len(analysis.MissingSections) > 0 {
		logging.From(ctx).Warn("pattern analysis response parsed partially",
			"focusArea", focusArea,
			"missingSections", analysis.MissingSections,
		)
	}
	return analysis, nil
}

// GenerateInsightsForCase retrieves the most similar historical cases
// and asks the generation service for guidance grounded in them.
func (uc *UseCases) GenerateInsightsForCase(ctx context.Context, currentCase *model.CurrentCase) (*model.CaseInsights, error) {
	similarCases, err := uc.FindSimilarCases(ctx, currentCase, DefaultSimilarLimit, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find similar cases for insight generation")
	}

	matched := make([]*model.HistoricalRecord, len(similarCases))
	blocks := make([]string, len(similarCases))
	for i, sc := range similarCases {
		matched[i] = sc.Record
		blocks[i] = fmt.Sprintf("유사도: %.1f%%\n매칭 요소: %s\n%s\n관련 통찰: %s",
			sc.Similarity*100,
			strings.Join(sc.MatchingFactors, ", "),
			index.Project(sc.Record, types.DimensionComprehensive),
			strings.Join(sc.RelevantInsights, ", "),
		)
	}

	var buf bytes.Buffer
	if err := caseInsightsPrompt.Execute(&buf, insightPromptData{
		SessionNumber: currentCase.SessionNumber,
		Depression:    currentCase.EmotionalState.Depression,
		Anxiety:       currentCase.EmotionalState.Anxiety,
		Loneliness:    currentCase.EmotionalState.Loneliness,
		Challenges:    strings.Join(currentCase.Challenges, ", "),
		ClientProfile: currentCase.ClientProfile,
		KeyTopics:     strings.Join(KeyTopics(matched), ", "),
		SimilarCases:  strings.Join(blocks, "\n\n---\n\n"),
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to render case insight prompt")
	}

	text, err := uc.generate(ctx, buf.String())
	if err != nil {
		return nil, goerr.Wrap(err, "case insight generation failed")
	}

	insights := parseCaseInsights(text)
	if len(insights.MissingSections) > 0 {
		logging.From(ctx).Warn("case insight response parsed partially",
			"missingSections", insights.MissingSections,
		)
	}
	return insights, nil
}

// generate runs one single-shot generation session. At most one call is
// outstanding per invocation; cancellation propagates through ctx and
// touches no stored state.
func (uc *UseCases) generate(ctx context.Context, prompt string) (string, error) {
	sessionID := uuid.Must(uuid.NewV7()).String()
	logger := logging.From(ctx)
	logger.Debug("starting generation session", "sessionID", sessionID)

	session, err := uc.llmClient.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(ErrGenerationService, err.Error())
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(ErrGenerationService, err.Error(),
			goerr.V("sessionID", sessionID),
		)
	}
	if resp == nil || len(resp.Texts) == 0 {
		return "", goerr.Wrap(ErrGenerationService, "generation returned empty response",
			goerr.V("sessionID", sessionID),
		)
	}

	logger.Debug("generation session finished", "sessionID", sessionID)
	return strings.Join(resp.Texts, "\n"), nil
}
