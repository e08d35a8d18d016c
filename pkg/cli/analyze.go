package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/labchain/anamnesis/pkg/cli/config"
	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
	"github.com/labchain/anamnesis/pkg/repository/memory"
	"github.com/labchain/anamnesis/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var focusArea string
	var dateFrom string
	var dateTo string
	var clientID int64
	var appCfg config.AppConfig
	var geminiCfg config.Gemini
	var openaiCfg config.OpenAI
	var recordsCfg config.Records

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "focus-area",
			Aliases:     []string{"f"},
			Usage:       "Analysis focus area (interventions, outcomes, emotional_trends, risk_factors)",
			Value:       string(types.FocusAreaInterventions),
			Sources:     cli.EnvVars("ANAMNESIS_FOCUS_AREA"),
			Destination: &focusArea,
		},
		&cli.StringFlag{
			Name:        "from",
			Usage:       "Restrict analysis to records on or after this date (YYYY-MM-DD)",
			Destination: &dateFrom,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "Restrict analysis to records on or before this date (YYYY-MM-DD)",
			Destination: &dateTo,
		},
		&cli.Int64Flag{
			Name:        "client",
			Usage:       "Client ID for the emotional trend and progress report",
			Destination: &clientID,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, openaiCfg.Flags()...)
	flags = append(flags, recordsCfg.Flags()...)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Run pattern analysis over a record batch and print a report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			area, err := types.ParseFocusArea(focusArea)
			if err != nil {
				return goerr.Wrap(err, "invalid focus area")
			}

			var dateRange *model.DateRange
			if dateFrom != "" || dateTo != "" {
				if dateFrom == "" || dateTo == "" {
					return goerr.New("both --from and --to are required for a date range")
				}
				dateRange = &model.DateRange{From: dateFrom, To: dateTo}
			}

			if err := appCfg.Configure(); err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			llmClient, err := config.ResolveLLMClient(ctx, &geminiCfg, &openaiCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM provider")
			}

			records, err := recordsCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load record batch")
			}

			repo := memory.New()
			uc := usecase.New(repo, llmClient, appCfg.UseCaseOptions()...)
			if err := uc.Initialize(ctx, records); err != nil {
				return goerr.Wrap(err, "failed to initialize record store and indices")
			}

			analysis, err := uc.AnalyzePatterns(ctx, area, dateRange)
			if err != nil {
				return goerr.Wrap(err, "pattern analysis failed")
			}
			printPatternAnalysis(area, analysis)

			if clientID > 0 {
				if err := printClientProgress(ctx, repo, types.ClientID(clientID)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

var (
	reportTitle   = color.New(color.FgCyan, color.Bold)
	reportSection = color.New(color.FgWhite, color.Bold)
	reportGood    = color.New(color.FgGreen)
	reportBad     = color.New(color.FgRed)
	reportFlat    = color.New(color.FgYellow)
)

func printList(header string, items []string) {
	if len(items) == 0 {
		return
	}
	reportSection.Printf("\n%s\n", header)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func printPatternAnalysis(area types.FocusArea, analysis *model.PatternAnalysis) {
	reportTitle.Printf("패턴 분석: %s\n", area.Label())

	printList("공통 패턴", analysis.CommonPatterns)
	printList("성공적인 개입", analysis.SuccessfulInterventions)
	printList("위험 요소", analysis.RiskFactors)
	printList("예측적 통찰", analysis.PredictiveInsights)
	printList("권장사항", analysis.Recommendations)

	if len(analysis.MissingSections) > 0 {
		reportFlat.Printf("\n누락된 섹션: %v\n", analysis.MissingSections)
	}
}

func trendPrinter(trend types.Trend) *color.Color {
	switch trend {
	case types.TrendImproving:
		return reportGood
	case types.TrendWorsening:
		return reportBad
	default:
		return reportFlat
	}
}

func printClientProgress(ctx context.Context, repo *memory.Repository, clientID types.ClientID) error {
	sessions, err := repo.ListByClient(ctx, clientID)
	if err != nil {
		return goerr.Wrap(err, "failed to list client sessions", goerr.V("clientID", clientID))
	}
	if len(sessions) == 0 {
		return goerr.New("no sessions for client", goerr.V("clientID", clientID))
	}

	reportTitle.Printf("\n클라이언트 %s 진전 보고\n", clientID)

	history := make([]model.EmotionalState, len(sessions))
	for i, session := range sessions {
		history[i] = session.EmotionalState
	}

	for _, trend := range usecase.CalculateTrends(history) {
		printer := trendPrinter(trend.Trend)
		printer.Printf("  %s: %d -> %d (%+.1f, %s)\n",
			trend.Metric, trend.Previous, trend.Current, trend.Change, trend.Trend)
	}

	if topics := usecase.KeyTopics(sessions); len(topics) > 0 {
		reportSection.Printf("\n주요 반복 주제\n")
		fmt.Printf("  %s\n", strings.Join(topics, ", "))
	}

	progress := usecase.SummarizeProgress(sessions)
	reportSection.Printf("\n%s\n", progress.Overall)
	for _, item := range progress.Improvements {
		reportGood.Printf("  + %s\n", item)
	}
	for _, item := range progress.Concerns {
		reportBad.Printf("  ! %s\n", item)
	}

	return nil
}
