package index

import (
	"fmt"
	"strings"

	"github.com/labchain/anamnesis/pkg/domain/model"
	"github.com/labchain/anamnesis/pkg/domain/types"
)

// Project renders a record into the canonical textual profile for one
// dimension. It is a pure function: the same record and dimension always
// yield byte-identical text, which keeps embeddings reproducible across
// rebuilds.
func Project(record *model.HistoricalRecord, dimension types.Dimension) string {
	switch dimension {
	case types.DimensionEmotional:
		return projectEmotional(record)
	case types.DimensionIntervention:
		return projectIntervention(record)
	case types.DimensionOutcome:
		return projectOutcome(record)
	default:
		return projectComprehensive(record)
	}
}

func projectComprehensive(r *model.HistoricalRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "클라이언트: %s\n", r.ClientID)
	fmt.Fprintf(&b, "회기: %d회차\n", r.SessionNumber)
	fmt.Fprintf(&b, "날짜: %s\n", r.Date)
	fmt.Fprintf(&b, "지속시간: %d분\n", r.DurationMinutes)
	b.WriteString("감정 상태:\n")
	fmt.Fprintf(&b, "- 우울: %d/10\n", r.EmotionalState.Depression)
	fmt.Fprintf(&b, "- 불안: %d/10\n", r.EmotionalState.Anxiety)
	fmt.Fprintf(&b, "- 외로움: %d/10\n", r.EmotionalState.Loneliness)
	fmt.Fprintf(&b, "- 분노: %d/10\n", r.EmotionalState.Anger)
	fmt.Fprintf(&b, "- 전반적 기분: %s\n", r.EmotionalState.Mood)
	fmt.Fprintf(&b, "적용된 개입: %s\n", strings.Join(r.Interventions, ", "))
	fmt.Fprintf(&b, "사용된 기법: %s\n", strings.Join(r.Techniques, ", "))
	fmt.Fprintf(&b, "성과 및 결과: %s\n", strings.Join(r.Outcomes, ", "))
	fmt.Fprintf(&b, "도전 과제: %s\n", strings.Join(r.Challenges, ", "))
	fmt.Fprintf(&b, "돌파구/성과: %s\n", strings.Join(r.Breakthroughs, ", "))
	fmt.Fprintf(&b, "특이사항: %s\n", r.SpecialNotes)
	fmt.Fprintf(&b, "세션 요약: %s\n", r.Summary)
	fmt.Fprintf(&b, "후속 조치: %s\n", strings.Join(r.FollowUpActions, ", "))
	fmt.Fprintf(&b, "위험도: %s\n", r.RiskLevel)
	fmt.Fprintf(&b, "효과성: %d/10", r.Effectiveness)
	return b.String()
}

// projectEmotional renders the emotion profile plus what was done about
// it and how well it worked. Challenges and breakthroughs are
// deliberately omitted; they belong to the other dimensions.
func projectEmotional(r *model.HistoricalRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "감정 프로필: 우울 %d, 불안 %d, 외로움 %d, 분노 %d\n",
		r.EmotionalState.Depression, r.EmotionalState.Anxiety,
		r.EmotionalState.Loneliness, r.EmotionalState.Anger)
	fmt.Fprintf(&b, "기분: %s\n", r.EmotionalState.Mood)
	fmt.Fprintf(&b, "적용 개입: %s\n", strings.Join(r.Interventions, ", "))
	fmt.Fprintf(&b, "결과: %s\n", strings.Join(r.Outcomes, ", "))
	fmt.Fprintf(&b, "효과성: %d/10", r.Effectiveness)
	return b.String()
}

func projectIntervention(r *model.HistoricalRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "개입 전략: %s\n", strings.Join(r.Interventions, ", "))
	fmt.Fprintf(&b, "사용 기법: %s\n", strings.Join(r.Techniques, ", "))
	fmt.Fprintf(&b, "대상 문제: %s\n", strings.Join(r.Challenges, ", "))
	fmt.Fprintf(&b, "달성 성과: %s\n", strings.Join(r.Outcomes, ", "))
	fmt.Fprintf(&b, "돌파구: %s\n", strings.Join(r.Breakthroughs, ", "))
	fmt.Fprintf(&b, "효과성: %d/10", r.Effectiveness)
	return b.String()
}

func projectOutcome(r *model.HistoricalRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "달성 결과: %s\n", strings.Join(r.Outcomes, ", "))
	fmt.Fprintf(&b, "성공 요인: %s\n", strings.Join(r.Breakthroughs, ", "))
	fmt.Fprintf(&b, "극복 과제: %s\n", strings.Join(r.Challenges, ", "))
	fmt.Fprintf(&b, "위험도 변화: %s\n", r.RiskLevel)
	fmt.Fprintf(&b, "전체 효과성: %d/10\n", r.Effectiveness)
	fmt.Fprintf(&b, "후속 계획: %s", strings.Join(r.FollowUpActions, ", "))
	return b.String()
}

// ProjectQuery renders a current case in the comprehensive layout,
// substituting current-case fields where historical-only fields (id,
// date, outcomes) do not exist. The structural match keeps query and
// corpus embeddings in the same textual register.
func ProjectQuery(currentCase *model.CurrentCase) string {
	var b strings.Builder
	b.WriteString("감정 상태:\n")
	fmt.Fprintf(&b, "- 우울: %d/10\n", currentCase.EmotionalState.Depression)
	fmt.Fprintf(&b, "- 불안: %d/10\n", currentCase.EmotionalState.Anxiety)
	fmt.Fprintf(&b, "- 외로움: %d/10\n", currentCase.EmotionalState.Loneliness)
	fmt.Fprintf(&b, "- 분노: %d/10\n", currentCase.EmotionalState.Anger)
	fmt.Fprintf(&b, "- 전반적 기분: %s\n", currentCase.EmotionalState.Mood)
	fmt.Fprintf(&b, "도전 과제: %s", strings.Join(currentCase.Challenges, ", "))
	if len(currentCase.Interventions) > 0 {
		fmt.Fprintf(&b, "\n적용된 개입: %s", strings.Join(currentCase.Interventions, ", "))
	}
	if currentCase.ClientProfile != "" {
		fmt.Fprintf(&b, "\n클라이언트 특성: %s", currentCase.ClientProfile)
	}
	return b.String()
}
