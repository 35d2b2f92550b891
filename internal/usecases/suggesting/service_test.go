package suggesting

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

func enrichedWith(id domain.HypothesisID, impact domain.Impact, confidence float64) domain.EnrichedHypothesis {
	return domain.EnrichedHypothesis{
		Hypothesis:   domain.NewHypothesis(id),
		Impact:       impact,
		Confidence:   confidence,
		CampaignName: "camp_test",
	}
}

func TestSelectPrimaryIssue(t *testing.T) {
	tests := []struct {
		name       string
		hypotheses []domain.EnrichedHypothesis
		wantID     domain.HypothesisID
		wantNil    bool
	}{
		{
			name:    "Lista vazia não tem issue primário",
			wantNil: true,
		},
		{
			name: "h_none e h_insufficient_data não concorrem",
			hypotheses: []domain.EnrichedHypothesis{
				enrichedWith(domain.HypothesisNone, domain.ImpactLow, 0.5),
				enrichedWith(domain.HypothesisInsufficientData, domain.ImpactLow, 0.2),
			},
			wantNil: true,
		},
		{
			name: "Maior pontuação vence",
			hypotheses: []domain.EnrichedHypothesis{
				enrichedWith(domain.HypothesisCTRDrop, domain.ImpactMedium, 0.60), // 1.20
				enrichedWith(domain.HypothesisROASDrop, domain.ImpactHigh, 0.90),  // 2.70
			},
			wantID: domain.HypothesisROASDrop,
		},
		{
			name: "Empate resolve para a primeira na ordem de entrada",
			hypotheses: []domain.EnrichedHypothesis{
				enrichedWith(domain.HypothesisCTRDrop, domain.ImpactHigh, 0.75),
				enrichedWith(domain.HypothesisROASDrop, domain.ImpactHigh, 0.75),
			},
			wantID: domain.HypothesisCTRDrop,
		},
		{
			name: "Impacto desconhecido usa peso 1",
			hypotheses: []domain.EnrichedHypothesis{
				enrichedWith(domain.HypothesisCTRDrop, domain.Impact("critical"), 0.90), // 0.90
				enrichedWith(domain.HypothesisROASDrop, domain.ImpactMedium, 0.60),      // 1.20
			},
			wantID: domain.HypothesisROASDrop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPrimaryIssue(tt.hypotheses)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}

func TestSelectPrimaryIssueIsDeterministic(t *testing.T) {
	hypotheses := []domain.EnrichedHypothesis{
		enrichedWith(domain.HypothesisROASDrop, domain.ImpactHigh, 0.75),
		enrichedWith(domain.HypothesisCTRDrop, domain.ImpactHigh, 0.75),
		enrichedWith(domain.HypothesisFatigue, domain.ImpactMedium, 0.90),
	}

	first := SelectPrimaryIssue(hypotheses)
	for i := 0; i < 10; i++ {
		again := SelectPrimaryIssue(hypotheses)
		assert.Equal(t, first.ID, again.ID)
	}
}

func assertThreeDistinct(t *testing.T, suggestions []domain.CreativeSuggestion) {
	t.Helper()

	assert.Len(t, suggestions, 3)

	seen := map[string]bool{}
	for _, s := range suggestions {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "id duplicado: %s", s.ID)
		seen[s.ID] = true

		assert.NotEmpty(t, s.Headline)
		assert.NotEmpty(t, s.Message)
		assert.NotEmpty(t, s.CTA)
		assert.NotEmpty(t, s.Rationale)
	}
}

// assertAllReferenceDelta confere que cada sugestão da família cita a
// evidência no corpo ou na justificativa
func assertAllReferenceDelta(t *testing.T, suggestions []domain.CreativeSuggestion, phrase string) {
	t.Helper()

	for i, s := range suggestions {
		assert.Truef(t,
			strings.Contains(s.Message, phrase) || strings.Contains(s.Rationale, phrase),
			"sugestão %d não cita a evidência %q: message=%q rationale=%q", i+1, phrase, s.Message, s.Rationale,
		)
	}
}

func TestSuggestWithoutPrimaryIssue(t *testing.T) {
	service := NewService()

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{
		enrichedWith(domain.HypothesisNone, domain.ImpactLow, 0.5),
	}, nil)

	assertThreeDistinct(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, domain.LinkedIssueNone, s.LinkedIssue)
	}
}

func TestSuggestROASDropFamily(t *testing.T) {
	service := NewService()

	issue := enrichedWith(domain.HypothesisROASDrop, domain.ImpactHigh, 0.90)
	issue.Evidence = domain.Evidence{
		ROAS: &domain.MetricStats{Pre: 4.0, Post: 2.0, DeltaAbs: -2.0, DeltaPct: -50.0},
	}

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{issue}, []string{"  Best shoes in town  "})

	assertThreeDistinct(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, issue.Statement, s.LinkedIssue)
	}

	// O tom vem do primeiro exemplo não vazio, sem espaços nas pontas
	assert.Equal(t, "Best shoes in town", suggestions[0].Message)

	// A evidência numérica aparece formatada em todas as sugestões da família
	assertAllReferenceDelta(t, suggestions, "-50.0%")
}

func TestSuggestCTRDropFamily(t *testing.T) {
	service := NewService()

	issue := enrichedWith(domain.HypothesisCTRDrop, domain.ImpactMedium, 0.60)
	issue.Evidence = domain.Evidence{
		CTR: &domain.MetricStats{Pre: 2.0, Post: 1.5, DeltaAbs: -0.5, DeltaPct: -25.0},
	}

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{issue}, nil)

	assertThreeDistinct(t, suggestions)
	assertAllReferenceDelta(t, suggestions, "-25.0%")
	for _, s := range suggestions {
		assert.Equal(t, issue.Statement, s.LinkedIssue)
	}
}

func TestSuggestFatigueFamily(t *testing.T) {
	service := NewService()

	issue := enrichedWith(domain.HypothesisFatigue, domain.ImpactHigh, 0.60)
	issue.Evidence = domain.Evidence{
		CTR:         &domain.MetricStats{Pre: 2.0, Post: 1.5, DeltaAbs: -0.5, DeltaPct: -25.0},
		Impressions: &domain.MetricStats{Pre: 1000, Post: 1500, DeltaAbs: 500, DeltaPct: 50.0},
	}

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{issue}, nil)

	assertThreeDistinct(t, suggestions)
	assertAllReferenceDelta(t, suggestions, "-25.0%")
	for _, s := range suggestions {
		assert.Equal(t, issue.Statement, s.LinkedIssue)
	}
}

func TestSuggestUnknownIssueFallsBackToGeneric(t *testing.T) {
	service := NewService()

	issue := domain.EnrichedHypothesis{
		Hypothesis: domain.Hypothesis{ID: "h_unmapped", Statement: "Something new", Segment: domain.SegmentOverall},
		Impact:     domain.ImpactHigh,
		Confidence: 0.9,
	}

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{issue}, nil)

	assertThreeDistinct(t, suggestions)
	for _, s := range suggestions {
		assert.Equal(t, "Something new", s.LinkedIssue)
	}
}

func TestSuggestNonFiniteDeltaUsesQualitativePhrase(t *testing.T) {
	service := NewService()

	issue := enrichedWith(domain.HypothesisROASDrop, domain.ImpactLow, 0.90)
	issue.Evidence = domain.Evidence{
		ROAS: &domain.MetricStats{Pre: 0, Post: 2.0, DeltaAbs: 2.0, DeltaPct: math.Inf(1)},
	}

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{issue}, nil)

	assertThreeDistinct(t, suggestions)
	assertAllReferenceDelta(t, suggestions, "a recent drop")
	for _, s := range suggestions {
		assert.NotContains(t, s.Rationale, "Inf")
	}
}

func TestSuggestMissingEvidenceDoesNotPanic(t *testing.T) {
	service := NewService()

	// Evidência totalmente ausente rende frases qualitativas, nunca pânico
	issue := enrichedWith(domain.HypothesisCTRDrop, domain.ImpactMedium, 0.60)

	suggestions := service.Suggest("camp_test", []domain.EnrichedHypothesis{issue}, nil)
	assertThreeDistinct(t, suggestions)
}

func TestToneExample(t *testing.T) {
	assert.Equal(t, "", toneExample(nil))
	assert.Equal(t, "", toneExample([]string{"", "   "}))
	assert.Equal(t, "first", toneExample([]string{"  first  ", "second"}))
}
