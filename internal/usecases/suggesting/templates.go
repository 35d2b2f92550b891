package suggesting

import (
	"fmt"
	"math"

	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
	"github.com/vfg2006/campaign-diagnostics-api/pkg/utils"
)

// templateFunc é uma família de templates: recebe o issue despachado e a
// referência de tom e devolve exatamente três sugestões
type templateFunc func(issue *domain.EnrichedHypothesis, tone string) []domain.CreativeSuggestion

// Tabela de despacho id → família de templates
var strategies = map[domain.HypothesisID]templateFunc{
	domain.HypothesisROASDrop: roasDropCreatives,
	domain.HypothesisCTRDrop:  ctrDropCreatives,
	domain.HypothesisFatigue:  fatigueCreatives,
}

// newSuggestion monta a sugestão com um identificador curto único
func newSuggestion(seq int, headline, message, cta, rationale, linkedIssue string) domain.CreativeSuggestion {
	id, err := utils.GenerateID()
	if err != nil {
		id = fmt.Sprintf("creative_%d", seq)
	}

	return domain.CreativeSuggestion{
		ID:          id,
		Headline:    headline,
		Message:     message,
		CTA:         cta,
		Rationale:   rationale,
		LinkedIssue: linkedIssue,
	}
}

// deltaPhrase formata a variação percentual para o texto do criativo.
// Deltas ausentes ou não finitos viram uma frase qualitativa em vez de
// quebrar a geração.
func deltaPhrase(stats *domain.MetricStats) string {
	if stats == nil || math.IsInf(stats.DeltaPct, 0) || math.IsNaN(stats.DeltaPct) {
		return "a recent drop"
	}
	return fmt.Sprintf("%.1f%%", stats.DeltaPct)
}

// fallbackTone devolve o tom de referência ou um corpo neutro
func fallbackTone(tone string) string {
	if tone == "" {
		return "Our product — loved by thousands of happy customers."
	}
	return tone
}

// roasDropCreatives: proposta de valor + bundle + prova social
func roasDropCreatives(issue *domain.EnrichedHypothesis, tone string) []domain.CreativeSuggestion {
	delta := deltaPhrase(issue.Evidence.ROAS)

	return []domain.CreativeSuggestion{
		newSuggestion(1,
			"More value for every dollar",
			fallbackTone(tone),
			"Shop now",
			fmt.Sprintf("ROAS shifted %s vs baseline; lead with the strongest value proposition to rebuild return", delta),
			issue.Statement,
		),
		newSuggestion(2,
			"Bundle up and save",
			fmt.Sprintf("Pair your favorites and save more — our answer to %s in return on ad spend.", delta),
			"Get the bundle",
			"Bundles raise order value, compensating a weaker return per impression",
			issue.Statement,
		),
		newSuggestion(3,
			"Join thousands of happy customers",
			"Rated 4.8/5 by verified buyers. See why customers keep coming back.",
			"See reviews",
			fmt.Sprintf("Social proof restores purchase intent against %s in return on ad spend", delta),
			issue.Statement,
		),
	}
}

// ctrDropCreatives: novo gancho + pergunta de quebra de padrão + simplificação
func ctrDropCreatives(issue *domain.EnrichedHypothesis, tone string) []domain.CreativeSuggestion {
	delta := deltaPhrase(issue.Evidence.CTR)

	return []domain.CreativeSuggestion{
		newSuggestion(1,
			"Stop scrolling — this is for you",
			fallbackTone(tone),
			"Learn more",
			fmt.Sprintf("CTR moved %s vs baseline; a rewritten hook recaptures attention in the first second", delta),
			issue.Statement,
		),
		newSuggestion(2,
			"Still paying full price?",
			"A question makes the audience answer in their head before they swipe away.",
			"Find out",
			fmt.Sprintf("Pattern-interrupt question to counter the %s click-through slide", delta),
			issue.Statement,
		),
		newSuggestion(3,
			"One product. One promise.",
			"Cut the copy to a single promise and a single action.",
			"Shop now",
			fmt.Sprintf("Simplified message reduces cognitive load and counters %s in click-through", delta),
			issue.Statement,
		),
	}
}

// fatigueCreatives: refresh visual + novo ângulo narrativo + humor
func fatigueCreatives(issue *domain.EnrichedHypothesis, tone string) []domain.CreativeSuggestion {
	ctrDelta := deltaPhrase(issue.Evidence.CTR)

	return []domain.CreativeSuggestion{
		newSuggestion(1,
			"A fresh look at what you love",
			fallbackTone(tone),
			"See what's new",
			fmt.Sprintf("Impressions are up while CTR shows %s — refreshed visuals fight creative wearout", ctrDelta),
			issue.Statement,
		),
		newSuggestion(2,
			"The story you haven't heard",
			"Same product, new narrative: how it's made, who makes it, why it lasts.",
			"Discover the story",
			fmt.Sprintf("A new narrative angle resets attention for an audience showing %s in click-through after heavy exposure", ctrDelta),
			issue.Statement,
		),
		newSuggestion(3,
			"Okay, we'll say it differently this time",
			"A wink at the audience that has seen us before — humor disarms banner blindness.",
			"Take another look",
			fmt.Sprintf("Humor/pattern disruption for a fatigued audience (CTR %s on rising impressions)", ctrDelta),
			issue.Statement,
		),
	}
}

// genericCreatives: benefício + urgência + prova social, usados quando não há
// issue primário ou quando o id despachado não tem família própria
func genericCreatives(linkedIssue, tone string) []domain.CreativeSuggestion {
	return []domain.CreativeSuggestion{
		newSuggestion(1,
			"Made for your everyday",
			fallbackTone(tone),
			"Shop now",
			"Benefit-led copy keeps performance steady when no issue is detected",
			linkedIssue,
		),
		newSuggestion(2,
			"Only this week",
			"Limited-time offer — don't miss out.",
			"Shop the sale",
			"Urgency sustains momentum between diagnostic cycles",
			linkedIssue,
		),
		newSuggestion(3,
			"Loved by thousands",
			"Join the customers who already made the switch.",
			"See reviews",
			"Social proof is the safest evergreen angle",
			linkedIssue,
		),
	}
}
