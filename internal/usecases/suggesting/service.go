// Package suggesting seleciona o issue primário de uma campanha e sintetiza
// as três sugestões criativas correspondentes. O despacho id → família de
// templates é uma tabela fechada: um novo diagnóstico entra como uma inserção
// na tabela, não como um novo branch.
package suggesting

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-diagnostics-api/internal/domain"
)

// Suggester sintetiza as sugestões criativas de uma campanha
type Suggester interface {
	Suggest(campaignName string, hypotheses []domain.EnrichedHypothesis, exampleMessages []string) []domain.CreativeSuggestion
}

type Service struct{}

func NewService() Suggester {
	return &Service{}
}

// Pesos de impacto usados na pontuação do issue primário. Impactos
// desconhecidos valem 1, nunca falham.
var impactWeights = map[domain.Impact]float64{
	domain.ImpactHigh:   3,
	domain.ImpactMedium: 2,
	domain.ImpactLow:    1,
}

// SelectPrimaryIssue escolhe a hipótese de maior pontuação
// (peso do impacto × confiança). h_none e h_insufficient_data não concorrem.
// Empates resolvem para a primeira encontrada na ordem de entrada, uma
// varredura estável de primeiro máximo.
func SelectPrimaryIssue(hypotheses []domain.EnrichedHypothesis) *domain.EnrichedHypothesis {
	var best *domain.EnrichedHypothesis
	var bestScore float64

	for i := range hypotheses {
		hypothesis := &hypotheses[i]
		if hypothesis.ID == domain.HypothesisNone || hypothesis.ID == domain.HypothesisInsufficientData {
			continue
		}

		weight, ok := impactWeights[hypothesis.Impact]
		if !ok {
			weight = 1
		}

		score := weight * hypothesis.Confidence
		if best == nil || score > bestScore {
			best = hypothesis
			bestScore = score
		}
	}

	return best
}

// Suggest despacha o issue primário para sua família de templates, ou gera os
// criativos genéricos quando não há issue (ou o id não é conhecido).
// Sempre retorna exatamente três sugestões e nunca falha.
func (s *Service) Suggest(campaignName string, hypotheses []domain.EnrichedHypothesis, exampleMessages []string) []domain.CreativeSuggestion {
	tone := toneExample(exampleMessages)

	primary := SelectPrimaryIssue(hypotheses)
	if primary == nil {
		logrus.WithField("campaign", campaignName).
			Debug("suggesting: nenhum issue primário, usando criativos genéricos")

		return genericCreatives(domain.LinkedIssueNone, tone)
	}

	logrus.WithFields(logrus.Fields{
		"campaign":      campaignName,
		"primary_issue": primary.ID,
		"impact":        primary.Impact,
		"confidence":    primary.Confidence,
	}).Debug("suggesting: issue primário selecionado")

	strategy, ok := strategies[primary.ID]
	if !ok {
		return genericCreatives(primary.Statement, tone)
	}

	return strategy(primary, tone)
}

// toneExample extrai a referência de tom: a primeira mensagem de exemplo não
// vazia, já sem espaços nas pontas. Sem exemplos, retorna vazio.
func toneExample(exampleMessages []string) string {
	for _, message := range exampleMessages {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
