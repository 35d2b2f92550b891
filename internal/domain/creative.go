package domain

// LinkedIssueNone é o vínculo usado quando nenhum issue primário foi detectado
const LinkedIssueNone = "No major performance issue detected"

// CreativeSuggestion é uma recomendação de copy gerada a partir do issue
// primário da campanha. Sempre produzida em grupos de exatamente três.
type CreativeSuggestion struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	Message     string `json:"message"`
	CTA         string `json:"cta"`
	Rationale   string `json:"rationale"`
	LinkedIssue string `json:"linked_issue"`
}
