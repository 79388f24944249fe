package onboardingapimodels

import (
	dbmodels "hr-onboarding-board/models/db"
)

type CandidateRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type OnboardingView struct {
	ID string `json:"id"`
	// кандидат может быть не найден
	Candidate *CandidateRef `json:"candidate,omitempty"`
	// произвольная строка статуса
	Status string `json:"status,omitempty"`
	// дата выхода в исходном виде
	StartDate          *string  `json:"start_date,omitempty"`
	DocumentsCompleted bool     `json:"documents_completed"`
	PendingDocuments   []string `json:"pending_documents,omitempty"`
}

func OnboardingConvert(rec dbmodels.Onboarding) OnboardingView {
	result := OnboardingView{
		ID:                 rec.ID,
		Status:             rec.Status,
		StartDate:          rec.StartDate,
		DocumentsCompleted: rec.DocumentsCompleted,
		PendingDocuments:   rec.PendingDocuments,
	}
	if rec.Candidate != nil {
		result.Candidate = &CandidateRef{
			ID:   rec.Candidate.ID,
			Name: rec.Candidate.Name,
		}
	}
	return result
}
