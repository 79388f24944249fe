package board

import (
	"github.com/pkg/errors"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"html/template"
	"io"
)

type RenderState string

const (
	RenderStateLoading RenderState = "loading"
	RenderStateError   RenderState = "error"
	RenderStateEmpty   RenderState = "empty"
	RenderStateReady   RenderState = "ready"
)

const (
	LoadingMessage = "Loading onboarding data..."
	EmptyMessage   = "No onboarding records found."
)

type Card struct {
	Key                string      `json:"key"`
	CandidateName      string      `json:"candidate_name"`
	StatusText         string      `json:"status_text"`
	StatusClass        StatusClass `json:"status_class"`
	StartDate          string      `json:"start_date"`
	DocumentsCompleted string      `json:"documents_completed"`
}

type Page struct {
	State   RenderState `json:"state"`
	Message string      `json:"message,omitempty"`
	Cards   []Card      `json:"cards"`
}

// Render строит представление доски по состоянию, без побочных эффектов.
func Render(state State) Page {
	switch {
	case state.IsLoading:
		return Page{State: RenderStateLoading, Message: LoadingMessage, Cards: []Card{}}
	case state.ErrorMessage != "":
		return Page{State: RenderStateError, Message: state.ErrorMessage, Cards: []Card{}}
	case len(state.Records) == 0:
		return Page{State: RenderStateEmpty, Message: EmptyMessage, Cards: []Card{}}
	}
	cards := make([]Card, 0, len(state.Records))
	for _, rec := range state.Records {
		cards = append(cards, NewCard(rec))
	}
	return Page{State: RenderStateReady, Cards: cards}
}

// NewCard готовит карточку записи, ключ карточки - id онбординга
func NewCard(rec onboardingapimodels.OnboardingView) Card {
	return Card{
		Key:                rec.ID,
		CandidateName:      CandidateName(rec.Candidate),
		StatusText:         StatusText(rec.Status),
		StatusClass:        ClassifyStatus(rec.Status),
		StartDate:          FormatDate(rec.StartDate),
		DocumentsCompleted: FormatBool(rec.DocumentsCompleted),
	}
}

// CandidateName возвращает имя кандидата или "Unknown Candidate", если кандидата или имени нет
func CandidateName(candidate *onboardingapimodels.CandidateRef) string {
	if candidate == nil || candidate.Name == "" {
		return UnknownName
	}
	return candidate.Name
}

var pageTemplate = template.Must(template.New("board").Parse(pageHTML))

func RenderHTML(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return errors.Wrap(err, "ошибка формирования страницы доски")
	}
	return nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Onboarding</title>
</head>
<body>
<div class="onboarding-container">
<h1>Onboarding Status</h1>
{{- if eq .State "loading"}}
<div class="loading">{{.Message}}</div>
{{- else if eq .State "error"}}
<div class="error-message">{{.Message}}</div>
{{- else if eq .State "empty"}}
<div class="empty-state">{{.Message}}</div>
{{- else}}
<div class="onboarding-grid">
{{- range .Cards}}
<div class="onboarding-card" data-key="{{.Key}}">
<h3>{{.CandidateName}}</h3>
<span class="status-badge status-{{.StatusClass}}">{{.StatusText}}</span>
<p><strong>Start Date:</strong> {{.StartDate}}</p>
<p><strong>Documents Completed:</strong> {{.DocumentsCompleted}}</p>
</div>
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`
