package db

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"hr-onboarding-board/config"
	onboardingstore "hr-onboarding-board/lib/onboarding/store"
	dbmodels "hr-onboarding-board/models/db"
)

func InitPreload() {
	if config.Conf.Database.SeedDemo != nil && *config.Conf.Database.SeedDemo {
		fillDemoOnboarding()
	}
}

type demoOnboarding struct {
	candidate string
	status    string
	startDate string
	docsDone  bool
	pending   []string
}

var demoOnboardingList = []demoOnboarding{
	{candidate: "Анна Смирнова", status: "In Progress", startDate: "2024-03-05", pending: []string{"СНИЛС"}},
	{candidate: "Игорь Петров", status: "Completed", startDate: "2024-02-12", docsDone: true},
	{candidate: "Мария Кузнецова", status: "Pending Review", startDate: "2024-04-01", pending: []string{"Паспорт", "ИНН"}},
	{candidate: "", status: "", startDate: ""},
}

func fillDemoOnboarding() {
	store := onboardingstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка заполнения демо-данных онбординга")
		return
	}
	if count != 0 {
		return
	}
	for _, item := range demoOnboardingList {
		rec := dbmodels.Onboarding{
			BaseModel:          dbmodels.BaseModel{ID: uuid.New().String()},
			Status:             item.status,
			DocumentsCompleted: item.docsDone,
			PendingDocuments:   item.pending,
		}
		if item.startDate != "" {
			startDate := item.startDate
			rec.StartDate = &startDate
		}
		// запись без кандидата оставляем как есть
		if item.candidate != "" {
			candidateID, err := store.CreateCandidate(dbmodels.Candidate{
				BaseModel: dbmodels.BaseModel{ID: uuid.New().String()},
				Name:      item.candidate,
			})
			if err != nil {
				log.WithError(err).Error("ошибка добавления демо-кандидата")
				return
			}
			rec.CandidateID = &candidateID
		}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).Error("ошибка добавления демо-онбординга")
			return
		}
	}
	log.WithField("count", len(demoOnboardingList)).Info("Демо-данные онбординга добавлены")
}
