package board

import (
	"context"
	log "github.com/sirupsen/logrus"
	initchecker "hr-onboarding-board/lib/utils/init-checker"
	"time"
)

type Provider interface {
	// Show монтирует доску, ждет загрузку и возвращает отрисованную страницу
	Show(ctx context.Context) Page
}

var Instance Provider

// DefaultRenderWait подставляется при renderWait <= 0, контекст запроса fiber сам не отменяется
const DefaultRenderWait = 30 * time.Second

func NewHandler(source DataSource, renderWait time.Duration) {
	if renderWait <= 0 {
		log.WithField("render_wait", renderWait.String()).
			Warnf("некорректное время ожидания отрисовки доски, используется %s", DefaultRenderWait)
		renderWait = DefaultRenderWait
	}
	instance := impl{
		source:     source,
		renderWait: renderWait,
	}
	initchecker.CheckInit(
		"source", instance.source,
	)
	Instance = instance
}

type impl struct {
	source     DataSource
	renderWait time.Duration
}

func (i impl) Show(ctx context.Context) Page {
	view := NewView(i.source)
	view.Mount(ctx)
	defer view.Unmount()

	var deadline <-chan time.Time
	if i.renderWait > 0 {
		timer := time.NewTimer(i.renderWait)
		defer timer.Stop()
		deadline = timer.C
	}
	select {
	case <-view.Done():
	case <-ctx.Done():
	case <-deadline:
	}
	return Render(view.State())
}
