package board

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	initchecker "hr-onboarding-board/lib/utils/init-checker"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"runtime/debug"
	"sync"
)

const LoadErrorMessage = "Failed to load onboarding data. Please try again later."

// DataSource источник списка онбордингов для доски
type DataSource interface {
	ListOnboarding(ctx context.Context) ([]onboardingapimodels.OnboardingView, error)
}

type State struct {
	Records      []onboardingapimodels.OnboardingView
	IsLoading    bool
	ErrorMessage string
}

// View держит состояние доски: одна загрузка на монтирование.
type View struct {
	source DataSource
	logger *log.Entry

	mu        sync.Mutex
	state     State
	mounted   bool
	unmounted bool
	cancel    context.CancelFunc

	done     chan struct{}
	doneOnce sync.Once
}

func NewView(source DataSource) *View {
	initchecker.CheckInit(
		"source", source,
	)
	return &View{
		source: source,
		logger: log.WithField("view", "onboarding_board"),
		state:  State{IsLoading: true},
		done:   make(chan struct{}),
	}
}

// Mount запускает загрузку. Повторный вызов ничего не делает.
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted || v.unmounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	fetchCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.mu.Unlock()

	go v.load(fetchCtx)
}

// Unmount отменяет незавершенную загрузку, после него состояние не меняется.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unmounted {
		return
	}
	v.unmounted = true
	if v.cancel != nil {
		v.cancel()
	}
	if !v.mounted {
		v.closeDone()
	}
}

// Done закрывается после завершения загрузки.
func (v *View) Done() <-chan struct{} {
	return v.done
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	result := v.state
	if v.state.Records != nil {
		result.Records = make([]onboardingapimodels.OnboardingView, len(v.state.Records))
		copy(result.Records, v.state.Records)
	}
	return result
}

func (v *View) load(ctx context.Context) {
	defer v.closeDone()
	defer v.finishLoading()

	records, panicStack, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unmounted {
		v.logger.Debug("доска закрыта, результат загрузки отброшен")
		return
	}
	if err != nil {
		logger := v.logger.WithError(err)
		if panicStack != "" {
			logger = logger.WithField("panic_stack", panicStack)
		}
		logger.Error("ошибка загрузки данных онбординга")
		v.state.ErrorMessage = LoadErrorMessage
		v.state.Records = []onboardingapimodels.OnboardingView{}
		return
	}
	if records == nil {
		records = []onboardingapimodels.OnboardingView{}
	}
	v.state.Records = records
	v.state.ErrorMessage = ""
}

func (v *View) fetch(ctx context.Context) (records []onboardingapimodels.OnboardingView, panicStack string, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicStack = string(debug.Stack())
			err = errors.Errorf("panic при загрузке онбординга: %v", r)
		}
	}()
	records, err = v.source.ListOnboarding(ctx)
	return records, "", err
}

func (v *View) finishLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unmounted {
		return
	}
	v.state.IsLoading = false
}

func (v *View) closeDone() {
	v.doneOnce.Do(func() {
		close(v.done)
	})
}
