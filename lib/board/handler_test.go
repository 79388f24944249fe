package board

import (
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"testing"
	"time"
)

func TestShow(t *testing.T) {
	t.Run(`ready page`, func(t *testing.T) {
		i := impl{source: &fakeSource{records: []onboardingapimodels.OnboardingView{{ID: "o-1"}, {ID: "o-2"}}}}
		page := i.Show(context.TODO())
		require.Equal(t, RenderStateReady, page.State)
		require.Len(t, page.Cards, 2)
		require.Equal(t, "o-1", page.Cards[0].Key)
		require.Equal(t, "o-2", page.Cards[1].Key)
	})

	t.Run(`error page`, func(t *testing.T) {
		i := impl{source: &fakeSource{err: errors.New("timeout")}}
		page := i.Show(context.TODO())
		require.Equal(t, RenderStateError, page.State)
		require.Equal(t, LoadErrorMessage, page.Message)
		require.Len(t, page.Cards, 0)
	})

	t.Run(`loading page when wait elapsed`, func(t *testing.T) {
		source := &fakeSource{release: make(chan struct{})}
		i := impl{source: source, renderWait: 20 * time.Millisecond}
		page := i.Show(context.TODO())
		require.Equal(t, RenderStateLoading, page.State)
		require.Equal(t, LoadingMessage, page.Message)
	})

	t.Run(`loading page when ctx cancelled`, func(t *testing.T) {
		source := &fakeSource{release: make(chan struct{}), ignoreCtx: true}
		t.Cleanup(func() { close(source.release) })
		i := impl{source: source}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		page := i.Show(ctx)
		require.Equal(t, RenderStateLoading, page.State)
	})

	t.Run(`non-positive render wait replaced by default`, func(t *testing.T) {
		NewHandler(&fakeSource{}, 0)
		require.Equal(t, DefaultRenderWait, Instance.(impl).renderWait)

		NewHandler(&fakeSource{}, -time.Second)
		require.Equal(t, DefaultRenderWait, Instance.(impl).renderWait)

		NewHandler(&fakeSource{}, 5*time.Second)
		require.Equal(t, 5*time.Second, Instance.(impl).renderWait)
	})
}
