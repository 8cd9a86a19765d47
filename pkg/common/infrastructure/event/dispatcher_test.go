package event

import (
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type pinged struct{ N int }

func (e pinged) Type() string { return "Pinged" }

func TestDispatcher(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("Logs and fans out to subscribers", func(t *testing.T) {
		hook.Reset()
		d := NewDispatcher(logger)
		var got []int
		d.Subscribe("Pinged", func(e domain.Event) error {
			got = append(got, e.(pinged).N)
			return nil
		})

		require.NoError(t, d.Dispatch(pinged{N: 7}))
		assert.Equal(t, []int{7}, got)
		require.Len(t, hook.Entries, 1)
		assert.Equal(t, log.InfoLevel, hook.LastEntry().Level)
		assert.Equal(t, "Pinged", hook.LastEntry().Data["event"])
	})

	t.Run("Handler error is returned", func(t *testing.T) {
		hook.Reset()
		d := NewDispatcher(logger)
		boom := errors.New("boom")
		d.Subscribe("Pinged", func(domain.Event) error { return boom })

		err := d.Dispatch(pinged{})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
	})
}
