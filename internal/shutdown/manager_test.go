package shutdown

import (
	"testing"

	"image-viewer/internal/logger"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	calls *[]string
}

func (r recorder) Shutdown() {
	*r.calls = append(*r.calls, r.name)
}

func TestShutdownRunsComponentsInReverseOnce(t *testing.T) {
	var calls []string
	m := NewManager(logger.Nop())
	m.Register(recorder{"first", &calls})
	m.Register(recorder{"second", &calls})

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestListenStopsAfterShutdown(t *testing.T) {
	var calls []string
	m := NewManager(logger.Nop())
	m.Register(recorder{"app", &calls})

	m.Listen()
	m.Shutdown()

	assert.Equal(t, []string{"app"}, calls)
}
