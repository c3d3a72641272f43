package workspace

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/shmigatron/volki/internal/log"
)

func TestLogErrorWithoutClient(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)

	// Neither a nil context nor one without a notify channel may panic.
	LogError(nil, "broke: %s", "badly")
	LogError(&glsp.Context{}, "broke again")

	assert.Contains(t, buf.String(), "broke: badly")
	assert.Contains(t, buf.String(), "broke again")
}

func TestLogErrorNotifiesClient(t *testing.T) {
	var (
		mu       sync.Mutex
		notified []string
		wg       sync.WaitGroup
	)
	wg.Add(1)
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			mu.Lock()
			notified = append(notified, method)
			mu.Unlock()
			wg.Done()
		},
	}

	LogError(ctx, "broke")
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{protocol.ServerWindowLogMessage}, notified)
}
