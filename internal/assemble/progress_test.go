package assemble

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		total int
		step  float64
		want  []string
	}{
		{"one report per step", 4, 0.25, []string{"0%", "25%", "50%", "75%"}},
		{"fewer reads than steps", 2, 0.25, []string{"0%", "25%"}},
		{"single read", 1, 0.5, []string{"0%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, hook := test.NewNullLogger()
			p := newProgress(tt.total, tt.step, log)
			for i := 0; i < tt.total; i++ {
				p.tick(i)
			}

			entries := hook.AllEntries()
			require.Len(t, entries, len(tt.want))
			for i, e := range entries {
				assert.Contains(t, e.Message, tt.want[i]+" of reads processed")
			}
			assert.Contains(t, entries[0].Message, "??")
		})
	}
}

func TestFormatETA(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "est. 0 hr 0 min 0 sec remaining"},
		{59 * time.Second, "est. 0 hr 0 min 59 sec remaining"},
		{time.Hour + 2*time.Minute + 3*time.Second + 900*time.Millisecond, "est. 1 hr 2 min 3 sec remaining"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatETA(tt.d))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "[0:00:00.000]"},
		{1500 * time.Millisecond, "[0:00:01.500]"},
		{time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond, "[1:02:03.456]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatElapsed(tt.d))
		})
	}
}
