package assemble

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// progress logs how many reads have been ingested at every step fraction
// of the total, with an estimate of the time left.
type progress struct {
	total int
	step  float64
	pct   float64
	next  int
	start time.Time
	log   logrus.FieldLogger
}

func newProgress(total int, step float64, log logrus.FieldLogger) *progress {
	if step <= 0 {
		step = 0.05
	}
	return &progress{
		total: total,
		step:  step,
		start: time.Now(),
		log:   log,
	}
}

// tick is called after read i (0-indexed) is ingested
func (p *progress) tick(i int) {
	if p.pct >= 1 || i < p.next {
		return
	}

	eta := "est. ?? hr ?? min ?? sec remaining"
	if p.pct > 0 {
		elapsed := time.Since(p.start)
		eta = formatETA(time.Duration(float64(elapsed) / p.pct * (1 - p.pct)))
	}
	p.log.Infof("%.0f%% of reads processed (%s)", p.pct*100, eta)

	// several steps can land on the same read when there are few reads
	for p.pct < 1 && p.next <= i {
		p.pct += p.step
		p.next = int(math.Round(float64(p.total) * p.pct))
	}
}

// formatETA formats a remaining duration as hours, minutes and seconds
func formatETA(d time.Duration) string {
	secs := int64(d / time.Second)
	hr := secs / 3600
	secs -= hr * 3600
	min := secs / 60
	secs -= min * 60

	return fmt.Sprintf("est. %d hr %d min %d sec remaining", hr, min, secs)
}

// formatElapsed formats a duration as [h:mm:ss.mmm]
func formatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	hr := ms / 3600000
	ms -= hr * 3600000
	min := ms / 60000
	ms -= min * 60000
	sec := ms / 1000
	ms -= sec * 1000

	return fmt.Sprintf("[%d:%02d:%02d.%03d]", hr, min, sec, ms)
}
