package assemble

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
)

// logMemory logs the resident set size of the process after a phase
func logMemory(log logrus.FieldLogger, phase string) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.WithError(err).Debug("failed to find process")
		return
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		log.WithError(err).Debug("failed to read memory info")
		return
	}

	log.WithFields(logrus.Fields{
		"phase": phase,
		"rss":   humanize.Bytes(mem.RSS),
	}).Debug("memory")
}
