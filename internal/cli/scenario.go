package cli

import (
	"strconv"
	"sync"
	"time"

	"github.com/Station-Manager/logsink"
)

// runScenario writes the scripted single-goroutine section, fans out to
// opts.Threads workers sharing logger, waits for all of them and writes a
// closing line.
func runScenario(logger logsink.Logger, opts *options) {
	singleThread(logger, opts.Path)

	logger.Info("----- IN MULTI THREAD LOGIC -----")
	var wg sync.WaitGroup
	for i := 1; i <= opts.Threads; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker(logger, id, opts.Messages, opts.Delay)
		}(i)
	}
	wg.Wait()

	logger.Info("------ ALL THREADS ARE COMPLETED ------")
}

func singleThread(logger logsink.Logger, path string) {
	logger.Info("----- IN SINGLE THREAD LOGIC ------")
	logger.Debug("This is debug message")
	logger.Info("Application started and logfile name is : " + path)
	logger.Warning("Low memory condition detected")
	logger.Error("Failed some where")
	logger.Critical("Crash detected")
	logger.Info("----- END SINGLE THREAD LOGIC ------")
}

// worker logs two independent lines per iteration; other workers may write
// between them.
func worker(logger logsink.Logger, id, messages int, delay time.Duration) {
	tid := strconv.Itoa(id)
	for i := 0; i < messages; i++ {
		logger.Info("Thread : " + tid + " - Message " + strconv.Itoa(i))
		logger.Debug("In threading debug - The thread is :" + tid)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
