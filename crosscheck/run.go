package crosscheck

import (
	"errors"
	"sync"
	"sync/atomic"
)

var ErrErrorsLimitExceeded = errors.New("errors limit exceeded")

// Report tells how many texts were checked and how many of them failed.
type Report struct {
	Checked int
	Failed  int
}

type task struct {
	num  int
	text string
}

type tally struct {
	checked atomic.Int32
	failed  atomic.Int32
}

func worker(wg *sync.WaitGroup, workerNum int, tasks <-chan task, c *tally) {
	defer wg.Done()
	logger := defaultLogger.WithGroup("CROSSCHECK").With("worker", workerNum)

	for t := range tasks {
		err := Compare(t.text)
		c.checked.Add(1)
		if err != nil {
			c.failed.Add(1)
			logger.Warn("check failed", "text", t.num, "error", err)
			continue
		}
		logger.Debug("check passed", "text", t.num)
	}
}

// Run checks texts in n goroutines and stops dispatching new texts once m checks failed.
// m <= 0 means there is no limit.
func Run(texts []string, n, m int) (Report, error) {
	if n <= 0 {
		n = 1
	}
	tasks := make(chan task, n)
	var c tally
	var wg sync.WaitGroup
	wg.Add(n)

	for workerNum := range n {
		go worker(&wg, workerNum+1, tasks, &c)
	}

	var result error
	for num, text := range texts {
		if m > 0 && int(c.failed.Load()) >= m {
			result = ErrErrorsLimitExceeded
			break
		}
		tasks <- task{num: num, text: text}
	}
	close(tasks)
	wg.Wait()

	report := Report{Checked: int(c.checked.Load()), Failed: int(c.failed.Load())}
	if m > 0 && report.Failed >= m {
		result = ErrErrorsLimitExceeded
	}
	defaultLogger.WithGroup("CROSSCHECK").Debug("run finished",
		"checked", report.Checked, "failed", report.Failed)
	return report, result
}
