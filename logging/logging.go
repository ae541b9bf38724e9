package logging

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"runtime/pprof"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. Only errors are shown unless verbose is set.
func Setup(out io.Writer, verbose bool) {
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !verbose})

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// DoAnnotate runs fn with pprof labels naming the caller, so profiles can be split by harness stage.
func DoAnnotate(ctx context.Context, fn func(context.Context), labelMap ...map[string]any) {
	pprof.Do(ctx, getLabels(labelMap...), fn)
}

func getLabels(labelMap ...map[string]any) pprof.LabelSet {
	// Get the caller's stack frame.
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		panic("failed to get caller's stack frame")
	}

	// Get the function name.
	fnName := runtime.FuncForPC(pc).Name()

	labels := []string{"fn", fnName, "file", file, "line", strconv.Itoa(line)}

	for _, labelMap := range labelMap {
		for key, val := range labelMap {
			labels = append(labels, key, fmt.Sprintf("%v", val))
		}
	}

	return pprof.Labels(labels...)
}
