package probset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
)

// ProblemSet is a problem-set file in the process of being loaded. Problems
// become available on the subscription channel as soon as they are parsed;
// Wait blocks until the whole file has been read.
type ProblemSet struct {
	path      string
	file      *os.File
	cast      *caster.Caster // broadcaster for async loading
	done      chan struct{}
	once      sync.Once // loading starts with the first Problems or Wait call
	lastError error     // remember the last parse or I/O error
}

// Load opens a problem-set file and starts parsing it in the background.
// Opening and validating the file is always done synchronously, so a
// non-existing or irregular file fails right here. Parse errors of single
// lines do not stop loading; the last one is reported by Wait.
func Load(name string) (*ProblemSet, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("problem set is not a regular file")
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	ps := &ProblemSet{
		path: name,
		file: file,
		cast: caster.New(nil), // we will broadcast problems as they are parsed
		done: make(chan struct{}),
	}
	return ps, nil
}

// start kicks off the background parsing, exactly once. Parsing is deferred
// to the first Problems or Wait call so that the first subscriber never
// misses a broadcast.
func (ps *ProblemSet) start() {
	ps.once.Do(func() {
		go ps.loadAllProblems()
	})
}

// Problems subscribes to the stream of parsed problems and starts loading if
// it has not started yet. The first subscriber receives every problem; later
// subscribers receive those parsed after their subscription. The channel is
// closed when loading finishes. ctx may be nil.
func (ps *ProblemSet) Problems(ctx context.Context) <-chan *Problem {
	sub, _ := ps.cast.Sub(ctx, 1)
	ps.start()
	out := make(chan *Problem)
	go func() {
		defer close(out)
		for m := range sub {
			out <- m.(*Problem)
		}
	}()
	return out
}

// Wait blocks until the file has been fully read and returns the last error
// encountered, if any.
func (ps *ProblemSet) Wait() error {
	ps.start()
	<-ps.done
	return ps.lastError
}

// loadAllProblems is the background loading goroutine. It scans the file line
// by line, skips blanks and comments, and publishes every parsed problem.
func (ps *ProblemSet) loadAllProblems() {
	defer close(ps.done)
	defer ps.cast.Close()
	defer ps.file.Close()

	scanner := bufio.NewScanner(ps.file)
	lineno := 0
	count := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prob, err := Parse(line)
		if err != nil {
			ps.lastError = fmt.Errorf("%s:%d: %w", ps.path, lineno, err)
			tracer().Errorf("skipping malformed problem: %v", ps.lastError)
			continue
		}
		prob.Line = lineno
		ps.cast.Pub(prob)
		count++
	}
	if err := scanner.Err(); err != nil {
		ps.lastError = fmt.Errorf("error loading problem set: %w", err)
	}
	tracer().Infof("loaded %d problem(s) from %s", count, ps.path)
}
