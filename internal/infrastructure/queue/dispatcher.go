package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/identity-service/internal/api/metrics"
	"github.com/99minutos/identity-service/internal/core/domain"
	"github.com/99minutos/identity-service/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256

	opImport = "import_user"
)

// Job is one create request read from an import source.
type Job struct {
	Line    int
	Command ports.CreateUserCommand
}

// Summary counts import outcomes by result kind.
type Summary struct {
	Created       int
	AlreadyExists int
	InvalidData   int
	Unknown       int
}

func (s Summary) Total() int {
	return s.Created + s.AlreadyExists + s.InvalidData + s.Unknown
}

// Dispatcher routes create commands to a fixed set of workers using consistent
// hashing on the normalized email, so two commands for the same address are
// always handled by one worker in submission order.
type Dispatcher struct {
	workers []chan Job
	create  ports.CreateUserUseCase
	log     zerolog.Logger

	wg      sync.WaitGroup
	mu      sync.Mutex
	summary Summary
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, create ports.CreateUserUseCase, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Job, numWorkers),
		create:  create,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled or
// after Close drains their queues.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its email. It blocks while
// that worker's buffer is full and gives up when ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, job Job) error {
	select {
	case d.workers[d.shardIndex(job.Command.Email)] <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs, waits for the workers to drain and returns the
// final counts. Enqueue must not be called after Close.
func (d *Dispatcher) Close() Summary {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

// shardIndex maps an email deterministically to a worker index. The key is
// normalized the way domain.NewEmail does, so case variants share a worker.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Job) {
	defer d.wg.Done()
	depth := metrics.ImportQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.handle(ctx, id, job)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, worker int, job Job) {
	start := time.Now()
	result, err := d.create.Execute(ctx, job.Command)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err == nil {
		metrics.ObserveUserOperation(opImport, metrics.OutcomeSuccess, time.Since(start))
		d.summary.Created++
		d.log.Debug().Int("line", job.Line).Str("user_id", result.ID).Int("worker_id", worker).Msg("user imported")
		return
	}

	kind := domain.Classify(err).Kind
	metrics.ObserveUserOperation(opImport, kind.String(), time.Since(start))
	switch kind {
	case domain.KindAlreadyExists:
		d.summary.AlreadyExists++
	case domain.KindInvalidData:
		d.summary.InvalidData++
	default:
		d.summary.Unknown++
	}
	d.log.Warn().Err(err).
		Int("line", job.Line).
		Str("kind", kind.String()).
		Int("worker_id", worker).
		Msg("user import failed")
}
