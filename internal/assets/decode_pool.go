package assets

import (
	"context"
	"sync"

	"spritebox/internal/graphics"
)

// DecodeJob asks the pool to decode one image file.
type DecodeJob struct {
	Name string
	Path string
	// Result receives exactly one DecodeResult unless the pool shuts down first.
	Result chan<- DecodeResult
}

type DecodeResult struct {
	Name   string
	Path   string
	Pixels *graphics.PixelData
	Err    error
}

// DecodePool decodes images on worker goroutines. Uploading stays with the
// caller, which owns the GL context.
type DecodePool struct {
	jobQueue chan DecodeJob
	workers  int
	decode   graphics.DecodeFunc
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

func NewDecodePool(workers, queueSize int, decode graphics.DecodeFunc) *DecodePool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &DecodePool{
		jobQueue: make(chan DecodeJob, queueSize),
		workers:  max(workers, 1),
		decode:   decode,
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// SubmitJob queues job without blocking. It reports false when the queue is full.
func (p *DecodePool) SubmitJob(job DecodeJob) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitJobBlocking waits for queue space or shutdown.
func (p *DecodePool) SubmitJobBlocking(job DecodeJob) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *DecodePool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			pd, err := p.decode(job.Path)
			res := DecodeResult{Name: job.Name, Path: job.Path, Pixels: pd, Err: err}
			select {
			case job.Result <- res:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them. Queued jobs are dropped.
func (p *DecodePool) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// QueueLength returns the current number of jobs in the queue.
func (p *DecodePool) QueueLength() int {
	return len(p.jobQueue)
}
