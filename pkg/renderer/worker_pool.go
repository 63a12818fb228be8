package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-raytracer/pkg/core"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band Band
	Seed int64 // sampler seed derived from the render seed and band index
}

// BandResult contains the result from rendering a band
type BandResult struct {
	Band   Band
	Pixels []core.Vec3 // row-major, Band.Rows() x width
	Stats  BandStats
	Err    error
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *Renderer
	ctx         context.Context
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
// and room for maxTasks queued tasks and results
func NewWorkerPool(ctx context.Context, r *Renderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    r,
			ctx:         ctx,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to drain and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()
		pixels, samples, err := w.renderer.renderBand(w.ctx, task.Band, core.NewSeededSampler(task.Seed))
		w.resultQueue <- BandResult{
			Band:   task.Band,
			Pixels: pixels,
			Stats: BandStats{
				Index:    task.Band.Index,
				Y0:       task.Band.Y0,
				Y1:       task.Band.Y1,
				Worker:   w.ID,
				Pixels:   len(pixels),
				Samples:  samples,
				Duration: time.Since(start),
			},
			Err: err,
		}
	}
}
