package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// BandTask represents a horizontal band of the image to render
type BandTask struct {
	TaskID int             // For deterministic accounting
	Bounds image.Rectangle // Rows [Min.Y, Max.Y) across the full width
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID      int
	PrimaryRays int64
}

// WorkerPool manages parallel band rendering. Bands never overlap, so
// workers write to the shared image without coordination.
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders individual bands with its own tracer
type Worker struct {
	ID          int
	tracer      *tracer.Tracer
	camera      *Camera
	img         *image.RGBA
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool rendering into the shared image
func NewWorkerPool(scene tracer.Scene, camera *Camera, img *image.RGBA, config tracer.Config, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),
		resultQueue: make(chan BandResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      tracer.NewTracer(scene, config),
			camera:      camera,
			img:         img,
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

// Stop closes the task queue, waits for workers to finish, and closes the
// result queue so readers can drain it.
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

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		var rays int64
		for j := task.Bounds.Min.Y; j < task.Bounds.Max.Y; j++ {
			for i := task.Bounds.Min.X; i < task.Bounds.Max.X; i++ {
				ray := w.camera.GetRay(i, j)
				result := w.tracer.Trace(ray, 0)
				w.img.SetRGBA(i, j, colorToRGBA(result.Color))
				rays++
			}
		}

		w.resultQueue <- BandResult{TaskID: task.TaskID, PrimaryRays: rays}
	}
}
