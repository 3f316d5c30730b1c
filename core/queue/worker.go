package queue

import (
	"context"

	"scheduler-api/core/logger"

	"github.com/hibiken/asynq"
)

// Worker consumes tasks from Redis.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

func NewWorker(opt asynq.RedisClientOpt, concurrency int) *Worker {
	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			DefaultQueue: 1,
		},
		Logger: asynqLogger{},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Worker:HandleTask", "type", task.Type(), err)
		}),
	})

	return &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
	}
}

func (w *Worker) Handle(taskType string, handler asynq.HandlerFunc) {
	w.mux.HandleFunc(taskType, handler)
}

// Start runs the processors in the background and returns.
func (w *Worker) Start() error {
	logger.Info("Worker:Start")
	return w.server.Start(w.mux)
}

func (w *Worker) Shutdown() {
	logger.Info("Worker:Shutdown")
	w.server.Shutdown()
}

type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug("asynq", "detail", args) }
func (asynqLogger) Info(args ...any)  { logger.Info("asynq", "detail", args) }
func (asynqLogger) Warn(args ...any)  { logger.Warn("asynq", "detail", args) }
func (asynqLogger) Error(args ...any) { logger.Error("asynq", "detail", args) }
func (asynqLogger) Fatal(args ...any) { logger.Fatal("asynq", "detail", args) }
