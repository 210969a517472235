// @title           Document Q&A API
// @version         1.0
// @description     This API handles document uploads and asynchronous question answering over them.
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/customHttpClient"
	"github.com/akolanti/DocQA/internal/data/store"
	jobmodel "github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/handlers"
	"github.com/akolanti/DocQA/internal/job"
	"github.com/akolanti/DocQA/internal/qa"
	"github.com/akolanti/DocQA/internal/qa/ai"
	"github.com/akolanti/DocQA/internal/server"
	"github.com/akolanti/DocQA/internal/worker"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init("docqa-api")
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	//nil-check the concrete pointers before they become interfaces
	redisJobs := store.GetRedisJobStore(serviceContext)
	redisDocuments := store.GetRedisDocumentStore(serviceContext)
	redisHistory := store.GetRedisHistoryStore(serviceContext)

	if redisJobs == nil || redisDocuments == nil || redisHistory == nil {
		logger.Error("Redis stores are offline")
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			return
		}
		logger.Warn("Falling back to in-memory stores; state will not survive a restart")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.DocumentStore = store.InitInMemoryDocumentStore()
		serviceConfig.HistoryStore = store.InitInMemoryHistoryStore()
	} else {
		serviceConfig.JobStore = redisJobs
		serviceConfig.DocumentStore = redisDocuments
		serviceConfig.HistoryStore = redisHistory
	}

	service := job.InitJobService(serviceConfig)

	qaService := qa.NewService(
		serviceConfig.DocumentStore,
		serviceConfig.HistoryStore,
		ai.NewSource(customHttpClient.GetPooledClient()),
	)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, qaService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
