package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/arabyads/influencer-service/internal/app/background"
	"github.com/arabyads/influencer-service/internal/app/setup"
	delivery "github.com/arabyads/influencer-service/internal/delivery/http"
	"github.com/arabyads/influencer-service/internal/infrastructure/logger"
	"github.com/arabyads/influencer-service/internal/scheduler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}
	logger.Setup(deps.Config.LogConfig)

	usecases := setup.InitializeUseCases(deps)

	sched, err := scheduler.New(deps.Config.Scheduler.Timezone, deps.Metrics)
	if err != nil {
		log.Fatalf("failed to init scheduler: %v", err)
	}
	if err := background.RegisterReconciliationJobs(sched, deps.Config.Scheduler.CronSpec, usecases.Reconciler); err != nil {
		log.Fatalf("failed to register reconciliation jobs: %v", err)
	}
	sched.Start()

	router := delivery.NewRouter(deps.Tokens, delivery.Handlers{
		Users:          delivery.NewUserHandler(usecases.UserUsecase, usecases.CascadeEngine),
		Core:           delivery.NewCoreHandler(usecases.CategoryUsecase, usecases.SocialPlatformUsecase, usecases.BankUsecase, usecases.CouponUsecase, usecases.CascadeEngine),
		Influencers:    delivery.NewInfluencerHandler(usecases.InfluencerUsecase, usecases.SocialAccountUsecase, usecases.CascadeEngine),
		Clients:        delivery.NewClientHandler(usecases.ClientUsecase, usecases.OfferUsecase, usecases.CampaignUsecase, usecases.CascadeEngine),
		Assignments:    delivery.NewAssignmentHandler(usecases.AssignmentUsecase, usecases.HistoryUsecase, usecases.PaymentUsecase, usecases.NotificationUsecase, usecases.CascadeEngine),
		Audit:          delivery.NewAuditHandler(usecases.AuditLogUsecase),
		Reconciliation: delivery.NewReconciliationHandler(usecases.Reconciler),
	})

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("http server started", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("http shutdown failed", "error", err.Error())
	}
	if err := deps.AuditPublisher.Close(); err != nil {
		slog.Error("audit publisher close failed", "error", err.Error())
	}
}
