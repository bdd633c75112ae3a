package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nehawork/smart-attendence/internal/config"
	"github.com/nehawork/smart-attendence/internal/database"
	"github.com/nehawork/smart-attendence/internal/handler"
	"github.com/nehawork/smart-attendence/internal/middleware"
	"github.com/nehawork/smart-attendence/internal/queue"
	"github.com/nehawork/smart-attendence/internal/repository"
	"github.com/nehawork/smart-attendence/internal/router"
	"github.com/nehawork/smart-attendence/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	studentRepo := repository.NewStudentRepo(db)
	attendanceRepo := repository.NewAttendanceRepo(db)
	leaveRepo := repository.NewLeaveRepo(db)

	// Bootstrap the default admin account. Runs on every startup; a
	// concurrent second process loses the race harmlessly on the
	// username uniqueness constraint.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := userRepo.EnsureDefaultAdmin(ctx, cfg.BcryptCost); err != nil {
		cancel()
		log.Fatalf("bootstrap admin: %v", err)
	}
	cancel()

	authSvc := service.NewAuth(userRepo, cfg.BcryptCost)
	rosterSvc := service.NewRoster(studentRepo)
	attendanceSvc := service.NewAttendance(attendanceRepo)
	leaveSvc := service.NewLeave(leaveRepo)

	authHandler := handler.NewAuthHandler(cfg, authSvc, tokenRepo)
	rosterHandler := handler.NewRosterHandler(rosterSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	leaveHandler := handler.NewLeaveHandler(leaveSvc)

	// Report cache: disabled automatically when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis not reachable; report cache disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	if cfg.QueueConsumer {
		go func() {
			if err := queue.StartAttendanceConsumer(); err != nil {
				log.Printf("attendance consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, authHandler, rosterHandler, cfg.JWTSecret)
	router.RegisterAPI(e, rosterHandler, attendanceHandler, leaveHandler, cfg.JWTSecret, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
