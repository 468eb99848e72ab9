package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/staffdesk/checkin-backend-go/internal/config"
	appHTTP "github.com/staffdesk/checkin-backend-go/internal/handler/http"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/database"
	"github.com/staffdesk/checkin-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/checkin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/checkin-backend-go/internal/service/attendance"
	serviceAuth "github.com/staffdesk/checkin-backend-go/internal/service/auth"
	reportService "github.com/staffdesk/checkin-backend-go/internal/service/report"
	staffService "github.com/staffdesk/checkin-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(db, staffRepo, JWTService, refreshTokenRepo)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc, err := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		breakRepo,
		locationRepo,
		cfg.Location(),
		cfg.Attendance.LateThreshold,
	)
	if err != nil {
		log.Fatal("Failed to initialize attendance service: ", err)
	}
	reportSvc := reportService.NewReportService(reportRepo, attendanceRepo)

	if err := staffSvc.EnsureDefaultAdmin(ctx); err != nil {
		log.Fatal("Failed to ensure default admin: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, cfg.Location())

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		staffHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
