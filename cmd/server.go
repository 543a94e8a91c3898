package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"pinboard/internal/config"
	"pinboard/internal/core"
	"pinboard/internal/db"
	"pinboard/internal/http/handler"
	"pinboard/internal/http/handler/middleware"
	"pinboard/internal/http/payload"
	"pinboard/internal/http/server"
	"pinboard/internal/http/view"
	"pinboard/internal/repository"
	"pinboard/pkg/jwt"
	"pinboard/pkg/log"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("pinboard", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.SessionSecret))

	// repository
	repo := repository.NewBoardRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// board
	board := core.NewBoard(logger, repo, jwtService)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse page templates", "error", err)
		return err
	}

	// handler
	boardHlr := handler.NewBoardHandler(
		logger,
		payload.Decoder{},
		renderer,
		board)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewSessionMiddleware(jwtService).Resolve(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Board, boardHlr.HandleBoard)
	mux.HandleFunc(handler.SignupPage, boardHlr.HandleSignupPage)
	mux.HandleFunc(handler.Signup, boardHlr.HandleSignup)
	mux.HandleFunc(handler.LoginPage, boardHlr.HandleLoginPage)
	mux.HandleFunc(handler.Login, boardHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, boardHlr.HandleLogout)
	mux.HandleFunc(handler.WritePage, boardHlr.HandleWritePage)
	mux.HandleFunc(handler.Write, boardHlr.HandleWrite)
	mux.HandleFunc(handler.UpdatePage, boardHlr.HandleUpdatePage)
	mux.HandleFunc(handler.Update, boardHlr.HandleUpdate)
	mux.HandleFunc(handler.Delete, boardHlr.HandleDelete)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
