package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/auth"
	"max.ks1230/finance-tracker/internal/model/reports"
	"max.ks1230/finance-tracker/internal/model/transactions"
)

const shutdownTimeout = 10 * time.Second

type authService interface {
	Login(ctx context.Context, pin string) (string, error)
	Verify(token string) (auth.Session, error)
	ChangePin(ctx context.Context, session auth.Session, currentPin, newPin string) error
}

type categoryService interface {
	List(ctx context.Context) ([]category.Category, error)
	Create(ctx context.Context, name, typ string) (category.Category, error)
	Delete(ctx context.Context, id int64) error
}

type transactionService interface {
	List(ctx context.Context, in transactions.ListInput) ([]transaction.Transaction, error)
	Create(ctx context.Context, in transactions.Input) (transaction.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

type dashboardService interface {
	Dashboard(ctx context.Context, period reports.Period, today time.Time) (reports.Dashboard, error)
}

type clock interface {
	Today() time.Time
}

type config interface {
	CookieName() string
	SecureCookie() bool
	SessionTTL() time.Duration
}

// Services groups what the handlers call into.
type Services struct {
	Auth         authService
	Categories   categoryService
	Transactions transactionService
	Dashboard    dashboardService
	Clock        clock
}

type Server struct {
	engine       *gin.Engine
	auth         authService
	categories   categoryService
	transactions transactionService
	dashboard    dashboardService
	clock        clock

	cookieName   string
	secureCookie bool
	sessionTTL   time.Duration
}

func New(config config, svc Services) *Server {
	s := &Server{
		engine:       gin.New(),
		auth:         svc.Auth,
		categories:   svc.Categories,
		transactions: svc.Transactions,
		dashboard:    svc.Dashboard,
		clock:        svc.Clock,
		cookieName:   config.CookieName(),
		secureCookie: config.SecureCookie(),
		sessionTTL:   config.SessionTTL(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.Use(gin.Recovery(), requestID(), instrument())

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)
	api.GET("/me", s.handleMe)

	private := api.Group("", s.requireSession())
	private.POST("/change-pin", s.handleChangePin)

	private.GET("/categories", s.handleListCategories)
	private.POST("/categories", s.handleCreateCategory)
	private.DELETE("/categories", s.handleDeleteCategory)

	private.GET("/transactions", s.handleListTransactions)
	private.POST("/transactions", s.handleCreateTransaction)
	private.DELETE("/transactions", s.handleDeleteTransaction)
	private.GET("/transactions/export", s.handleExportTransactions)

	private.GET("/dashboard", s.handleDashboard)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Serve runs srv until ctx is cancelled and then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrapf(err, "serve %s", srv.Addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrapf(err, "shutdown %s", srv.Addr)
	}
	logger.Info("http server stopped", zap.String("addr", srv.Addr))
	return nil
}
