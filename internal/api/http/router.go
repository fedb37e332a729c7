package http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/kidiezyllex/real-estate-BE/internal/schedule"
	"github.com/kidiezyllex/real-estate-BE/internal/security"
	"github.com/kidiezyllex/real-estate-BE/internal/service"
)

// Pinger reports backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of the HTTP surface. Verifier, Metrics and Health may be nil.
type Deps struct {
	Payments      service.PaymentService
	Reminders     service.ReminderService
	Statistics    service.StatisticsService
	Verifier      security.TokenVerifier
	Metrics       *Metrics
	Health        Pinger
	Clock         schedule.Clock
	DueWindowDays int
}

type Server struct {
	payments      service.PaymentService
	reminders     service.ReminderService
	statistics    service.StatisticsService
	verifier      security.TokenVerifier
	metrics       *Metrics
	health        Pinger
	clock         schedule.Clock
	dueWindowDays int
	validate      *validator.Validate
}

func NewServer(deps Deps) *Server {
	window := deps.DueWindowDays
	if window <= 0 {
		window = schedule.ExpectedLeadDays
	}
	return &Server{
		payments:      deps.Payments,
		reminders:     deps.Reminders,
		statistics:    deps.Statistics,
		verifier:      deps.Verifier,
		metrics:       deps.Metrics,
		health:        deps.Health,
		clock:         deps.Clock,
		dueWindowDays: window,
		validate:      validator.New(),
	}
}

// Router builds the route table. Route names key the security configuration.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger, s.metrics.Middleware, s.authMiddleware)

	r.HandleFunc("/healthz", s.Healthz).Methods(http.MethodGet).Name("healthz")
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet).Name("metrics")

	api := r.PathPrefix("/api/v1").Subrouter()

	payments := api.PathPrefix("/invoice-payments").Subrouter()
	payments.HandleFunc("", s.CreatePayment).Methods(http.MethodPost).Name("payments.create")
	payments.HandleFunc("/due", s.ScanDue).Methods(http.MethodGet).Name("payments.due")
	payments.HandleFunc("/contract/{contractId}", s.ListByContract).Methods(http.MethodGet).Name("payments.byContract")
	payments.HandleFunc("/home/{homeId}", s.ListByHome).Methods(http.MethodGet).Name("payments.byHome")
	payments.HandleFunc("/generate/{contractId}", s.GenerateSchedule).Methods(http.MethodPost).Name("payments.generate")
	payments.HandleFunc("/{id}", s.GetPayment).Methods(http.MethodGet).Name("payments.get")
	payments.HandleFunc("/{id}", s.UpdatePayment).Methods(http.MethodPatch).Name("payments.update")
	payments.HandleFunc("/{id}/paid", s.MarkPaid).Methods(http.MethodPatch).Name("payments.markPaid")
	payments.HandleFunc("/{id}", s.DeletePayment).Methods(http.MethodDelete).Name("payments.delete")

	api.HandleFunc("/reminders/dispatch", s.DispatchReminders).Methods(http.MethodPost).Name("reminders.dispatch")

	stats := api.PathPrefix("/statistics").Subrouter()
	stats.HandleFunc("/revenue", s.RevenueByMonth).Methods(http.MethodGet).Name("statistics.revenue")
	stats.HandleFunc("/revenue-sources", s.RevenueBySource).Methods(http.MethodGet).Name("statistics.revenueSources")
	stats.HandleFunc("/payments", s.PaymentStats).Methods(http.MethodGet).Name("statistics.payments")
	stats.HandleFunc("/payments/monthly", s.PaymentsMonthly).Methods(http.MethodGet).Name("statistics.paymentsMonthly")
	stats.HandleFunc("/payments/status", s.PaymentStatusByMonth).Methods(http.MethodGet).Name("statistics.paymentStatus")
	stats.HandleFunc("/due-payments", s.DueStats).Methods(http.MethodGet).Name("statistics.duePayments")
	stats.HandleFunc("/dashboard", s.Dashboard).Methods(http.MethodGet).Name("statistics.dashboard")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
