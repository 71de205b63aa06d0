package decision

//go:generate mockgen -source=ports/rules.go -destination=mocks/mocks.go -package=mocks RulesPort

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"compliance-advisor/internal/decision/metrics"
	"compliance-advisor/internal/decision/ports"
	"compliance-advisor/pkg/domain"
	"compliance-advisor/pkg/requestcontext"
)

const (
	kindTransfer = "transfer"
	kindCompany  = "company"
)

// Service validates advisory requests, obtains the current rules and runs the
// pure engines. The rules live behind RulesPort so evaluation stays testable.
type Service struct {
	rules   ports.RulesPort
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates a decision service.
func New(rules ports.RulesPort, opts ...Option) (*Service, error) {
	if rules == nil {
		return nil, errors.New("rules port is required")
	}
	s := &Service{
		rules:  rules,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CheckTransfer advises whether a transfer is permitted and how it settles.
func (s *Service) CheckTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveEvaluateLatency(kindTransfer, time.Since(start)) }()

	normalized, err := normalizeTransfer(req)
	if err != nil {
		return nil, err
	}

	rules := s.rules.TransferRules(ctx)
	result := EvaluateTransfer(normalized, rules)
	result.EvaluatedAt = requestcontext.Now(ctx)

	s.metrics.IncrementOutcome(kindTransfer, result.Possible, string(result.RulesOrigin))
	if result.Possible {
		s.metrics.IncrementSettlement(result.System)
	}
	s.logger.InfoContext(ctx, "transfer checked",
		"request_id", requestcontext.RequestID(ctx),
		"sender_country", normalized.SenderCountry,
		"recipient_country", normalized.RecipientCountry,
		"currency", normalized.Currency,
		"possible", result.Possible,
		"system", result.System,
		"rules_origin", result.RulesOrigin,
	)
	return result, nil
}

// CheckCompany advises whether a company may be onboarded and on what terms.
func (s *Service) CheckCompany(ctx context.Context, req CompanyRequest) (*CompanyResult, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveEvaluateLatency(kindCompany, time.Since(start)) }()

	country, err := domain.ParseCountryName("country", req.Country)
	if err != nil {
		return nil, err
	}
	req.Country = country

	// Bad input never triggers rule acquisition.
	if _, _, err := normalizeCompany(req); err != nil {
		return nil, err
	}

	rules := s.rules.CompanyRules(ctx)
	result, err := EvaluateCompany(req, rules)
	if err != nil {
		return nil, err
	}
	result.EvaluatedAt = requestcontext.Now(ctx)

	s.metrics.IncrementOutcome(kindCompany, result.Possible, string(result.RulesOrigin))
	s.logger.InfoContext(ctx, "company checked",
		"request_id", requestcontext.RequestID(ctx),
		"country", req.Country,
		"possible", result.Possible,
		"country_status", result.CountryStatus,
		"activity_status", result.ActivityStatus,
		"rules_origin", result.RulesOrigin,
	)
	return result, nil
}

func normalizeTransfer(req TransferRequest) (TransferRequest, error) {
	sender, err := domain.ParseCountryName("sender_country", req.SenderCountry)
	if err != nil {
		return TransferRequest{}, err
	}
	recipient, err := domain.ParseCountryName("recipient_country", req.RecipientCountry)
	if err != nil {
		return TransferRequest{}, err
	}
	currency, err := domain.ParseCurrencyCode(req.Currency)
	if err != nil {
		return TransferRequest{}, err
	}
	return TransferRequest{
		SenderCountry:    sender,
		RecipientCountry: recipient,
		Currency:         currency.String(),
	}, nil
}
