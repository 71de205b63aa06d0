// Package service acquires rule snapshots: cache first, then the document
// store, and the built-in rules whenever anything on that path fails.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks DocumentSource,RulesCache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"compliance-advisor/internal/rules/extract"
	"compliance-advisor/internal/rules/fallback"
	"compliance-advisor/internal/rules/metrics"
	"compliance-advisor/internal/rules/models"
	"compliance-advisor/internal/rules/source"
	"compliance-advisor/pkg/platform/sentinel"
)

const (
	categoryTransfer = "transfer"
	categoryCompany  = "company"
)

// DocumentSource fetches raw rule documents.
type DocumentSource interface {
	FetchDocument(ctx context.Context, id string) (*source.Document, error)
	FetchDocumentByTitle(ctx context.Context, space, title string) (*source.Document, error)
}

// RulesCache persists the latest snapshot per category.
type RulesCache interface {
	FindTransferRules(ctx context.Context) (*models.TransferRules, error)
	SaveTransferRules(ctx context.Context, rules *models.TransferRules) error
	FindCompanyRules(ctx context.Context) (*models.CompanyRules, error)
	SaveCompanyRules(ctx context.Context, rules *models.CompanyRules) error
}

// DocumentRef points at a document either by ID or by space and title.
// ID takes precedence when both are set.
type DocumentRef struct {
	ID    string
	Space string
	Title string
}

// IsZero reports whether the reference cannot locate any document.
func (r DocumentRef) IsZero() bool {
	return r.ID == "" && (r.Space == "" || r.Title == "")
}

func (r DocumentRef) String() string {
	if r.ID != "" {
		return r.ID
	}
	return r.Space + "/" + r.Title
}

// Documents names the three pages rules are read from.
type Documents struct {
	Transfer          DocumentRef
	CompanyCountries  DocumentRef
	CompanyActivities DocumentRef
}

// Service is the acquisition orchestrator. Its accessors never fail: callers
// always receive a usable snapshot.
type Service struct {
	source  DocumentSource
	cache   RulesCache
	docs    Documents
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
	flights singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for acquisition failures.
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

// WithClock overrides the time source stamped on snapshots.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTracer overrides the tracer used for acquisition spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New creates an acquisition orchestrator.
func New(src DocumentSource, cache RulesCache, docs Documents, opts ...Option) (*Service, error) {
	if src == nil {
		return nil, errors.New("document source is required")
	}
	if cache == nil {
		return nil, errors.New("rules cache is required")
	}
	s := &Service{
		source: src,
		cache:  cache,
		docs:   docs,
		logger: slog.Default(),
		tracer: otel.Tracer("compliance-advisor/internal/rules/service"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TransferRules returns the current transfer rule set.
func (s *Service) TransferRules(ctx context.Context) *models.TransferRules {
	rules, err := s.cache.FindTransferRules(ctx)
	if err == nil {
		s.metrics.IncrementCacheHit(categoryTransfer)
		return rules
	}
	s.cacheReadFailed(ctx, categoryTransfer, err)
	s.metrics.IncrementCacheMiss(categoryTransfer)

	v, err, _ := s.flights.Do(categoryTransfer, func() (any, error) {
		if cached, err := s.cache.FindTransferRules(ctx); err == nil {
			return cached, nil
		}
		return s.acquireTransfer(context.WithoutCancel(ctx))
	})
	if err != nil {
		s.fallbackUsed(ctx, categoryTransfer, err)
		return fallback.Transfer(s.now())
	}
	return v.(*models.TransferRules)
}

// CompanyRules returns the current company onboarding rule set.
func (s *Service) CompanyRules(ctx context.Context) *models.CompanyRules {
	rules, err := s.cache.FindCompanyRules(ctx)
	if err == nil {
		s.metrics.IncrementCacheHit(categoryCompany)
		return rules
	}
	s.cacheReadFailed(ctx, categoryCompany, err)
	s.metrics.IncrementCacheMiss(categoryCompany)

	v, err, _ := s.flights.Do(categoryCompany, func() (any, error) {
		if cached, err := s.cache.FindCompanyRules(ctx); err == nil {
			return cached, nil
		}
		return s.acquireCompany(context.WithoutCancel(ctx))
	})
	if err != nil {
		s.fallbackUsed(ctx, categoryCompany, err)
		return fallback.Company(s.now())
	}
	return v.(*models.CompanyRules)
}

func (s *Service) acquireTransfer(ctx context.Context) (rules *models.TransferRules, err error) {
	ctx, finish := s.startAcquire(ctx, categoryTransfer)
	defer func() { finish(err) }()

	doc, err := s.fetch(ctx, "transfer document", s.docs.Transfer)
	if err != nil {
		return nil, err
	}
	rules, err = extract.TransferRules(doc, s.now())
	if err != nil {
		return nil, err
	}
	s.saveTransfer(ctx, rules)
	return rules, nil
}

func (s *Service) acquireCompany(ctx context.Context) (rules *models.CompanyRules, err error) {
	ctx, finish := s.startAcquire(ctx, categoryCompany)
	defer func() { finish(err) }()

	var countriesDoc, activitiesDoc *source.Document
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := s.fetch(gctx, "company countries document", s.docs.CompanyCountries)
		countriesDoc = doc
		return err
	})
	g.Go(func() error {
		doc, err := s.fetch(gctx, "company activities document", s.docs.CompanyActivities)
		activitiesDoc = doc
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rules, err = extract.CompanyRules(countriesDoc, activitiesDoc, s.now())
	if err != nil {
		return nil, err
	}
	s.saveCompany(ctx, rules)
	return rules, nil
}

func (s *Service) fetch(ctx context.Context, name string, ref DocumentRef) (*source.Document, error) {
	if ref.IsZero() {
		return nil, &source.ConfigurationError{Missing: []string{name}}
	}
	var (
		doc *source.Document
		err error
	)
	if ref.ID != "" {
		doc, err = s.source.FetchDocument(ctx, ref.ID)
	} else {
		doc, err = s.source.FetchDocumentByTitle(ctx, ref.Space, ref.Title)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", name, ref, err)
	}
	if doc == nil {
		return nil, &source.RemoteError{DocumentID: ref.String(), Message: "empty response"}
	}
	return doc, nil
}

func (s *Service) saveTransfer(ctx context.Context, rules *models.TransferRules) {
	if err := s.cache.SaveTransferRules(ctx, rules); err != nil {
		s.logger.WarnContext(ctx, "failed to cache rules", "category", categoryTransfer, "error", err)
	}
}

func (s *Service) saveCompany(ctx context.Context, rules *models.CompanyRules) {
	if err := s.cache.SaveCompanyRules(ctx, rules); err != nil {
		s.logger.WarnContext(ctx, "failed to cache rules", "category", categoryCompany, "error", err)
	}
}

func (s *Service) startAcquire(ctx context.Context, category string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "rules.acquire",
		trace.WithAttributes(attribute.String("rules.category", category)))
	return ctx, func(err error) {
		outcome := "success"
		if err != nil {
			outcome = string(source.GetCategory(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		s.metrics.ObserveAcquireLatency(category, outcome, time.Since(start))
		span.End()
	}
}

func (s *Service) cacheReadFailed(ctx context.Context, category string, err error) {
	if errors.Is(err, sentinel.ErrNotFound) {
		return
	}
	s.logger.WarnContext(ctx, "rule cache read failed, treating as miss",
		"category", category,
		"error", err,
	)
}

func (s *Service) fallbackUsed(ctx context.Context, category string, err error) {
	reason := source.GetCategory(err)
	s.metrics.IncrementFallback(category, string(reason))
	s.logger.WarnContext(ctx, "serving built-in rules",
		"category", category,
		"reason", reason,
		"error", err,
	)
}
