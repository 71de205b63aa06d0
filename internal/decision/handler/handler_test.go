package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"compliance-advisor/internal/decision"
	"compliance-advisor/internal/decision/handler/mocks"
	"compliance-advisor/internal/rules/models"
	dErrors "compliance-advisor/pkg/domain-errors"
	"compliance-advisor/pkg/testutil"
)

type DecisionHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	logs    *bytes.Buffer
}

func TestDecisionHandlerSuite(t *testing.T) {
	suite.Run(t, new(DecisionHandlerSuite))
}

func (s *DecisionHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)

	s.logs = &bytes.Buffer{}
	h := New(s.service, slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *DecisionHandlerSuite) TestHandleTransferCheck() {
	evaluatedAt := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)

	s.Run("returns the advisory result", func() {
		fee := models.FlatFee(0, "EUR")
		s.service.EXPECT().CheckTransfer(gomock.Any(), decision.TransferRequest{
			SenderCountry:    "Austria",
			RecipientCountry: "Germany",
			Currency:         "EUR",
		}).Return(&decision.TransferResult{
			Possible:        true,
			System:          models.SystemSEPA,
			Fee:             &fee,
			ProcessingTime:  "Same or next business day",
			Restrictions:    []string{"Source: fallback:built-in"},
			SourceReference: "fallback:built-in",
			RulesOrigin:     models.OriginFallback,
			EvaluatedAt:     evaluatedAt,
		}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/transfers/check", map[string]string{
			"sender_country":    " Austria",
			"recipient_country": "Germany",
			"currency":          "eur",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[TransferCheckResponse](s.T(), rr)
		s.True(resp.Possible)
		s.Equal(models.SystemSEPA, resp.System)
		s.Equal("0 EUR", resp.FeeDisplay)
		s.Equal("fallback", resp.RulesOrigin)
		s.Equal(evaluatedAt, resp.EvaluatedAt)
	})

	s.Run("rejection omits system and fee", func() {
		s.service.EXPECT().CheckTransfer(gomock.Any(), gomock.Any()).Return(&decision.TransferResult{
			Restrictions: []string{"Transfers to Russia are not permitted due to sanctions restrictions"},
		}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/transfers/check", map[string]string{
			"sender_country":    "Austria",
			"recipient_country": "Russia",
			"currency":          "EUR",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		body := string(testutil.ReadBody(s.T(), rr))
		s.NotContains(body, `"system"`)
		s.NotContains(body, `"fee"`)
		s.Contains(body, `"possible":false`)
	})

	s.Run("invalid currency is a validation error", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/transfers/check", map[string]string{
			"sender_country":    "Austria",
			"recipient_country": "Germany",
			"currency":          "euro",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})

	s.Run("malformed body is a bad request", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/transfers/check", "{not json")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("service failure is an internal error without description", func() {
		s.logs.Reset()
		s.service.EXPECT().CheckTransfer(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/transfers/check", map[string]string{
			"sender_country":    "Austria",
			"recipient_country": "Germany",
			"currency":          "EUR",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
		errResp := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal("internal_error", errResp["error"])
		s.Empty(errResp["error_description"])
		s.Equal("ERROR", s.failureLogLevel("transfer check failed"))
	})

	s.Run("validation error from the service is logged at info", func() {
		s.logs.Reset()
		s.service.EXPECT().CheckTransfer(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "sender_country is required"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/transfers/check", map[string]string{
			"sender_country":    "Austria",
			"recipient_country": "Germany",
			"currency":          "EUR",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
		s.Equal("INFO", s.failureLogLevel("transfer check failed"))
	})
}

// failureLogLevel returns the level of the first log line with message msg.
func (s *DecisionHandlerSuite) failureLogLevel(msg string) string {
	dec := json.NewDecoder(bytes.NewReader(s.logs.Bytes()))
	for dec.More() {
		var entry map[string]any
		s.Require().NoError(dec.Decode(&entry))
		if entry["msg"] == msg {
			level, _ := entry["level"].(string)
			return level
		}
	}
	s.Failf("log line not found", "no %q entry", msg)
	return ""
}

func (s *DecisionHandlerSuite) TestHandleCompanyCheck() {
	s.Run("returns conditions for EDD country", func() {
		s.service.EXPECT().CheckCompany(gomock.Any(), decision.CompanyRequest{
			Country:  "Turkey",
			Activity: "Software consulting",
		}).Return(&decision.CompanyResult{
			Possible:       true,
			CountryStatus:  decision.CountryStatusEDD,
			ActivityStatus: decision.ActivityStatusAccepted,
			Restrictions:   []string{},
			Conditions:     []string{"Enhanced due diligence documentation must be provided"},
		}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/companies/check", map[string]string{
			"country":  "Turkey",
			"activity": "  Software consulting ",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[CompanyCheckResponse](s.T(), rr)
		s.True(resp.Possible)
		s.Equal(decision.CountryStatusEDD, resp.CountryStatus)
		s.Len(resp.Conditions, 1)
	})

	s.Run("empty activity is rejected before the service", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/companies/check", map[string]string{
			"country":  "Turkey",
			"activity": "   ",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		errResp := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal("validation_error", errResp["error"])
		s.Equal("activity is required", errResp["error_description"])
	})

	s.Run("missing body is a bad request", func() {
		req := testutil.NewRequest(s.T(), http.MethodPost, "/companies/check")
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("validation error from the service is logged at info", func() {
		s.logs.Reset()
		s.service.EXPECT().CheckCompany(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeValidation, "country is required"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/companies/check", map[string]string{
			"country":  "Turkey",
			"activity": "Software consulting",
		})
		rr := testutil.DoRequest(s.router, req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
		s.Equal("INFO", s.failureLogLevel("company check failed"))
	})
}
