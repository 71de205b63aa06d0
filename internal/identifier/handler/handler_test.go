package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-advisor/internal/identifier"
	"compliance-advisor/pkg/testutil"
)

func newRouter() chi.Router {
	r := chi.NewRouter()
	New(slog.New(slog.NewTextHandler(io.Discard, nil)), nil).Register(r)
	return r
}

func TestHandleValidate(t *testing.T) {
	router := newRouter()

	t.Run("valid IBAN", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/identifiers/validate",
			map[string]string{"identifier": "GB82 WEST 1234 5698 7654 32"})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		result := testutil.UnmarshalResponse[identifier.Result](t, rr)
		assert.True(t, result.Valid)
		assert.Equal(t, identifier.KindIBAN, result.Kind)
		require.NotNil(t, result.IBAN)
		assert.Equal(t, "82", result.IBAN.CheckDigits)
	})

	t.Run("invalid identifier is still a 200", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/identifiers/validate",
			map[string]string{"identifier": "hello"})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		result := testutil.UnmarshalResponse[identifier.Result](t, rr)
		assert.False(t, result.Valid)
		assert.Equal(t, identifier.KindUnknown, result.Kind)
	})

	t.Run("blank identifier is a validation error", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/identifiers/validate",
			map[string]string{"identifier": "  "})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("oversized identifier is a validation error", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/identifiers/validate",
			map[string]string{"identifier": strings.Repeat("A", 65)})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})
}
