package forgotpassword

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"passreset/internal/core/domain/token"
	service "passreset/internal/core/services/request_reset"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	result service.Result
	err    error
	inputs []service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.inputs = append(s.inputs, input)
	return s.result, s.err
}

func TestAlwaysRespondsOK(t *testing.T) {
	cases := []struct {
		id     string
		result service.Result
	}{
		{id: "token issued", result: service.Result{Issued: true}},
		{id: "unknown email", result: service.Result{Issued: false}},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{result: testcase.result}
			handler := New(stub, false)
			rw := httptest.NewRecorder()
			request := httptest.NewRequest(
				http.MethodPost,
				"/user/forgot-password",
				strings.NewReader(`{"email": "test@test.test"}`),
			)

			handler.ServeHTTP(rw, request)

			require.Equal(t, http.StatusOK, rw.Code)
			require.Contains(t, rw.Body.String(), `"status":"ok"`)
			require.Len(t, stub.inputs, 1)
			require.Empty(t, rw.Header().Get("x-test-password-reset-token"))
		})
	}
}

func TestInvalidPayload(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not json", body: "not-json"},
		{id: "missing email", body: `{}`},
		{id: "not an email", body: `{"email": "not-an-email"}`},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			handler := New(stub, false)
			rw := httptest.NewRecorder()
			request := httptest.NewRequest(
				http.MethodPost,
				"/user/forgot-password",
				strings.NewReader(testcase.body),
			)

			handler.ServeHTTP(rw, request)

			require.Equal(t, http.StatusBadRequest, rw.Code)
			require.Len(t, stub.inputs, 0)
		})
	}
}

func TestStorageErrorRespondsInternalError(t *testing.T) {
	stub := &stubService{err: errors.New("storage is down")}
	handler := New(stub, false)
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPost,
		"/user/forgot-password",
		strings.NewReader(`{"email": "test@test.test"}`),
	)

	handler.ServeHTTP(rw, request)

	require.Equal(t, http.StatusInternalServerError, rw.Code)
}

func TestTestModeExposesToken(t *testing.T) {
	issued := token.ResetToken{
		Value:     token.Value("test-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	stub := &stubService{result: service.Result{Issued: true, Token: issued}}
	handler := New(stub, true)
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPost,
		"/user/forgot-password",
		strings.NewReader(`{"email": "test@test.test"}`),
	)

	handler.ServeHTTP(rw, request)

	require.Equal(t, http.StatusOK, rw.Code)
	require.Equal(t, "test-token", rw.Header().Get("x-test-password-reset-token"))
}

func TestTestModeUnknownEmailExposesNothing(t *testing.T) {
	stub := &stubService{result: service.Result{Issued: false}}
	handler := New(stub, true)
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPost,
		"/user/forgot-password",
		strings.NewReader(`{"email": "test@test.test"}`),
	)

	handler.ServeHTTP(rw, request)

	require.Equal(t, http.StatusOK, rw.Code)
	require.Empty(t, rw.Header().Get("x-test-password-reset-token"))
}
