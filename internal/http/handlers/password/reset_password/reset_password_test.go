package resetpassword

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passreset/internal/core/domain/token"
	"passreset/internal/core/domain/user"
	service "passreset/internal/core/services/reset_password"
	"passreset/internal/http/handlers/response"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	err    error
	inputs []service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (service.Result, error) {
	s.inputs = append(s.inputs, input)
	return service.Result{}, s.err
}

func doRequest(handler *Handler, body string) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/user/reset-password", strings.NewReader(body))
	handler.ServeHTTP(rw, request)
	return rw
}

func decode(t *testing.T, rw *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &res))
	return res
}

const validBody = `{
	"email": "test@test.test",
	"token": "test-token",
	"password1": "new-password-1",
	"password2": "new-password-1"
}`

func TestSuccess(t *testing.T) {
	stub := &stubService{}
	rw := doRequest(New(stub), validBody)

	require.Equal(t, http.StatusOK, rw.Code)
	res := decode(t, rw)
	require.Equal(t, response.StatusOK, res.Status)
	require.Equal(t, "Password reset. Please login with your new password.", res.Message)

	require.Len(t, stub.inputs, 1)
	require.Equal(t, "test@test.test", string(stub.inputs[0].Email))
	require.Equal(t, "test-token", string(stub.inputs[0].Token))
	require.Equal(t, "new-password-1", string(stub.inputs[0].NewPassword))
}

func TestPasswordMismatchFailsBeforeService(t *testing.T) {
	stub := &stubService{}
	rw := doRequest(New(stub), `{
		"email": "test@test.test",
		"token": "test-token",
		"password1": "new-password-1",
		"password2": "something-else"
	}`)

	require.Equal(t, http.StatusOK, rw.Code)
	res := decode(t, rw)
	require.Equal(t, response.StatusError, res.Status)
	require.Equal(t, "Passwords do not match. Please try again.", res.Message)
	require.Len(t, stub.inputs, 0)
}

func TestBusinessErrors(t *testing.T) {
	cases := []struct {
		id       string
		err      error
		expected string
	}{
		{
			id:       "token does not exist",
			err:      token.ErrTokenDoesNotExist,
			expected: "Token not found. Please try the reset password process again.",
		},
		{
			id:       "user does not exist",
			err:      user.ErrUserDoesNotExist,
			expected: "Token not found. Please try the reset password process again.",
		},
		{
			id:       "weak password",
			err:      &user.PasswordPolicyError{Reason: "must be at least 8 characters long"},
			expected: "password does not meet minimum requirements: must be at least 8 characters long",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.err}
			rw := doRequest(New(stub), validBody)

			require.Equal(t, http.StatusOK, rw.Code)
			res := decode(t, rw)
			require.Equal(t, response.StatusError, res.Status)
			require.Equal(t, testcase.expected, res.Message)
		})
	}
}

func TestInvalidPayload(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not json", body: "not-json"},
		{id: "missing token", body: `{"email": "test@test.test", "password1": "a", "password2": "a"}`},
		{id: "missing passwords", body: `{"email": "test@test.test", "token": "test-token"}`},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			rw := doRequest(New(stub), testcase.body)

			require.Equal(t, http.StatusBadRequest, rw.Code)
			require.Len(t, stub.inputs, 0)
		})
	}
}

func TestStorageErrorRespondsInternalError(t *testing.T) {
	stub := &stubService{err: errors.New("storage is down")}
	rw := doRequest(New(stub), validBody)

	require.Equal(t, http.StatusInternalServerError, rw.Code)
}
