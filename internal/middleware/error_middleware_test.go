package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formadesk/formadesk/internal/app/models/dto"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field,omitempty"`
	} `json:"error"`
}

func runHandleAPIError(t *testing.T, err error) (int, errorBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"request not found", apperrors.ErrRequestNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"training not found", apperrors.ErrTrainingNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict, dto.ErrorCodeInvalidTransition},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"no pending step", apperrors.ErrNoPendingStep, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeConflict},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := runHandleAPIError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, string(tc.wantCode), body.Error.Code)
		})
	}
}

func TestHandleAPIErrorRejectReasonCarriesField(t *testing.T) {
	status, body := runHandleAPIError(t, apperrors.ErrRejectReasonRequired)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), body.Error.Code)
	assert.Equal(t, "comment", body.Error.Field)
}

func TestHandleAPIErrorDelegateTargetCarriesField(t *testing.T) {
	status, body := runHandleAPIError(t, apperrors.ErrDelegateRequired)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "delegateTo", body.Error.Field)
}

func TestHandleAPIErrorUnwrapsCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrInvalidTransition,
		"cannot move a request from completed to draft")

	status, body := runHandleAPIError(t, err)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "cannot move a request from completed to draft", body.Error.Message)
}
