package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkurbatov/gw-exchange-front/internal/facades"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
	"github.com/mkurbatov/gw-exchange-front/internal/services"
)

func TestRegisterPartnerHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockPartnerRegistrar)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name: "successful registration",
			requestBody: RegisterPartnerRequest{
				Email:           "partner@example.com",
				Password:        "password1",
				PasswordConfirm: "password1",
			},
			setupMocks: func(mockSvc *MockPartnerRegistrar) {
				mockSvc.EXPECT().
					Register(gomock.Any(), "partner@example.com", "password1", "password1").
					Return(&models.PartnerIdentity{PartnerID: 42, PartnerCode: "BC42"}, "jwt-token", nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name: "password mismatch",
			requestBody: RegisterPartnerRequest{
				Email:           "partner@example.com",
				Password:        "password1",
				PasswordConfirm: "password2",
			},
			setupMocks: func(mockSvc *MockPartnerRegistrar) {
				mockSvc.EXPECT().
					Register(gomock.Any(), "partner@example.com", "password1", "password2").
					Return(nil, "", services.ErrPasswordMismatch)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Пароли не совпадают",
		},
		{
			name: "email already taken",
			requestBody: RegisterPartnerRequest{
				Email:           "partner@example.com",
				Password:        "password1",
				PasswordConfirm: "password1",
			},
			setupMocks: func(mockSvc *MockPartnerRegistrar) {
				mockSvc.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, "", &facades.BackendError{Message: "Email уже зарегистрирован"})
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Email уже зарегистрирован",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockPartnerRegistrar) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPartnerRegistrar(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewRegisterPartnerHandler(mockSvc)

			var body bytes.Buffer
			_ = json.NewEncoder(&body).Encode(tt.requestBody)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/partner/register", &body)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedStatusCode == http.StatusCreated {
				var resp PartnerAuthResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "jwt-token", resp.Token)
				assert.Equal(t, int64(42), resp.Partner.PartnerID)
			}
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestLoginPartnerHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockPartnerLoginer)
		expectedStatusCode int
	}{
		{
			name: "successful login",
			requestBody: LoginPartnerRequest{
				Email:    "partner@example.com",
				Password: "password1",
			},
			setupMocks: func(mockSvc *MockPartnerLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "partner@example.com", "password1").
					Return(&models.PartnerIdentity{PartnerID: 42}, "jwt-token", nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "wrong credentials",
			requestBody: LoginPartnerRequest{
				Email:    "partner@example.com",
				Password: "wrong",
			},
			setupMocks: func(mockSvc *MockPartnerLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "partner@example.com", "wrong").
					Return(nil, "", &facades.BackendError{Message: "Неверный email или пароль"})
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockPartnerLoginer(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewLoginPartnerHandler(mockSvc)

			var body bytes.Buffer
			_ = json.NewEncoder(&body).Encode(tt.requestBody)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/partner/login", &body)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}
