package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkurbatov/gw-exchange-front/internal/jwt"
	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, sess *MockSessionReader)
		expectedStatus   int
		expectNextCalled bool
		expectedPartner  int64
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "SessionCleared",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{PartnerID: 42, PartnerCode: "BC42"}, nil)
				sess.EXPECT().Load(gomock.Any(), int64(42)).
					Return(nil, nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "ValidTokenWithSession",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{PartnerID: 42, PartnerCode: "BC42"}, nil)
				sess.EXPECT().Load(gomock.Any(), int64(42)).
					Return(&models.PartnerSession{PartnerID: 42, PartnerCode: "BC42"}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
			expectedPartner:  42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockSessions := NewMockSessionReader(ctrl)
			tt.mockSetup(mockTokener, mockSessions)

			nextCalled := false
			var gotPartner int64
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotPartner, _ = PartnerIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockSessions)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectNextCalled {
				assert.Equal(t, tt.expectedPartner, gotPartner)
			}
		})
	}
}
