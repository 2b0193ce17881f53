package auth

import (
	"testing"
	"time"

	"github.com/your-org/retailpos-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Retail POS Backend"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough-for-hs256",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(7, "maria", "cashier")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Username != "maria" {
		t.Errorf("Username = %q, want %q", claims.Username, "maria")
	}
	if claims.Role != "cashier" {
		t.Errorf("Role = %q, want %q", claims.Role, "cashier")
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, "access")
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	manager := NewJWTManager(testConfig())

	refresh, err := manager.GenerateRefreshToken(7, "maria")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error: %v", err)
	}

	if _, err := manager.ValidateAccessToken(refresh); err == nil {
		t.Error("expected refresh token to be rejected as an access token")
	}
	if _, err := manager.ValidateRefreshToken(refresh); err != nil {
		t.Errorf("ValidateRefreshToken() error: %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(7, "maria", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "a-completely-different-secret-key-of-decent-size"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Error("expected token signed with a different secret to fail validation")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"missing prefix", "abc.def.ghi", ""},
		{"empty header", "", ""},
		{"prefix only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
