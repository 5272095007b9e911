package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "test.issuer",
	})
}

func TestJWTRoundTrip(t *testing.T) {
	service := newTestJWTService(time.Hour)

	token, err := service.GenerateToken("64a1f2e3d4c5b6a798081920", "faculty")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.SubjectID != "64a1f2e3d4c5b6a798081920" {
		t.Errorf("SubjectID = %q, want %q", claims.SubjectID, "64a1f2e3d4c5b6a798081920")
	}
	if claims.UserType != "faculty" {
		t.Errorf("UserType = %q, want %q", claims.UserType, "faculty")
	}
	if claims.Issuer != "test.issuer" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "test.issuer")
	}
	if claims.ID == "" {
		t.Error("token ID (jti) is empty")
	}
}

func TestValidateTokenFailures(t *testing.T) {
	service := newTestJWTService(time.Hour)

	valid, err := service.GenerateToken("64a1f2e3d4c5b6a798081920", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	expiredService := newTestJWTService(-time.Minute)
	expired, err := expiredService.GenerateToken("64a1f2e3d4c5b6a798081920", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	otherService := NewJWTService(JWTConfig{
		SecretKey:   "different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test.issuer",
	})
	wrongKey, err := otherService.GenerateToken("64a1f2e3d4c5b6a798081920", "student")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"malformed token", "not-a-jwt"},
		{"truncated token", valid[:len(valid)/2]},
		{"expired token", expired},
		{"wrong signing key", wrongKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"with bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeneratedTokensCarryUniqueIDs(t *testing.T) {
	service := newTestJWTService(time.Hour)

	first, _ := service.GenerateToken("64a1f2e3d4c5b6a798081920", "faculty")
	second, _ := service.GenerateToken("64a1f2e3d4c5b6a798081920", "faculty")
	if strings.Compare(first, second) == 0 {
		t.Error("two tokens for the same subject are identical, want distinct jti")
	}
}
