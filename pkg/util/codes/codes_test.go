package codes

import (
	"strings"
	"testing"

	"github.com/resonara/resonara_backend/config"
)

func TestGenerateLinkToken(t *testing.T) {
	token, err := GenerateLinkToken()
	if err != nil {
		t.Fatalf("GenerateLinkToken failed: %v", err)
	}
	if len(token) != LinkTokenLength {
		t.Errorf("token length = %d, want %d", len(token), LinkTokenLength)
	}
	for _, r := range token {
		if !strings.ContainsRune(charsetAlphanumeric, r) {
			t.Errorf("token contains %q, not in charset", r)
		}
	}
}

func TestGenerateLinkTokenDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateLinkToken()
		if err != nil {
			t.Fatalf("GenerateLinkToken failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}

func TestGenerateCode(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		charset string
		wantErr bool
	}{
		{"valid", 10, "abc123", false},
		{"zero length", 0, "abc", true},
		{"negative length", -1, "abc", true},
		{"empty charset", 10, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateCode(tt.length, tt.charset)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(code) != tt.length {
				t.Errorf("code length = %d, want %d", len(code), tt.length)
			}
			for _, r := range code {
				if !strings.ContainsRune(tt.charset, r) {
					t.Errorf("code contains %q, not in charset", r)
				}
			}
		})
	}
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(TokenByteLength)
	if err != nil {
		t.Fatalf("GenerateSecureToken failed: %v", err)
	}
	if len(token) != TokenByteLength*2 {
		t.Errorf("token length = %d, want %d", len(token), TokenByteLength*2)
	}

	if _, err := GenerateSecureToken(0); err == nil {
		t.Error("expected error for zero byte length")
	}
}

func TestGenerateNumericCode(t *testing.T) {
	code, err := GenerateNumericCode(6)
	if err != nil {
		t.Fatalf("GenerateNumericCode failed: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("code length = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("code contains non-digit %q", r)
		}
	}
}

func TestFormatAndParseCode(t *testing.T) {
	formatted := FormatCode("ABCD1234", 4)
	if formatted != "ABCD-1234" {
		t.Errorf("FormatCode = %q, want %q", formatted, "ABCD-1234")
	}

	parsed := ParseCode("abcd-1234")
	if parsed != "ABCD1234" {
		t.Errorf("ParseCode = %q, want %q", parsed, "ABCD1234")
	}
}

func TestGetCharset(t *testing.T) {
	if got := (Config{}).GetCharset(); got != charsetAlphanumeric {
		t.Errorf("empty config charset = %q, want default", got)
	}
	if got := (Config{Charset: "xyz"}).GetCharset(); got != "xyz" {
		t.Errorf("configured charset = %q, want %q", got, "xyz")
	}
}

func TestFromCentralConfig(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		c := FromCentralConfig(config.LinksConfig{})
		if got := c.GetTokenLength(); got != LinkTokenLength {
			t.Errorf("token length = %d, want %d", got, LinkTokenLength)
		}
		if got := c.GetMaxAttempts(); got != defaultMaxAttempts {
			t.Errorf("max attempts = %d, want %d", got, defaultMaxAttempts)
		}
		if got := c.GetCharset(); got != charsetAlphanumeric {
			t.Errorf("charset = %q, want default", got)
		}
	})

	t.Run("configured values carry through", func(t *testing.T) {
		c := FromCentralConfig(config.LinksConfig{
			TokenLength: 12,
			MaxAttempts: 5,
			Charset:     "abc123",
		})
		if got := c.GetTokenLength(); got != 12 {
			t.Errorf("token length = %d, want 12", got)
		}
		if got := c.GetMaxAttempts(); got != 5 {
			t.Errorf("max attempts = %d, want 5", got)
		}
		if got := c.GetCharset(); got != "abc123" {
			t.Errorf("charset = %q, want %q", got, "abc123")
		}
	})
}
