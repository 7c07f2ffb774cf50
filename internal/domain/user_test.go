package domain

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestUser_LogValue_OmitsCredential(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	u := User{ID: 7, Username: "alice", Credential: "$2a$10$secret-hash", DisplayName: "Alice"}
	logger.Info("user loaded", slog.Any("user", u))

	out := buf.String()
	if strings.Contains(out, "secret-hash") {
		t.Fatalf("credential leaked into log output: %s", out)
	}
	if !strings.Contains(out, `"username":"alice"`) {
		t.Errorf("expected username in log output, got %s", out)
	}
}

func TestUser_IsFederated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		credential string
		want       bool
	}{
		{name: "bcrypt hash", credential: "$2a$10$abcdef", want: false},
		{name: "federated marker", credential: FederatedCredentialPrefix + "google", want: true},
		{name: "empty", credential: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := &User{Credential: tt.credential}
			if got := u.IsFederated(); got != tt.want {
				t.Errorf("IsFederated() = %v, want %v", got, tt.want)
			}
		})
	}
}
