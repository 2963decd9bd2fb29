package config

import (
	"log/slog"
	"testing"

	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.App.StoreBackend)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.CORSOrigins)
	assert.Equal(t, leave.DefaultLimits(), cfg.Leave.Limits)
	assert.True(t, cfg.Leave.ReopenOnTeacherDecision)
	assert.Equal(t, 3, cfg.Leave.RecentLimit)
	assert.Equal(t, "hod", cfg.Roles.HODKeyword)
	assert.False(t, cfg.OAuth2Google.Enabled())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("LEAVE_MAX_DAYS_SICK", "5")
	t.Setenv("LEAVE_REOPEN_ON_TEACHER_DECISION", "false")
	t.Setenv("ROLE_CLERK_EMAILS", "office@example.edu, , registrar@example.edu")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Leave.Limits.MaxDays(leave.LeaveTypeSick))
	assert.Equal(t, 30, cfg.Leave.Limits.MaxDays(leave.LeaveTypeAnnual))
	assert.False(t, cfg.Leave.ReopenOnTeacherDecision)
	assert.Equal(t, []string{"office@example.edu", "registrar@example.edu"}, cfg.Roles.ClerkEmails)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":        {},
		"bad port":              {"JWT_SECRET_KEY": "s", "APP_PORT": "http"},
		"postgres without pass": {"JWT_SECRET_KEY": "s", "STORE_BACKEND": "postgres"},
		"unknown backend":       {"JWT_SECRET_KEY": "s", "STORE_BACKEND": "mongo"},
		"oauth half configured": {"JWT_SECRET_KEY": "s", "CLIENT_ID": "id"},
		"zero limit":            {"JWT_SECRET_KEY": "s", "LEAVE_MAX_DAYS_ANNUAL": "0"},
		"bad reopen flag":       {"JWT_SECRET_KEY": "s", "LEAVE_REOPEN_ON_TEACHER_DECISION": "sometimes"},
		"bad expiration":        {"JWT_SECRET_KEY": "s", "JWT_ACCESS_EXPIRATION_TIME": "1 day"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("JWT_SECRET_KEY", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
