package models

import (
	"testing"
	"time"
)

func TestAgentStatus_Valid(t *testing.T) {
	tests := []struct {
		name   string
		status AgentStatus
		want   bool
	}{
		{"available is valid", AgentStatusAvailable, true},
		{"busy is valid", AgentStatusBusy, true},
		{"empty string is invalid", AgentStatus(""), false},
		{"unknown status is invalid", AgentStatus("unknown"), false},
		{"typo status is invalid", AgentStatus("availble"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("AgentStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestAgentStatus_StringValues(t *testing.T) {
	tests := []struct {
		status AgentStatus
		want   string
	}{
		{AgentStatusAvailable, "available"},
		{AgentStatusBusy, "busy"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := string(tt.status); got != tt.want {
				t.Errorf("string(AgentStatus) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAgent_DefaultValues(t *testing.T) {
	agent := Agent{}

	if agent.Name != "" {
		t.Errorf("Agent.Name default should be empty string, got %q", agent.Name)
	}
	if agent.Capabilities != nil {
		t.Errorf("Agent.Capabilities default should be nil, got %v", agent.Capabilities)
	}
	if agent.Status != "" {
		t.Errorf("Agent.Status default should be empty string, got %q", agent.Status)
	}
	if agent.TasksCompleted != 0 {
		t.Errorf("Agent.TasksCompleted default should be 0, got %d", agent.TasksCompleted)
	}
	if agent.TotalTime != 0 {
		t.Errorf("Agent.TotalTime default should be 0, got %v", agent.TotalTime)
	}
	if !agent.RegisteredAt.IsZero() {
		t.Errorf("Agent.RegisteredAt default should be zero time, got %v", agent.RegisteredAt)
	}
}

func TestAgent_AverageTime(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     time.Duration
		want      time.Duration
	}{
		{"no tasks yields zero", 0, 0, 0},
		{"no tasks ignores total", 0, 5 * time.Second, 0},
		{"single task", 1, 3 * time.Second, 3 * time.Second},
		{"even division", 4, 8 * time.Second, 2 * time.Second},
		{"truncating division", 3, 10 * time.Second, 10 * time.Second / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := Agent{TasksCompleted: tt.completed, TotalTime: tt.total}
			if got := agent.AverageTime(); got != tt.want {
				t.Errorf("AverageTime() = %v, want %v", got, tt.want)
			}
		})
	}
}
