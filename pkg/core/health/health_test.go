package health

import (
	"context"
	"testing"
)

func result(status Status) CheckFunc {
	return func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"no checks", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("test", "1.0.0")
			for i, s := range tt.statuses {
				r.RegisterFunc(string(rune('a'+i)), result(s))
			}

			report := r.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if report.Healthy() != (tt.want != StatusUnhealthy) {
				t.Errorf("Healthy() = %v", report.Healthy())
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Errorf("got %d checks, want %d", len(report.Checks), len(tt.statuses))
			}
		})
	}
}

func TestRegistry_ChecksSortedAndNamed(t *testing.T) {
	r := NewRegistry("test", "")
	r.RegisterFunc("sessions", result(StatusHealthy))
	r.RegisterFunc("history", func(ctx context.Context) CheckResult {
		return CheckResult{Name: "history", Status: StatusHealthy, Details: map[string]interface{}{"entries": 3}}
	})
	r.RegisterFunc("sessions", result(StatusDegraded))

	report := r.Check(context.Background())
	if len(report.Checks) != 2 {
		t.Fatalf("got %d checks, want 2", len(report.Checks))
	}
	if report.Checks[0].Name != "history" || report.Checks[1].Name != "sessions" {
		t.Errorf("checks = %s, %s", report.Checks[0].Name, report.Checks[1].Name)
	}
	if report.Checks[1].Status != StatusDegraded {
		t.Error("re-registering did not replace the check")
	}
	if report.Service != "test" {
		t.Errorf("Service = %v", report.Service)
	}
}
