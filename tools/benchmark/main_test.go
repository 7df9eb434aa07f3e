package main

import (
	"testing"
	"time"

	commonpb "go.temporal.io/api/common/v1"
	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 5 * time.Second,
			want:     "5.0s",
		},
		{
			name:     "minutes",
			duration: 2*time.Minute + 30*time.Second,
			want:     "2m30s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name   string
		status enums.WorkflowExecutionStatus
		want   string
	}{
		{
			name:   "running",
			status: enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
			want:   "RUNNING",
		},
		{
			name:   "completed",
			status: enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			want:   "COMPLETED",
		},
		{
			name:   "failed",
			status: enums.WORKFLOW_EXECUTION_STATUS_FAILED,
			want:   "FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatStatus(tt.status)
			if got != tt.want {
				t.Errorf("formatStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		status enums.WorkflowExecutionStatus
		want   bool
	}{
		{
			name:   "running is not complete",
			status: enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
			want:   false,
		},
		{
			name:   "completed is complete",
			status: enums.WORKFLOW_EXECUTION_STATUS_COMPLETED,
			want:   true,
		},
		{
			name:   "failed is complete",
			status: enums.WORKFLOW_EXECUTION_STATUS_FAILED,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isComplete(tt.status)
			if got != tt.want {
				t.Errorf("isComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddChild_GroupsByType(t *testing.T) {
	stats := &RunStats{Children: make(map[string]*ChildGroup)}
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	exec := func(wfType string, start time.Time, close *time.Time, status enums.WorkflowExecutionStatus) *workflowpb.WorkflowExecutionInfo {
		info := &workflowpb.WorkflowExecutionInfo{
			Execution: &commonpb.WorkflowExecution{WorkflowId: "child"},
			Type:      &commonpb.WorkflowType{Name: wfType},
			StartTime: timestamppb.New(start),
			Status:    status,
		}
		if close != nil {
			info.CloseTime = timestamppb.New(*close)
		}
		return info
	}

	end1 := base.Add(2 * time.Second)
	end2 := base.Add(10 * time.Second)
	addChild(stats, exec("DeliverWebhook", base, &end1, enums.WORKFLOW_EXECUTION_STATUS_COMPLETED))
	addChild(stats, exec("DeliverWebhook", base.Add(time.Second), &end2, enums.WORKFLOW_EXECUTION_STATUS_FAILED))
	addChild(stats, exec("DeliverWebhook", base.Add(2*time.Second), nil, enums.WORKFLOW_EXECUTION_STATUS_RUNNING))

	if stats.TotalChildren != 3 {
		t.Fatalf("TotalChildren = %d, want 3", stats.TotalChildren)
	}
	group, ok := stats.Children["DeliverWebhook"]
	if !ok {
		t.Fatal("expected DeliverWebhook group")
	}
	if group.Count != 3 || group.Completed != 1 || group.Failed != 1 || group.Other != 1 {
		t.Errorf("group counts = %+v", group)
	}
	if !group.FirstStart.Equal(base) {
		t.Errorf("FirstStart = %v, want %v", group.FirstStart, base)
	}
	if group.LastEnd == nil || !group.LastEnd.Equal(end2) {
		t.Errorf("LastEnd = %v, want %v", group.LastEnd, end2)
	}
	wantTotal := 2*time.Second + 9*time.Second
	if group.TotalDuration != wantTotal {
		t.Errorf("TotalDuration = %v, want %v", group.TotalDuration, wantTotal)
	}
}
