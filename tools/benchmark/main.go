// Command benchmark observes a marketplace workflow run and reports how its
// fan-out behaves. Point it at a SettleAuction or DistributeRevenue execution
// and it polls Temporal until the run finishes, then prints per-type stats for
// every child workflow it spawned (webhook deliveries, payout legs).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "dright"
	pollInterval        = 2 * time.Second
)

type Config struct {
	TemporalHost string
	Namespace    string
	WorkflowID   string
	RunID        string
	Debug        bool
	QueryTimeout time.Duration
	PageSize     int
}

type RunStats struct {
	WorkflowID    string
	RunID         string
	WorkflowType  string
	Status        enums.WorkflowExecutionStatus
	StartTime     time.Time
	CloseTime     *time.Time
	ExecutionTime time.Duration
	Children      map[string]*ChildGroup // keyed by workflow type
	TotalChildren int
}

type ChildGroup struct {
	WorkflowType  string
	Count         int
	Completed     int
	Failed        int
	Other         int
	TotalDuration time.Duration
	FirstStart    time.Time
	LastEnd       *time.Time
}

func main() {
	cfg := parseFlags()

	if cfg.WorkflowID == "" {
		fmt.Println("Error: workflow-id is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)
	fmt.Printf("Monitoring workflow: %s\n", cfg.WorkflowID)
	if cfg.RunID != "" {
		fmt.Printf("Run ID: %s\n", cfg.RunID)
	}
	fmt.Printf("\nCollecting workflow statistics...\n")

	var lastStats *RunStats
	pollCount := 0

	for {
		select {
		case <-ctx.Done():
			printInterrupted(lastStats)
			return
		default:
		}

		pollCount++
		stats, err := collectRunStats(ctx, c, cfg)
		if err != nil {
			fmt.Printf("\nError collecting stats: %v\n", err)
			os.Exit(1)
		}
		lastStats = stats

		if isComplete(stats.Status) {
			fmt.Println("\n" + strings.Repeat("=", 72))
			fmt.Println("RUN RESULTS")
			fmt.Println(strings.Repeat("=", 72))
			printRunStats(stats)
			return
		}

		elapsed := time.Since(stats.StartTime)
		fmt.Printf("\rPolling... (polls: %d, elapsed: %s, children: %d)  ",
			pollCount, formatDuration(elapsed), stats.TotalChildren)

		timer := time.NewTimer(pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			printInterrupted(lastStats)
			return
		case <-timer.C:
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.StringVar(&cfg.WorkflowID, "workflow-id", "", "Workflow ID to monitor (required)")
	flag.StringVar(&cfg.RunID, "run-id", "", "Specific run ID (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&cfg.PageSize, "page-size", 1000, "Page size for Temporal queries (default: 1000, max: 1000)")

	var queryTimeoutSeconds int
	flag.IntVar(&queryTimeoutSeconds, "query-timeout", 30, "Timeout for each Temporal query in seconds (default: 30)")

	flag.Parse()

	cfg.QueryTimeout = time.Duration(queryTimeoutSeconds) * time.Second
	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 1000
	}

	return cfg
}

// collectRunStats describes the root execution and lists every child it
// spawned via the visibility store. Settlement and payout runs fan out one
// level deep, so a single ParentWorkflowId query covers the whole tree.
func collectRunStats(ctx context.Context, c client.Client, cfg *Config) (*RunStats, error) {
	qctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()

	desc, err := c.DescribeWorkflowExecution(qctx, cfg.WorkflowID, cfg.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to describe workflow: %w", err)
	}

	info := desc.GetWorkflowExecutionInfo()
	stats := &RunStats{
		WorkflowID:   cfg.WorkflowID,
		RunID:        info.GetExecution().GetRunId(),
		WorkflowType: info.GetType().GetName(),
		Status:       info.GetStatus(),
		StartTime:    info.GetStartTime().AsTime(),
		Children:     make(map[string]*ChildGroup),
	}
	if info.GetCloseTime() != nil {
		t := info.GetCloseTime().AsTime()
		stats.CloseTime = &t
		stats.ExecutionTime = t.Sub(stats.StartTime)
	} else {
		stats.ExecutionTime = time.Since(stats.StartTime)
	}

	query := fmt.Sprintf("ParentWorkflowId = '%s'", cfg.WorkflowID)
	var pageToken []byte
	for {
		qctx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.WorkflowService().ListWorkflowExecutions(qctx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			PageSize:      int32(cfg.PageSize),
			NextPageToken: pageToken,
			Query:         query,
		})
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to list child workflows: %w", err)
		}

		for _, exec := range resp.GetExecutions() {
			addChild(stats, exec)
		}

		pageToken = resp.GetNextPageToken()
		if len(pageToken) == 0 {
			break
		}
	}

	if cfg.Debug {
		fmt.Printf("collected %d children across %d types\n", stats.TotalChildren, len(stats.Children))
	}
	return stats, nil
}

func addChild(stats *RunStats, exec *workflowpb.WorkflowExecutionInfo) {
	wfType := exec.GetType().GetName()
	group, ok := stats.Children[wfType]
	if !ok {
		group = &ChildGroup{WorkflowType: wfType, FirstStart: exec.GetStartTime().AsTime()}
		stats.Children[wfType] = group
	}

	group.Count++
	stats.TotalChildren++

	start := exec.GetStartTime().AsTime()
	if start.Before(group.FirstStart) {
		group.FirstStart = start
	}
	if exec.GetCloseTime() != nil {
		end := exec.GetCloseTime().AsTime()
		if group.LastEnd == nil || end.After(*group.LastEnd) {
			group.LastEnd = &end
		}
		group.TotalDuration += end.Sub(start)
	}

	switch exec.GetStatus() {
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		group.Completed++
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		group.Failed++
	default:
		group.Other++
	}
}

func printRunStats(stats *RunStats) {
	fmt.Printf("\nWorkflow:  %s\n", stats.WorkflowID)
	fmt.Printf("Type:      %s\n", stats.WorkflowType)
	fmt.Printf("Run ID:    %s\n", stats.RunID)
	fmt.Printf("Status:    %s\n", formatStatus(stats.Status))
	fmt.Printf("Duration:  %s\n", formatDuration(stats.ExecutionTime))
	fmt.Printf("Children:  %d\n", stats.TotalChildren)

	if len(stats.Children) == 0 {
		return
	}

	types := make([]string, 0, len(stats.Children))
	for t := range stats.Children {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Printf("\n%-32s %7s %9s %7s %7s %10s\n", "CHILD TYPE", "COUNT", "COMPLETED", "FAILED", "OTHER", "AVG TIME")
	fmt.Println(strings.Repeat("-", 78))
	for _, t := range types {
		g := stats.Children[t]
		avg := time.Duration(0)
		if done := g.Completed + g.Failed; done > 0 {
			avg = g.TotalDuration / time.Duration(done)
		}
		fmt.Printf("%-32s %7d %9d %7d %7d %10s\n",
			g.WorkflowType, g.Count, g.Completed, g.Failed, g.Other, formatDuration(avg))
	}

	// Wall-clock span of the fan-out, useful for spotting serialized deliveries
	for _, t := range types {
		g := stats.Children[t]
		if g.LastEnd == nil {
			continue
		}
		span := g.LastEnd.Sub(g.FirstStart)
		fmt.Printf("\n%s: %d executions over %s wall clock\n", g.WorkflowType, g.Count, formatDuration(span))
	}
}

func printInterrupted(stats *RunStats) {
	if stats == nil {
		return
	}
	fmt.Println("\n\n" + strings.Repeat("=", 72))
	fmt.Println("INTERRUPTED - PARTIAL RESULTS")
	fmt.Println(strings.Repeat("=", 72))
	printRunStats(stats)
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "TIMED OUT"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}

func isComplete(status enums.WorkflowExecutionStatus) bool {
	return status != enums.WORKFLOW_EXECUTION_STATUS_RUNNING &&
		status != enums.WORKFLOW_EXECUTION_STATUS_UNSPECIFIED
}
