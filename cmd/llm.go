package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/focusloop/internal/store"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMRequests(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-6s  %-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Printf("%-6d  %-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format(time.DateTime),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		found, err := s.EventRepo().QueryLLMRequests(cmd.Context(), store.QueryOpts{After: seq - 1, Before: seq + 1, Limit: 1})
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if len(found) == 0 {
			return fmt.Errorf("event %d not found", seq)
		}
		e := found[0]

		sep := strings.Repeat("─", 60)
		fmt.Printf("Seq:       %d\n", e.Sequence)
		fmt.Printf("Time:      %s\n", e.Timestamp.Local().Format(time.DateTime))
		fmt.Printf("Provider:  %s\n", e.Provider)
		fmt.Printf("Model:     %s\n", e.Model)
		fmt.Printf("Purpose:   %s\n", e.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:   %dms\n", e.LatencyMs)
		fmt.Printf("Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", e.ErrorMessage)
		}

		for _, part := range []struct{ title, body string }{
			{"REQUEST", e.RequestBody},
			{"RESPONSE", e.ResponseBody},
		} {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println(part.title)
			fmt.Println(sep)
			fmt.Println(lo.Ternary(part.body != "", part.body, "(not captured)"))
		}
		return nil
	},
}

// usage aggregates LLM events sharing a key.
type usage struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

func aggregateUsage(events []store.LLMRequestEventData, key func(store.LLMRequestEventData) string) []usage {
	groups := lo.GroupBy(events, key)
	out := make([]usage, 0, len(groups))
	for k, evs := range groups {
		u := usage{Key: k, Calls: len(evs)}
		var latency int64
		for _, e := range evs {
			u.InputTokens += e.InputTokens
			u.OutputTokens += e.OutputTokens
			latency += e.LatencyMs
			if !e.Success {
				u.Failures++
			}
		}
		u.AvgLatencyMs = latency / int64(len(evs))
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calls != out[j].Calls {
			return out[i].Calls > out[j].Calls
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func printUsage(title string, rows []usage) {
	fmt.Println(title)
	fmt.Println(strings.Repeat("─", 84))
	fmt.Printf("%-28s  %6s  %6s  %10s  %10s  %10s  %8s\n",
		"", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms")
	fmt.Println(strings.Repeat("─", 84))
	for _, u := range rows {
		fmt.Printf("%-28s  %6d  %6d  %10d  %10d  %10d  %8d\n",
			truncate(u.Key, 28), u.Calls, u.Failures, u.InputTokens, u.OutputTokens,
			u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
	}
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openEventStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMRequests(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		printUsage("Usage by Purpose", aggregateUsage(events, func(e store.LLMRequestEventData) string { return e.Purpose }))
		fmt.Println()
		printUsage("Usage by Model", aggregateUsage(events, func(e store.LLMRequestEventData) string {
			return e.Provider + "/" + e.Model
		}))

		in := lo.SumBy(events, func(e store.LLMRequestEventData) int { return e.InputTokens })
		out := lo.SumBy(events, func(e store.LLMRequestEventData) int { return e.OutputTokens })
		fmt.Printf("\n%d calls, %d input tokens, %d output tokens\n", len(events), in, out)
		return nil
	},
}

func openEventStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (artifact, concept-map, evaluation)")
	llmListCmd.Flags().Duration("since", 0, "Only events newer than this (e.g. 24h)")
	llmStatsCmd.Flags().Duration("since", 0, "Only events newer than this (e.g. 24h)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
