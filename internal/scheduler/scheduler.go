package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"MCXTracker/internal/model"
	"MCXTracker/internal/notifier"
	"MCXTracker/internal/recorder"
	"MCXTracker/internal/tracker"
)

// Scheduler runs the daily signal task and serves Telegram commands. It
// only triggers the same synchronous pipeline the API serves; there is no
// background mutation of pipeline state.
type Scheduler struct {
	Cron     *cron.Cron
	Service  *tracker.Service
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context

	Contracts   []string
	Period      model.Period
	Interval    model.Interval
	DutyPercent float64
}

// NewScheduler creates a Scheduler over the configured contract list.
func NewScheduler(ctx context.Context, svc *tracker.Service, tn *notifier.TelegramNotifier, rec recorder.Recorder,
	contracts []string, period model.Period, interval model.Interval, dutyPercent float64) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Service:     svc,
		Notifier:    tn,
		Recorder:    rec,
		Ctx:         ctx,
		Contracts:   contracts,
		Period:      period,
		Interval:    interval,
		DutyPercent: dutyPercent,
	}
}

// Register adds the daily signal task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily signal task")
	for _, name := range s.Contracts {
		a, err := s.Service.Analyze(tracker.Request{
			Contract:    name,
			Period:      s.Period,
			Interval:    s.Interval,
			DutyPercent: s.DutyPercent,
		})
		if err != nil {
			log.Printf("[ERROR] daily analyze %s: %v", name, err)
			s.trySend(fmt.Sprintf("❌ %s: analysis failed: %v", name, err))
			continue
		}

		s.trySend(notifier.FormatSignalReport(a))

		if err := s.Recorder.RecordSignal(&recorder.SignalSnapshot{
			Contract:     name,
			Period:       string(s.Period),
			Interval:     string(s.Interval),
			DerivedPrice: a.Latest.DerivedPrice,
			RSI:          a.Latest.RSI,
			MACD:         a.Latest.MACD,
			MACDSignal:   a.Latest.MACDSignal,
			DrawdownPct:  a.Latest.DrawdownPct,
			Verdict:      string(a.Signal.Verdict),
			Score:        a.Signal.Score,
			Reasons:      strings.Join(a.Signal.Reasons, "; "),
		}); err != nil {
			log.Printf("[ERROR] record signal %s: %v", name, err)
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/signal":
		s.dailyTask()
		return ""
	case "/margin":
		return s.marginReport()
	case "/refresh":
		s.Service.InvalidateAll()
		return "♻️ Cache cleared; next request fetches fresh data."
	default:
		return "Commands:\n• /signal — current verdicts\n• /margin — lot margin estimates\n• /refresh — drop cached quotes"
	}
}

func (s *Scheduler) marginReport() string {
	var b strings.Builder
	b.WriteString("💰 <b>Margin estimates</b>\n\n")
	for _, name := range s.Contracts {
		a, err := s.Service.Analyze(tracker.Request{
			Contract:    name,
			Period:      s.Period,
			Interval:    s.Interval,
			DutyPercent: s.DutyPercent,
		})
		if err != nil {
			b.WriteString(fmt.Sprintf("%s: unavailable (%v)\n", name, err))
			continue
		}
		b.WriteString(notifier.FormatMarginLine(a.Contract, a.Margin) + "\n")
	}
	return b.String()
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
