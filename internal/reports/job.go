package reports

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/stocksense/advisor/internal/adapters/config"
	"github.com/stocksense/advisor/pkg/logger"
)

// Notifier pushes a short report digest to a chat channel.
type Notifier interface {
	SendReportSummary(ctx context.Context, text string) error
}

// Job is one end-to-end report run: generate, write to disk, mail, notify.
// Run reports a single success/failure status to its caller; partial
// delivery failures after generation are still failures.
type Job struct {
	generator *Generator
	mailer    *Mailer
	notifier  Notifier
	cfg       config.ReportConfig
}

// NewJob wires a report job. mailer and notifier may be nil to skip those
// delivery channels.
func NewJob(generator *Generator, mailer *Mailer, notifier Notifier, cfg config.ReportConfig) *Job {
	return &Job{
		generator: generator,
		mailer:    mailer,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// Run executes the report job once.
func (j *Job) Run(ctx context.Context) error {
	report, err := j.generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	if j.cfg.OutputPath != "" {
		if err := report.WriteFile(j.cfg.OutputPath); err != nil {
			return err
		}
		logger.Info("report written",
			zap.String("path", j.cfg.OutputPath),
			zap.Int("rows", report.Rows),
		)
	}

	if j.mailer != nil && j.cfg.MailConfigured() {
		subject := fmt.Sprintf("Daily Stock Recommendations %s", report.Date.Format("2006-01-02"))
		att := Attachment{
			Filename:    report.Filename(),
			ContentType: "text/csv",
			Content:     report.CSV,
		}
		if err := j.mailer.Send(subject, report.Summary(), []Attachment{att}); err != nil {
			return err
		}
		logger.Info("report mailed", zap.String("to", j.cfg.SMTP.Recipient))
	}

	if j.notifier != nil {
		if err := j.notifier.SendReportSummary(ctx, report.Summary()); err != nil {
			// Chat delivery is a courtesy channel; mail already went out.
			logger.Warn("report notification failed", zap.Error(err))
		}
	}

	logger.Info("daily report complete",
		zap.Int("rows", report.Rows),
		zap.Int("buy", report.BuyCount),
		zap.Int("hold", report.HoldCount),
		zap.Int("sell", report.SellCount),
	)
	return nil
}
