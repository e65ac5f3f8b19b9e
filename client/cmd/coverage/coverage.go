package coverage

import (
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/client/cmd/internal/output"
	"github.com/goto/chronoset/client/cmd/internal/utils"
	lerrors "github.com/goto/chronoset/client/local/errors"
	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/core/coverage"
	"github.com/goto/chronoset/core/coverage/service"
	"github.com/goto/chronoset/internal/lib/interval"
	"github.com/goto/chronoset/internal/lib/window"
)

const defaultJobName = "adhoc"

type coverageCommand struct {
	logger         log.Logger
	configFilePath string
	outputFormat   string

	jobName    string
	schedule   string
	increment  bool
	size       string
	delay      string
	truncateTo string
	location   string
	from       string
	to         string
	strict     bool

	clientConfig *config.ClientConfig
	loc          *time.Location
}

type runView struct {
	ID          string      `json:"id"           yaml:"id"`
	ScheduledAt time.Time   `json:"scheduled_at" yaml:"scheduled_at"`
	Window      output.Span `json:"window"       yaml:"window"`
}

type reportView struct {
	Job       string        `json:"job"       yaml:"job"`
	Period    output.Span   `json:"period"    yaml:"period"`
	Complete  bool          `json:"complete"  yaml:"complete"`
	Runs      []runView     `json:"runs"      yaml:"runs"`
	Covered   []output.Span `json:"covered"   yaml:"covered"`
	Gaps      []output.Span `json:"gaps"      yaml:"gaps"`
	Redundant []output.Span `json:"redundant" yaml:"redundant"`
}

// NewCoverageCommand initializes command to check how scheduled windows cover a period
func NewCoverageCommand() *cobra.Command {
	cov := &coverageCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Check how the windows of a scheduled job cover a period",
		Long: heredoc.Doc(`
			Lists every run of a cron schedule within the period together with the
			data window it processes, then reports the stretches of the period no
			run processes (gaps) and the ones processed more than once (redundant).

			The window is either incremental, spanning from one schedule tick to the
			next, or custom, defined by size, delay and truncate-to.
		`),
		Example: heredoc.Doc(`
			$ chronoset coverage --schedule "0 2 * * *" --incremental --from 2024-03-01 --to 2024-03-08
			$ chronoset coverage --schedule "0 2 * * *" --size 2d --truncate-to d --from 2024-03-01 --to 2024-03-08 -o yaml
		`),
		RunE:    cov.RunE,
		PreRunE: cov.PreRunE,
	}

	cov.injectFlags(cmd)
	internal.MarkFlagsRequired(cmd, []string{"schedule", "from", "to"})
	return cmd
}

func (c *coverageCommand) injectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVarP(&c.outputFormat, "output", "o", "", "Output format: table, yaml or json")

	cmd.Flags().StringVarP(&c.jobName, "job", "j", defaultJobName, "Name of the job")
	cmd.Flags().StringVar(&c.schedule, "schedule", "", "Cron schedule of the job")
	cmd.Flags().BoolVar(&c.increment, "incremental", false, "Use the span between schedule ticks as window")
	cmd.Flags().StringVar(&c.size, "size", "", "Window size, such as 1d or 6h")
	cmd.Flags().StringVar(&c.delay, "delay", "", "Move the window back by this much, such as 2h")
	cmd.Flags().StringVar(&c.truncateTo, "truncate-to", "", "Align the window end to h, d, w, M, y or None")
	cmd.Flags().StringVarP(&c.location, "location", "l", "", "IANA location the window is aligned in")
	cmd.Flags().StringVar(&c.from, "from", "", "Period start, RFC3339 or a date")
	cmd.Flags().StringVar(&c.to, "to", "", "Period end, RFC3339 or a date")
	cmd.Flags().BoolVar(&c.strict, "strict", false, "Fail when the period is not fully covered")
}

func (c *coverageCommand) PreRunE(_ *cobra.Command, _ []string) error {
	var err error
	c.clientConfig, err = internal.LoadConfig(c.configFilePath)
	if err != nil {
		return err
	}
	c.outputFormat = utils.GetFirstNonEmpty(c.outputFormat, string(c.clientConfig.Output.Format))
	c.location = utils.GetFirstNonEmpty(c.location, c.clientConfig.Location)
	c.loc, err = time.LoadLocation(c.location)
	if err != nil {
		return lerrors.NewValidationErrorf("unknown location [%s]", c.location)
	}

	if !c.increment && c.size == "" {
		return lerrors.NewValidationErrorf("--size is required unless --incremental is given")
	}
	return nil
}

func (c *coverageCommand) RunE(cmd *cobra.Command, _ []string) error {
	job, period, err := c.parse()
	if err != nil {
		return lerrors.NewValidationErrorf("%s", err)
	}

	coverageService := service.NewCoverageService(logger.NewServiceLogger(c.clientConfig.Log, cmd.ErrOrStderr()))
	report, err := coverageService.Report(job, period)
	if err != nil {
		return err
	}

	if err := c.print(cmd, report); err != nil {
		return err
	}

	if !report.IsComplete() {
		if c.strict {
			return lerrors.NewWarnErrorf("%s of the period is not covered by job %s", report.GapDuration(), job.Name())
		}
		c.logger.Warn("%s of the period is not covered by job %s", report.GapDuration(), job.Name())
	}
	return nil
}

func (c *coverageCommand) parse() (*coverage.Job, interval.Interval[time.Time], error) {
	from, err := utils.ParseTime(c.from, c.loc)
	if err != nil {
		return nil, interval.Interval[time.Time]{}, err
	}
	to, err := utils.ParseTime(c.to, c.loc)
	if err != nil {
		return nil, interval.Interval[time.Time]{}, err
	}
	period, err := interval.New(from, to)
	if err != nil {
		return nil, interval.Interval[time.Time]{}, err
	}

	windowConfig := window.NewIncrementalConfig()
	if !c.increment {
		windowConfig, err = window.NewConfig(c.size, c.delay, c.location, c.truncateTo)
		if err != nil {
			return nil, interval.Interval[time.Time]{}, err
		}
	}

	job, err := coverage.NewJob(c.jobName, c.schedule, windowConfig)
	return job, period, err
}

func (c *coverageCommand) print(cmd *cobra.Command, report *coverage.Report) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(c.outputFormat))
	if config.OutputFormat(c.outputFormat) != config.OutputTable {
		return printer.Print(output.Result{Value: newReportView(report)})
	}

	rows := make([][]string, 0, len(report.Runs))
	for _, run := range report.Runs {
		rows = append(rows, []string{
			run.ScheduledAt.In(c.loc).Format(time.RFC3339),
			run.Window.Start().In(c.loc).Format(time.RFC3339),
			run.Window.End().In(c.loc).Format(time.RFC3339),
		})
	}
	c.logger.Info("Job %s with window %s, %d runs", report.Job, c.windowDescription(), len(report.Runs))
	if err := printer.Print(output.Result{
		Header: []string{"Scheduled At", "Window Start", "Window End"},
		Rows:   rows,
	}); err != nil {
		return err
	}

	c.logger.Info("\nCovered: %s", report.CoveredDuration())
	c.logger.Info("Gaps:")
	if err := printer.Print(output.Intervals(report.Gaps)); err != nil {
		return err
	}
	c.logger.Info("Redundant:")
	return printer.Print(output.Intervals(report.Redundant))
}

func (c *coverageCommand) windowDescription() string {
	if c.increment {
		return window.NewIncrementalConfig().String()
	}
	windowConfig, err := window.NewConfig(c.size, c.delay, c.location, c.truncateTo)
	if err != nil {
		return "invalid"
	}
	return windowConfig.String()
}

func newReportView(report *coverage.Report) reportView {
	runs := make([]runView, 0, len(report.Runs))
	for _, run := range report.Runs {
		runs = append(runs, runView{
			ID:          run.ID.String(),
			ScheduledAt: run.ScheduledAt,
			Window:      output.Span{Start: run.Window.Start(), End: run.Window.End()},
		})
	}
	return reportView{
		Job:       report.Job.String(),
		Period:    output.Span{Start: report.Period.Start(), End: report.Period.End()},
		Complete:  report.IsComplete(),
		Runs:      runs,
		Covered:   spans(report.Covered),
		Gaps:      spans(report.Gaps),
		Redundant: spans(report.Redundant),
	}
}

func spans(ivs []interval.Interval[time.Time]) []output.Span {
	res := make([]output.Span, 0, len(ivs))
	for _, in := range ivs {
		res = append(res, output.Span{Start: in.Start(), End: in.End()})
	}
	return res
}
