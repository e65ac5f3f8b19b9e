package daily

import (
	"errors"

	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chronoset/client/cmd/internal"
	"github.com/goto/chronoset/client/cmd/internal/logger"
	"github.com/goto/chronoset/client/cmd/internal/output"
	lerrors "github.com/goto/chronoset/client/local/errors"
	"github.com/goto/chronoset/config"
	"github.com/goto/chronoset/internal/lib/daily"
)

type containsCommand struct {
	logger log.Logger
	sharedFlags

	window string
}

type containsResult struct {
	Window   string `json:"window"   yaml:"window"`
	Time     string `json:"time"     yaml:"time"`
	Shape    string `json:"shape"    yaml:"shape"`
	Contains bool   `json:"contains" yaml:"contains"`
}

func newContainsCommand() *cobra.Command {
	contains := &containsCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:     "contains <HH:MM>",
		Short:   "Check whether a time of day falls in a daily window",
		Example: "chronoset daily contains --window 20:00-08:00 07:30",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one time of day is required")
			}
			return nil
		},
		RunE:    contains.RunE,
		PreRunE: contains.PreRunE,
	}

	contains.sharedFlags.inject(cmd)
	cmd.Flags().StringVarP(&contains.window, "window", "w", "", "Window as HH:MM-HH:MM or its name in the document")
	internal.MarkFlagsRequired(cmd, []string{"window"})
	return cmd
}

func (c *containsCommand) PreRunE(_ *cobra.Command, _ []string) error {
	return c.load()
}

func (c *containsCommand) RunE(cmd *cobra.Command, args []string) error {
	in, err := c.repository.GetWindow(c.window)
	if err != nil {
		return err
	}
	t, err := daily.ParseTime(args[0])
	if err != nil {
		return lerrors.NewValidationErrorf("invalid time of day [%s]: %s", args[0], err)
	}

	res := containsResult{
		Window:   in.String(),
		Time:     t.String(),
		Shape:    in.Shape().String(),
		Contains: in.Contains(t),
	}
	c.logger.Debug("window %s covers %s a day", in, in.Duration())

	printer := output.NewPrinter(cmd.OutOrStdout(), config.OutputFormat(c.outputFormat))
	return printer.Print(output.Result{
		Header: []string{"Window", "Time", "Shape", "Contains"},
		Rows:   [][]string{{res.Window, res.Time, res.Shape, yesNo(res.Contains)}},
		Value:  res,
	})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
