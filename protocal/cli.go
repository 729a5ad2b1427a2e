package protocal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"ai-anywhere/internal/domain"

	"github.com/spf13/cobra"
)

type loader func(env string) (*container, error)

// ExecuteCLI func - runs the command line interface
func ExecuteCLI() error {
	return newRootCommand(bootstrap).Execute()
}

func newRootCommand(load loader) *cobra.Command {
	var (
		env  string
		deps *container
	)
	root := &cobra.Command{
		Use:           "ai-anywhere",
		Short:         "Run AI operations against an OpenAI-compatible provider",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			deps, err = load(env)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if deps != nil {
				deps.close()
			}
		},
	}
	root.PersistentFlags().StringVar(&env, "env", "", "the environment to use")

	get := func() *container { return deps }
	root.AddCommand(
		newRunCommand(get),
		newOperationsCommand(get),
		newModelsCommand(get),
		newTasksCommand(get),
		newHistoryCommand(get),
	)
	return root
}

func newRunCommand(deps func() *container) *cobra.Command {
	var (
		prompt   string
		selected string
		audio    string
		stream   bool
		options  map[string]string
	)
	cmd := &cobra.Command{
		Use:   "run <operation>",
		Short: "Run one operation (built-in kind or custom task id)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := domain.OperationRequest{
				OperationType: args[0],
				Prompt:        prompt,
				Options:       options,
			}
			if selected != "" {
				request.SelectedText = &selected
			}
			if audio != "" {
				request.AudioFilePath = &audio
			}
			return runOperation(cmd.Context(), deps(), request, stream, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt text")
	cmd.Flags().StringVarP(&selected, "selected", "s", "", "selected text to process")
	cmd.Flags().StringVar(&audio, "audio", "", "audio file for speechToText")
	cmd.Flags().BoolVar(&stream, "stream", false, "print text as it arrives")
	cmd.Flags().StringToStringVarP(&options, "option", "o", nil, "operation option key=value")
	return cmd
}

func runOperation(ctx context.Context, deps *container, request domain.OperationRequest, stream bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var result domain.OperationResult
	if stream {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		done := make(chan struct{})
		defer func() {
			signal.Stop(interrupt)
			close(done)
		}()
		go func() {
			select {
			case <-interrupt:
				deps.operations.Cancel()
			case <-done:
			}
		}()

		result = deps.operations.ProcessStreaming(ctx, request, func(n domain.StreamNotification) {
			if n.Kind == domain.NotifyChunk {
				fmt.Fprint(out, n.Delta)
			}
		})
		fmt.Fprintln(out)
	} else {
		result = deps.operations.Process(ctx, request)
	}

	switch {
	case result.Cancelled:
		fmt.Fprintln(out, "Cancelled.")
		return nil
	case !result.Success:
		return result.Err
	}
	if _, err := deps.history.Record(request, result); err != nil {
		fmt.Fprintf(out, "warning: history not saved: %v\n", err)
	}

	switch {
	case result.ImageURL != nil:
		fmt.Fprintln(out, *result.ImageURL)
	case result.AudioFilePath != nil:
		fmt.Fprintln(out, *result.AudioFilePath)
	case !stream && result.Content != nil:
		fmt.Fprintln(out, *result.Content)
	}
	return nil
}

func newOperationsCommand(deps func() *container) *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List built-in operations and custom tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := deps().operations.ListOperations()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, op := range ops {
				keys := make([]string, 0, len(op.Options))
				for _, o := range op.Options {
					keys = append(keys, o.Key)
				}
				fmt.Fprintf(out, "%-38s %-28s %s\n", op.Type, op.Name, strings.Join(keys, ","))
			}
			return nil
		},
	}
}

func newModelsCommand(deps func() *container) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the provider's models",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := deps().operations.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			}
			return nil
		},
	}
}

func newTasksCommand(deps func() *container) *cobra.Command {
	tasks := &cobra.Command{
		Use:   "tasks",
		Short: "Export or import custom tasks",
	}
	tasks.AddCommand(
		&cobra.Command{
			Use:   "export [file]",
			Short: "Write custom tasks as JSON (stdout when no file)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := deps().tasks.Export()
				if err != nil {
					return err
				}
				if len(args) == 0 {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}
				return os.WriteFile(args[0], data, 0o644)
			},
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Merge custom tasks from a JSON file by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				count, err := deps().tasks.Import(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", count)
				return nil
			},
		},
	)
	return tasks
}

func newHistoryCommand(deps func() *container) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [query]",
		Short: "Show recent history, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := domain.HistoryQuery{Limit: limit}
			if len(args) == 1 {
				query.Search = args[0]
			}
			entries, total, err := deps().history.List(query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-18s %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.OperationType, oneLine(e.PromptText, 60))
			}
			fmt.Fprintf(out, "%d of %d entries\n", len(entries), total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "entries to show")
	return cmd
}

func oneLine(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > width {
		return string(r[:width-3]) + "..."
	}
	return s
}
