package cli

import (
	"fmt"
	"os"

	"github.com/phrazzld/readme-api/internal/task"
	"github.com/spf13/cobra"
)

func newBatchCmd(root *rootOptions) *cobra.Command {
	var (
		outDir   string
		workers  int
		noGemini bool
	)

	cmd := &cobra.Command{
		Use:   "batch --out-dir DIR FILE...",
		Short: "Generate a README for each description file",
		Long: `Generate one README per description file, running several generations at
once. "docs/api.txt" is written to "<out-dir>/api.md". Files whose generation
fails are reported and the command exits non-zero after the others finish.
Inputs that would share an output file are rejected before any work starts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := outputPaths(outDir, args)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", outDir, err)
			}

			c, err := buildComponents(cmd, root)
			if err != nil {
				return err
			}

			queue := task.NewTaskQueue(len(args), c.Logger)
			tasks := make([]*task.ReadmeTask, 0, len(args))
			for i, path := range args {
				t := task.NewReadmeTask(c.ReadmeService, path, outputs[i], !noGemini)
				if err := queue.Enqueue(t); err != nil {
					return err
				}
				tasks = append(tasks, t)
			}
			queue.Close()

			pool := task.NewWorkerPool(cmd.Context(), queue, task.WorkerPoolConfig{WorkerCount: workers}, c.Logger)
			pool.SetErrorHandler(func(t task.Task, err error) {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			})
			pool.Start()
			pool.Wait()

			failed := 0
			out := cmd.OutOrStdout()
			for _, t := range tasks {
				result := t.Result()
				if t.Status() != task.TaskStatusCompleted || result == nil {
					failed++
					continue
				}
				fmt.Fprintf(out, "%s -> %s (%s)\n", t.InputPath, t.OutputPath, result.Source)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d descriptions failed", failed, len(tasks))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "directory to write READMEs into")
	cmd.Flags().IntVarP(&workers, "workers", "w", task.DefaultWorkerPoolConfig().WorkerCount, "number of concurrent generations")
	cmd.Flags().BoolVar(&noGemini, "no-gemini", false, "use the local template only")

	return cmd
}

// outputPaths maps each input to its README path in dir and rejects inputs
// that would write the same file.
func outputPaths(dir string, inputs []string) ([]string, error) {
	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := task.OutputPathFor(dir, in)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}
	return outputs, nil
}
