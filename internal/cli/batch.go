package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/flyer/projects"
)

// batchResult is the outcome for one project.
type batchResult struct {
	ID       string
	Path     string
	Bytes    int
	Warnings int
	Err      error
}

func batchCmd(flags *rootFlags) *cobra.Command {
	var (
		templateID  string
		outDir      string
		concurrency int
	)

	c := &cobra.Command{
		Use:   "batch [project-id...]",
		Short: "Generate flyers for many projects concurrently",
		Long: `Generate one flyer per project from the configured project store.
Without arguments every project in the store is generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, flags.config, flags.debug)
			if err != nil {
				return err
			}
			defer a.close()

			store, closeStore, err := a.projectStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()
			if store == nil {
				return fmt.Errorf("batch requires a project store (set projects or database_url)")
			}

			ids := args
			if len(ids) == 0 {
				all, err := store.List(ctx)
				if err != nil {
					return err
				}
				for _, p := range all {
					ids = append(ids, p.ID)
				}
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", outDir, err)
			}

			results := make([]batchResult, len(ids))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(max(concurrency, 1))

			for i, id := range ids {
				g.Go(func() error {
					res := batchOne(gctx, a, store, templateID, outDir, id)
					results[i] = res
					if res.Err != nil {
						a.logger.Warn("project failed", zap.String("project", id), zap.Error(res.Err))
					}
					// Only cancellation stops the batch; per-project failures are reported.
					return gctx.Err()
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if failed := report(cmd.OutOrStdout(), results); failed > 0 {
				return fmt.Errorf("batch failed (%d of %d project(s))", failed, len(ids))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&templateID, "template", "t", "basic", "template id")
	c.Flags().StringVarP(&outDir, "out-dir", "o", ".", "output directory")
	c.Flags().IntVarP(&concurrency, "concurrency", "j", runtime.GOMAXPROCS(0), "maximum concurrent runs")
	return c
}

// report prints one line per result and returns the number of failures.
func report(w io.Writer, results []batchResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", r.ID, r.Err)
			continue
		}
		fmt.Fprintf(w, "OK   %s -> %s (%d bytes, %d warnings)\n", r.ID, r.Path, r.Bytes, r.Warnings)
	}
	return failed
}

func batchOne(ctx context.Context, a *app, store projects.Store, templateID, outDir, id string) batchResult {
	res := batchResult{ID: id}

	project, err := store.Get(ctx, id)
	if err != nil {
		res.Err = err
		return res
	}

	doc, err := a.gen.Generate(ctx, templateID, project)
	if err != nil {
		res.Err = err
		return res
	}

	res.Path = filepath.Join(outDir, filepath.Base(id)+".pdf")
	if err := os.WriteFile(res.Path, doc.Bytes, 0o644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", res.Path, err)
		return res
	}
	res.Bytes = doc.Size
	res.Warnings = len(doc.Warnings)
	return res
}
