package cmd

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/c9s/bstree/pkg/bst"
	"github.com/c9s/bstree/pkg/metrics"
	"github.com/c9s/bstree/pkg/util"
)

func init() {
	VerifyCmd.Flags().Int("trials", 1000, "number of random trees to check")
	VerifyCmd.Flags().Int("size", 200, "maximum number of values per tree")
	VerifyCmd.Flags().Int("domain", 100, "values are drawn from [-domain/2, domain/2)")
	VerifyCmd.Flags().Int("workers", 4, "number of trials checked in parallel")
	VerifyCmd.Flags().Int64("seed", 0, "random seed, 0 picks one from the clock")
	VerifyCmd.Flags().Bool("no-progress", false, "hide the progress bar")
	RootCmd.AddCommand(VerifyCmd)
}

// VerifyCmd checks that the iterative and recursive variants agree on random
// insertion sequences. Each trial owns its trees, nothing is shared between workers.
var VerifyCmd = &cobra.Command{
	Use:          "verify",
	Short:        "compare iterative and recursive variants on random trees",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		trials, err := flags.GetInt("trials")
		if err != nil {
			return err
		}

		size, err := flags.GetInt("size")
		if err != nil {
			return err
		}

		domain, err := flags.GetInt("domain")
		if err != nil {
			return err
		}

		workers, err := flags.GetInt("workers")
		if err != nil {
			return err
		}

		seed, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}

		noProgress, err := flags.GetBool("no-progress")
		if err != nil {
			return err
		}

		if trials <= 0 || size < 0 || domain <= 0 || workers <= 0 {
			return errors.New("trials, domain and workers must be positive, size must not be negative")
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		logger := log.WithField("seed", seed)
		logger.Infof("verifying %d trials with up to %d values", trials, size)

		bar := pb.Full.New(trials)
		bar.SetWriter(cmd.ErrOrStderr())
		if !noProgress {
			bar.Start()
		}

		mismatchLogger := util.NewWarnFirstLogger(5, time.Minute, logger)

		var mismatches int64
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(workers)
		for i := 0; i < trials; i++ {
			trialSeed := seed + int64(i)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				defer bar.Increment()

				r := rand.New(rand.NewSource(trialSeed))
				values := randomValues(r, r.Intn(size+1), domain)
				if err := compareVariants(values, domain); err != nil {
					atomic.AddInt64(&mismatches, 1)
					mismatchLogger.WarnOrError(err, "trial seed %d: variants disagree for %v", trialSeed, values)
				}

				return nil
			})
		}

		err = g.Wait()
		if !noProgress {
			bar.Finish()
		}

		if err != nil {
			return err
		}

		if n := atomic.LoadInt64(&mismatches); n > 0 {
			return errors.Errorf("%d of %d trials disagree (seed %d, %d reported as errors)", n, trials, seed, mismatchLogger.Escalated())
		}

		logger.Infof("all %d trials agree", trials)
		return nil
	},
}

func randomValues(r *rand.Rand, n, domain int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(domain) - domain/2
	}
	return values
}

// compareVariants builds the tree with both insertion variants and checks
// that every query and traversal agrees between them.
func compareVariants(values []int, domain int) (err error) {
	iter := bst.FromValues(values...)
	rec := bst.FromValuesRecursive(values...)
	metrics.AddOperations("insert", metrics.VariantIterative, len(values))
	metrics.AddOperations("insert", metrics.VariantRecursive, len(values))

	if !iter.Equal(rec) {
		err = multierr.Append(err, errors.New("insertion variants built different trees"))
	}

	err = multierr.Append(err, iter.Validate())

	min, minOk := iter.Min()
	rmin, rminOk := iter.MinRecursive()
	if min != rmin || minOk != rminOk {
		err = multierr.Append(err, errors.Errorf("min: iterative (%d, %v) recursive (%d, %v)", min, minOk, rmin, rminOk))
	}

	max, maxOk := iter.Max()
	rmax, rmaxOk := iter.MaxRecursive()
	if max != rmax || maxOk != rmaxOk {
		err = multierr.Append(err, errors.Errorf("max: iterative (%d, %v) recursive (%d, %v)", max, maxOk, rmax, rmaxOk))
	}

	rg, rgOk := iter.Range()
	rrg, rrgOk := iter.RangeRecursive()
	if rg != rrg || rgOk != rrgOk {
		err = multierr.Append(err, errors.Errorf("range: iterative (%d, %v) recursive (%d, %v)", rg, rgOk, rrg, rrgOk))
	}

	for probe := -domain/2 - 1; probe <= domain/2; probe++ {
		if iter.Contains(probe) != iter.ContainsRecursive(probe) {
			err = multierr.Append(err, errors.Errorf("contains(%d) differs", probe))
		}
	}

	if !equalInts(iter.Preorder(), bst.PreorderIterative(iter.Root())) {
		err = multierr.Append(err, errors.New("preorder differs from the stack based traversal"))
	}

	if !equalInts(iter.Inorder(), bst.InorderIterative(iter.Root())) {
		err = multierr.Append(err, errors.New("inorder differs from the stack based traversal"))
	}

	if !equalInts(iter.Postorder(), bst.PostorderIterative(iter.Root())) {
		err = multierr.Append(err, errors.New("postorder differs from the stack based traversal"))
	}

	return err
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
