package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/guidemap/guidemap/internal/config"
	"github.com/guidemap/guidemap/internal/geocode"
	"github.com/guidemap/guidemap/internal/store"
	"github.com/guidemap/guidemap/internal/tracker"
	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/logging"
	"github.com/guidemap/guidemap/pkg/reconciler"
)

var (
	processSnapshot  string
	processTree      string
	processThreshold int
	processMode      string
	processDryRun    bool
)

// processCmd runs one reconciliation pass.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run one reconciliation pass over pending proposals",
	Long: `Process runs one complete reconciliation pass: it snapshots the open
proposals, selects the moderator-approved ones that clear the vote
threshold, validates each city against the geocoding service, writes entry
documents into the tree, regenerates the affected indexes, and reports each
outcome back to the proposal's record.

The pass is idempotent: re-running it against an unchanged snapshot changes
nothing, and overlapping passes converge on a single entry per proposal.`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processSnapshot, "snapshot", "", "path to the proposal snapshot file (required)")
	processCmd.Flags().StringVar(&processTree, "tree", ".", "root of the directory tree")
	processCmd.Flags().IntVar(&processThreshold, "threshold", constants.VoteThreshold, "net vote threshold for acceptance")
	processCmd.Flags().StringVar(&processMode, "mode", string(reconciler.ModeManual), "trigger mode: scheduled, label, or manual")
	processCmd.Flags().BoolVar(&processDryRun, "dry-run", false, "decide everything, write nothing")
	_ = processCmd.MarkFlagRequired("snapshot")
}

func runProcess(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	fs := afero.NewOsFs()

	source, err := tracker.LoadSnapshot(fs, processSnapshot)
	if err != nil {
		return err
	}

	resolver := geocode.NewCache(newGeocodeClient())
	geocachePath := filepath.Join(processTree, constants.GeocacheFile)
	if err := resolver.Load(fs, geocachePath); err != nil {
		logging.Warn().Err(err).Msg("Could not load geocode cache")
	}

	tree := store.New(fs, processTree)

	rec, err := reconciler.New(source, resolver, tree,
		reconciler.WithThreshold(processThreshold),
		reconciler.WithMode(reconciler.Mode(processMode)),
		reconciler.WithDryRun(processDryRun),
	)
	if err != nil {
		return err
	}

	result, err := rec.Run(ctx)
	if err != nil {
		return err
	}

	if !processDryRun {
		if err := source.Save(ctx); err != nil {
			return err
		}
		if err := resolver.Save(fs, geocachePath); err != nil {
			logging.Warn().Err(err).Msg("Could not save geocode cache")
		}
	}

	fmt.Println(result.Summary())

	if !result.IsSuccess() {
		return errors.New("pass completed with errors")
	}
	return nil
}

// newGeocodeClient builds the Nominatim client from configuration.
func newGeocodeClient() *geocode.Client {
	return geocode.NewClient(
		geocode.WithBaseURL(config.GetStringDefault("NOMINATIM_URL", constants.DefaultNominatimURL)),
		geocode.WithUserAgent(config.GetStringDefault("GEOCODER_USER_AGENT", constants.UserAgent)),
	)
}
