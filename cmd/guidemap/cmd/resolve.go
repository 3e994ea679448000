package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guidemap/guidemap/internal/geocode"
)

var resolveCountry string

// resolveCmd checks a city name against the geocoding service.
var resolveCmd = &cobra.Command{
	Use:   "resolve <city>",
	Short: "Check a city name against the geocoding service",
	Long: `Resolve runs the city validator once for a name, printing the canonical
location or the failure classification. Useful for checking why a proposal
failed validation.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&resolveCountry, "country", "", "country hint")
}

func runResolve(cmd *cobra.Command, args []string) error {
	result, err := newGeocodeClient().Resolve(cmd.Context(), resolveCountry, args[0])
	if err != nil {
		return err
	}

	switch result.Status {
	case geocode.StatusResolved:
		loc := result.Location
		fmt.Printf("Resolved: %s, %s (%.5f, %.5f)\n", loc.City, loc.Country, loc.Lat, loc.Lon)
	case geocode.StatusAmbiguous:
		fmt.Println("Ambiguous: several equally plausible matches")
	case geocode.StatusNotFound:
		fmt.Println("Not found")
	}
	return nil
}
