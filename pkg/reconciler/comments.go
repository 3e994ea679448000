package reconciler

import (
	"fmt"
	"strings"

	"github.com/guidemap/guidemap/internal/geocode"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Closing comment texts written back to a proposal's tracking record. Only
// terminal outcomes produce a comment; deferrals are silent and retried on
// the next pass.

// Failure reasons recorded alongside the validation-failed label.
const (
	reasonNotFound      = "city not found"
	reasonAmbiguous     = "ambiguous city"
	reasonLookupGaveUp  = "city lookup unavailable"
	reasonMissingFields = "missing required fields"
)

func acceptedComment(p *proposals.Proposal, loc *geocode.Location, net int) string {
	return fmt.Sprintf(
		"✅ **Success!**\n\n"+
			"**%s** has been added to the guide!\n\n"+
			"📍 Location: %s, %s\n"+
			"📁 Category: %s\n"+
			"👍 Votes: %d\n\n"+
			"Thank you for your contribution! 🎉",
		p.Title, loc.City, loc.Country, p.Category, net)
}

func notFoundComment(p *proposals.Proposal) string {
	return fmt.Sprintf(
		"❌ **Validation Failed**\n\n"+
			"Could not verify the city: **%s**\n\n"+
			"Please check the spelling and try again.",
		p.City)
}

func ambiguousComment(p *proposals.Proposal) string {
	return fmt.Sprintf(
		"❌ **Validation Failed**\n\n"+
			"The city **%s** matched several places and could not be narrowed "+
			"down to one. Please add a country or use a more specific name.",
		p.City)
}

func lookupGaveUpComment(p *proposals.Proposal, attempts int) string {
	return fmt.Sprintf(
		"❌ **Validation Failed**\n\n"+
			"The location service could not be reached after %d attempts to "+
			"verify **%s**. Please resubmit later.",
		attempts, p.City)
}

func missingFieldsComment(missing []string) string {
	return fmt.Sprintf("❌ Missing required fields: %s", strings.Join(missing, ", "))
}
