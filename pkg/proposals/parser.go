package proposals

import (
	"strings"
)

// Fields holds the values extracted from a proposal's structured intake body.
// The intake form renders each field as a "### Header" followed by the
// submitted value on the following lines.
type Fields struct {
	Title       string
	City        string
	Category    string
	Description string
	Address     string
	Website     string
}

// fieldMap maps the intake form's headers (lowercased) to field keys.
var fieldMap = map[string]string{
	"place name":         "title",
	"city":               "city",
	"category":           "category",
	"description":        "description",
	"address (optional)": "address",
	"address":            "address",
	"website (optional)": "website",
	"website":            "website",
}

// noResponse is the placeholder the intake form emits for an empty optional
// field.
const noResponse = "_No response_"

// ParseBody parses a structured intake body into its fields. Unknown headers
// are ignored; multi-line values are preserved with single newlines.
func ParseBody(body string) Fields {
	values := map[string]string{}

	var currentField string
	var currentValue []string

	flush := func() {
		if currentField != "" {
			values[currentField] = strings.TrimSpace(strings.Join(currentValue, "\n"))
		}
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)

		if header, ok := strings.CutPrefix(line, "### "); ok {
			flush()
			currentField = fieldMap[strings.ToLower(strings.TrimSpace(header))]
			currentValue = nil
			continue
		}

		if currentField != "" && line != "" && !strings.HasPrefix(line, noResponse) {
			currentValue = append(currentValue, line)
		}
	}
	flush()

	return Fields{
		Title:       values["title"],
		City:        values["city"],
		Category:    values["category"],
		Description: values["description"],
		Address:     values["address"],
		Website:     values["website"],
	}
}

// Missing returns the names of required fields that are absent, in a stable
// order. Address and website are optional.
func (f Fields) Missing() []string {
	var missing []string
	if f.Title == "" {
		missing = append(missing, "place name")
	}
	if f.City == "" {
		missing = append(missing, "city")
	}
	if f.Category == "" {
		missing = append(missing, "category")
	}
	if f.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}

// Apply fills a proposal's flat fields from its parsed body. Only non-empty
// parsed values overwrite; the category is normalized if it parses.
func (f Fields) Apply(p *Proposal) {
	if f.Title != "" {
		p.Title = f.Title
	}
	if f.City != "" {
		p.City = f.City
	}
	if f.Description != "" {
		p.Description = f.Description
	}
	if f.Address != "" {
		p.Address = f.Address
	}
	if f.Website != "" {
		p.Website = f.Website
	}
	if f.Category != "" {
		if c, err := ParseCategory(f.Category); err == nil {
			p.Category = c
		} else {
			p.Category = Category(f.Category)
		}
	}
}
