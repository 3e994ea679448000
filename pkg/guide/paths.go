package guide

import (
	"path"

	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Paths in the document tree always use forward slashes; the storage layer
// maps them onto the backing filesystem.

// Root returns the root directory of the place tree.
func Root() string {
	return constants.CountriesDir
}

// RootIndexPath returns the path of the root index document.
func RootIndexPath() string {
	return path.Join(constants.CountriesDir, constants.IndexFile)
}

// CountryDir returns the canonical directory for a country.
func CountryDir(country string) string {
	return path.Join(constants.CountriesDir, DirName(country))
}

// CountryIndexPath returns the path of a country's index document.
func CountryIndexPath(country string) string {
	return path.Join(CountryDir(country), constants.IndexFile)
}

// CityDir returns the canonical directory for a city.
func CityDir(country, city string) string {
	return path.Join(CountryDir(country), DirName(city))
}

// CityIndexPath returns the path of a city's index document.
func CityIndexPath(country, city string) string {
	return path.Join(CityDir(country, city), constants.IndexFile)
}

// CategoryDir returns the directory holding a city's entries for one
// category.
func CategoryDir(country, city string, category proposals.Category) string {
	return path.Join(CityDir(country, city), category.String())
}

// EntryPath returns the canonical path of an entry document:
// countries/{Country}/{City}/{Category}/{slug}.md
func EntryPath(country, city string, category proposals.Category, slug string) string {
	return path.Join(CategoryDir(country, city, category), slug+".md")
}
