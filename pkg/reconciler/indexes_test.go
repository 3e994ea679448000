package reconciler_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidemap/guidemap/internal/store"
	"github.com/guidemap/guidemap/pkg/reconciler"
)

func seedEntry(t *testing.T, fs afero.Fs, path, title string) {
	t.Helper()
	content := "# " + title + "\n\nSomething to see.\n"
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestIndexerAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedEntry(t, fs, "repo/countries/Italy/Rome/Eat/old-town-cafe.md", "Old Town Cafe")
	seedEntry(t, fs, "repo/countries/Italy/Rome/See/colosseum.md", "Colosseum")
	seedEntry(t, fs, "repo/countries/France/Lyon/Eat/le-bouchon.md", "Le Bouchon")

	tree := store.New(fs, "repo")
	ix := reconciler.NewIndexer(tree)

	require.NoError(t, ix.All())
	require.NoError(t, tree.Commit())

	for _, path := range []string{
		"countries/README.md",
		"countries/Italy/README.md",
		"countries/Italy/Rome/README.md",
		"countries/France/README.md",
		"countries/France/Lyon/README.md",
	} {
		_, ok, err := tree.Read(path)
		require.NoError(t, err)
		assert.True(t, ok, "missing index %s", path)
	}

	root, _, err := tree.Read("countries/README.md")
	require.NoError(t, err)
	assert.Contains(t, string(root), "[France](France/README.md)")
	assert.Contains(t, string(root), "[Italy](Italy/README.md)")

	rome, _, err := tree.Read("countries/Italy/Rome/README.md")
	require.NoError(t, err)
	assert.Contains(t, string(rome), "[Old Town Cafe](Eat/old-town-cafe.md)")
	assert.Contains(t, string(rome), "[Colosseum](See/colosseum.md)")
}

func TestIndexerRegenerationIsFixedPoint(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedEntry(t, fs, "repo/countries/Italy/Rome/Eat/old-town-cafe.md", "Old Town Cafe")

	tree := store.New(fs, "repo")
	ix := reconciler.NewIndexer(tree)

	require.NoError(t, ix.All())
	require.NoError(t, tree.Commit())
	first, _, err := tree.Read("countries/Italy/Rome/README.md")
	require.NoError(t, err)

	require.NoError(t, ix.All())
	require.NoError(t, tree.Commit())
	second, _, err := tree.Read("countries/Italy/Rome/README.md")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestIndexerEmptyCity(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("repo/countries/Italy/Rome", 0o755))

	tree := store.New(fs, "repo")
	ix := reconciler.NewIndexer(tree)
	require.NoError(t, ix.City("Italy", "Rome"))
	require.NoError(t, tree.Commit())

	content, _, err := tree.Read("countries/Italy/Rome/README.md")
	require.NoError(t, err)
	assert.Contains(t, string(content), "No places added yet")
}
