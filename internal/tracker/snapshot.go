package tracker

import (
	"context"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Snapshot is a Source backed by a YAML file of proposals. It is how a pass
// runs against an exported batch of proposals: the file is read once at
// load, all write-backs accumulate in memory, and Save persists the updated
// records.
type Snapshot struct {
	*Memory
	fs   afero.Fs
	path string
}

// snapshotFile is the on-disk shape of a proposal snapshot.
type snapshotFile struct {
	Proposals []proposals.Proposal `yaml:"proposals"`
}

// LoadSnapshot reads a proposal snapshot file. Proposals with a structured
// body get their flat fields filled from the parsed body.
func LoadSnapshot(fs afero.Fs, path string) (*Snapshot, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	for i := range file.Proposals {
		p := &file.Proposals[i]
		if p.Body != "" {
			proposals.ParseBody(p.Body).Apply(p)
		}
	}

	return &Snapshot{
		Memory: NewMemory(file.Proposals...),
		fs:     fs,
		path:   path,
	}, nil
}

// Save writes the current proposal records back to the snapshot file.
func (s *Snapshot) Save(_ context.Context) error {
	data, err := yaml.Marshal(snapshotFile{Proposals: s.All()})
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, s.path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}
