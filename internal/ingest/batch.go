package ingest

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/edafy/ingest-cli/internal/model"
)

// Batch is everything one orchestration run commits: the survey and its
// lines, the per-file metadata rows, cross-linking tags, and the
// coordinate extraction configuration captured during QC.
type Batch struct {
	Survey model.SeismicSurvey `yaml:"survey"`
	Lines  []model.SeismicLine `yaml:"lines"`

	SeismicData  []model.SeismicData  `yaml:"seismic_data"`
	WellMetadata []model.WellMetadata `yaml:"well_metadata"`

	// Documents tagged against already-existing lines/wells rather than
	// entities created by this batch. Processed in a second pass.
	OtherSeismicData  []model.SeismicData  `yaml:"other_seismic_data"`
	OtherWellMetadata []model.WellMetadata `yaml:"other_well_metadata"`

	Tags []model.TagInstruction `yaml:"tags"`

	// CoordinateConfigs is keyed by position in SeismicData. A file
	// without an entry still gets a transform request with nil config
	// fields.
	CoordinateConfigs map[int]model.CoordinateConfig `yaml:"coordinate_configs"`
	CRS               model.CRS                      `yaml:"crs"`
}

// LoadBatch reads a batch manifest from a YAML file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "ingest: read manifest %s", path)
	}
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, eris.Wrapf(err, "ingest: parse manifest %s", path)
	}
	return &b, nil
}
