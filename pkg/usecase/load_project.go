package usecase

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/gitminer/pkg/domain/model"
	"github.com/m-mizutani/gitminer/pkg/domain/types"
	"github.com/m-mizutani/gitminer/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)

// LoadProject decodes a project document as delivered by the miner.
func LoadProject(ctx context.Context, r io.Reader, format DocumentFormat) (*model.Project, error) {
	var project model.Project

	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&project); err != nil {
			return nil, goerr.Wrap(err, "failed to decode project JSON")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&project); err != nil {
			return nil, goerr.Wrap(err, "failed to decode project YAML")
		}
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported document format", goerr.V("format", format))
	}

	return &project, nil
}

// LoadProjectFromFile picks the format from the file extension: .json,
// .yaml or .yml.
func LoadProjectFromFile(ctx context.Context, filePath string) (*model.Project, error) {
	var format DocumentFormat
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported project file extension", goerr.V("path", filePath))
	}

	fd, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open project file", goerr.V("path", filePath))
	}
	defer safe.Close(fd)

	return LoadProject(ctx, fd, format)
}
