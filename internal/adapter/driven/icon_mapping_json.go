package driven

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/alorle/ace-launcher/internal/icon"
)

// iconMappingDTO is the on-disk representation of an icon mapping entry.
type iconMappingDTO struct {
	Keywords []string `json:"keywords"`
	ImageURL string   `json:"imageUrl"`
}

// LoadIconTable reads the icon mapping file at path.
// A missing or corrupt file is logged and yields an empty table, which resolves
// every name to the placeholder icon.
func LoadIconTable(fsys afero.Fs, path string, logger *slog.Logger) *icon.Table {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if path == "" {
		logger.Warn("no icon mapping file configured, using placeholder icons")
		return icon.NewTable(nil)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		logger.Warn("failed to read icon mappings, using placeholder icons", "path", path, "error", err)
		return icon.NewTable(nil)
	}

	var dtos []iconMappingDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		logger.Warn("corrupt icon mappings, using placeholder icons", "path", path, "error", err)
		return icon.NewTable(nil)
	}

	mappings := make([]icon.Mapping, 0, len(dtos))
	for _, dto := range dtos {
		mappings = append(mappings, icon.Mapping{Keywords: dto.Keywords, IconRef: dto.ImageURL})
	}

	table := icon.NewTable(mappings)
	logger.Info("icon mappings loaded", "path", path, "entries", table.Len())
	return table
}
