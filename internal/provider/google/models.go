package google

import (
	"slices"

	"github.com/spetersoncode/lsmodels"
	"google.golang.org/genai"
)

// ConvertModel converts a genai model into a ModelRecord.
// The name is kept as returned, including its "models/" or
// "publishers/google/models/" prefix.
func ConvertModel(m *genai.Model) lsmodels.ModelRecord {
	return lsmodels.ModelRecord{
		ID:          m.Name,
		DisplayName: m.DisplayName,
		Methods:     slices.Clone(m.SupportedActions),
	}
}
