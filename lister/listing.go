package lister

import (
	"fmt"
	"io"
	"strings"

	"github.com/spetersoncode/lsmodels"
)

// separatorWidth is the width of the line under the banner.
const separatorWidth = 80

// Listing is the result of listing one provider's models.
type Listing struct {
	Provider lsmodels.Provider
	Banner   string
	// Advisory, when set, is printed once between the banner and the models.
	Advisory string
	Models   []lsmodels.ModelRecord
}

// WriteTo renders the listing as plain text, one "Model:" line per record.
// A label equal to the id is not printed.
func (l *Listing) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	b.WriteString(l.Banner)
	b.WriteByte('\n')
	if l.Advisory != "" {
		b.WriteString(l.Advisory)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteByte('\n')

	for _, m := range l.Models {
		if label := m.Label(); label != "" {
			fmt.Fprintf(&b, "Model: %s (%s)\n", m.ID, label)
		} else {
			fmt.Fprintf(&b, "Model: %s\n", m.ID)
		}
		if len(m.Methods) > 0 {
			fmt.Fprintf(&b, "  Supported methods: %s\n", strings.Join(m.Methods, ", "))
		}
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
