package service

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/model"
)

const exportNote = "Security Note: Store this password securely and do not share it."

// ExportService renders passwords as plain-text files for download.
type ExportService struct {
	now func() time.Time
}

// NewExportService creates a new ExportService using the wall clock.
func NewExportService() *ExportService {
	return &ExportService{now: time.Now}
}

// Export builds the text file for req.Password.
func (s *ExportService) Export(req model.ExportRequest) (model.Export, error) {
	if req.Password == "" {
		return model.Export{}, ErrPasswordRequired
	}

	ts := s.now().UTC()
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(ts.Format("2006-01-02T15:04:05.000Z07:00"))

	var b strings.Builder
	fmt.Fprintf(&b, "Generated Password: %s\n\n", req.Password)
	fmt.Fprintf(&b, "Generated on: %s\n", ts.Format(time.RFC1123))
	fmt.Fprintf(&b, "Length: %d characters\n\n", utf8.RuneCountInString(req.Password))
	b.WriteString(exportNote)

	return model.Export{
		Filename: "password-" + stamp + ".txt",
		Content:  b.String(),
	}, nil
}
