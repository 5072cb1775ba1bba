package components

import (
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/arcum42/sagemodels/internal/domain"
	"github.com/arcum42/sagemodels/internal/i18n"
)

// FormatCount formats an integer with comma separators (e.g. 1,234,567).
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatSize formats a byte count (e.g. "2.1 GB"), or "-" when unknown.
func FormatSize(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}

// FormatLastUsed formats a last-use time relative to now.
func FormatLastUsed(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return i18n.T("never_used")
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}

// FormatType returns the category label, "unknown" when empty.
func FormatType(t string) string {
	if t == "" {
		return i18n.T("unknown_type")
	}
	return t
}

// ShortPath keeps the last keep segments of a normalized path.
func ShortPath(p string, keep int) string {
	p = domain.NormalizePath(p)
	parts := strings.Split(p, "/")
	if keep <= 0 || len(parts) <= keep {
		return p
	}
	return "…/" + path.Join(parts[len(parts)-keep:]...)
}
