package catalogstore

import (
	"time"

	"github.com/danielpatrickdp/evalfield/internal/catalog"
)

// #region catalog-record
// CatalogRecord is a persisted catalog together with its store metadata.
type CatalogRecord struct {
	ID        string
	Name      string
	List      *catalog.ElementList
	CreatedAt time.Time
}

// #endregion catalog-record
