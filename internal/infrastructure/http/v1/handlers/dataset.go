package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"isoref/internal/infrastructure/snapshot"
)

// DatasetHandler serves the full dataset snapshot. Both encodings are
// prepared once; the catalogue never changes while the process runs.
type DatasetHandler struct {
	version string
	plain   []byte
	zstd    []byte
}

// NewDatasetHandler encodes s with codec in both encodings.
func NewDatasetHandler(s *snapshot.Snapshot, codec *snapshot.Codec) (*DatasetHandler, error) {
	plain, err := codec.Encode(s, snapshot.CompressionNone)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Encode(s, snapshot.CompressionZstd)
	if err != nil {
		return nil, err
	}
	return &DatasetHandler{version: s.Version, plain: plain, zstd: compressed}, nil
}

// Get returns the snapshot, zstd-encoded when the client accepts it.
// GET /dataset
func (h *DatasetHandler) Get(c *gin.Context) {
	c.Header("Vary", "Accept-Encoding")
	c.Header("ETag", fmt.Sprintf("%q", h.version))

	if strings.Contains(c.GetHeader("Accept-Encoding"), "zstd") {
		c.Header("Content-Encoding", "zstd")
		c.Data(http.StatusOK, "application/json", h.zstd)
		return
	}
	c.Data(http.StatusOK, "application/json", h.plain)
}
