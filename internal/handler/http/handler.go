package http

import (
	"github.com/MKhiriev/go-agreement-keeper/internal/logger"
	"github.com/MKhiriev/go-agreement-keeper/internal/service"
	"github.com/MKhiriev/go-agreement-keeper/internal/utils"
)

// defaultMaxUploadSize bounds a single pinned file.
const defaultMaxUploadSize int64 = 32 << 20

type Handler struct {
	services *service.Services

	// hashKey enables the X-Hash check on uploads when non-empty.
	hashKey       string
	hasher        *utils.Hasher
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	var hasher *utils.Hasher
	if hashKey != "" {
		hasher = utils.NewHasher(hashKey)
	}

	logger.Info().Bool("upload_hashing", hasher != nil).Msg("http handler created")
	return &Handler{
		services:      services,
		hashKey:       hashKey,
		hasher:        hasher,
		maxUploadSize: defaultMaxUploadSize,
		logger:        logger,
	}
}
