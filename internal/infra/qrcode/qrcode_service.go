package qrcode

import (
	"strings"

	"blog/config"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const postsPathSegment = "/posts/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePostShareQR encodes <baseURL>/posts/<id> as a PNG.
func (s *qrcodeService) GeneratePostShareQR(postID uuid.UUID) ([]byte, error) {
	png, err := qrcode.Encode(s.postURL(postID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode post share QR code")
	}

	return png, nil
}

func (s *qrcodeService) postURL(postID uuid.UUID) string {
	return s.baseURL + postsPathSegment + postID.String()
}
