package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders shareable QR codes.
type QRCodeService interface {
	// GeneratePostShareQR returns a PNG encoding the public URL of a post.
	GeneratePostShareQR(postID uuid.UUID) ([]byte, error)
}
