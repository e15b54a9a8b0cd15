package qrcode

import (
	"testing"

	"blog/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, b []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(b), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, b[:4])
}

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "https://blog.example.com")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GeneratePostShareQR(t *testing.T) {
	cfg := &config.Config{}
	cfg.QRCode.Size = 128
	cfg.QRCode.ErrorCorrectionLevel = "M"
	cfg.QRCode.BaseURL = "https://blog.example.com"

	svc := NewQRCodeService(cfg)

	png, err := svc.GeneratePostShareQR(uuid.New())
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestQRCodeService_PostURL(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://blog.example.com/")
	postID := uuid.New()

	assert.Equal(t, "https://blog.example.com/posts/"+postID.String(), svc.postURL(postID))
}
