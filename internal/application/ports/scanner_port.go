package ports

import (
	"context"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
)

// CaptureResult resultado uniforme de una captura de cámara o galería:
// o bien una ruta almacenable (archivo o data URL base64), o una razón
// de fallo legible para el usuario. Nunca ambos.
type CaptureResult struct {
	Success   bool   `json:"success"`
	ImagePath string `json:"imagePath,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ScanResult resultado uniforme de un escaneo de código de barras/QR.
type ScanResult struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Format  string `json:"format,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ScannerService define el puerto de salida hacia la plataforma de
// cámara/galería/escáner. El núcleo nunca depende de cómo se implementa,
// solo de estas formas de resultado (DIP). Cualquier adaptador (simulado,
// binding nativo, mock) debe implementar esta interfaz.
type ScannerService interface {
	// CameraAvailable indica si hay cámara utilizable; sin efectos secundarios.
	CameraAvailable() bool

	// RequestPermission solicita permiso de cámara; resultado booleano asíncrono.
	RequestPermission(ctx context.Context) (bool, error)

	// Capture toma o selecciona una imagen y devuelve una ruta almacenable
	// o una razón de fallo legible.
	Capture(ctx context.Context, req dto.CaptureRequest) (CaptureResult, error)

	// Scan decodifica un código, o informa cancelación/fallo.
	Scan(ctx context.Context, input string) (ScanResult, error)
}
