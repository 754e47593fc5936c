package scanner

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/ports"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

var _ ports.ScannerService = (*Simulated)(nil)

// Simulated adaptador simulado del puerto ScannerService: no hay binding de
// cámara en el servidor, así que el escaneo recibe el código digitado por el
// usuario y la captura envuelve una imagen ya codificada. En producción móvil
// este puerto lo implementa el binding nativo de la plataforma.
type Simulated struct {
	available bool
	log       *logger.Logger

	mu      sync.Mutex
	granted bool
}

// NewSimulated construye el adaptador. available refleja la configuración
// (un dispositivo sin cámara se simula con false).
func NewSimulated(available bool, log *logger.Logger) *Simulated {
	return &Simulated{available: available, log: log}
}

// CameraAvailable indica si la cámara simulada está disponible.
func (s *Simulated) CameraAvailable() bool {
	return s.available
}

// RequestPermission concede el permiso en la simulación salvo que no haya cámara.
func (s *Simulated) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available {
		return false, nil
	}
	s.granted = true
	return true, nil
}

// Capture valida la imagen recibida y la devuelve como data URL base64
// almacenable en el campo imageUrl del producto.
func (s *Simulated) Capture(ctx context.Context, req dto.CaptureRequest) (ports.CaptureResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.CaptureResult{}, err
	}
	if !s.available {
		return ports.CaptureResult{
			Success: false,
			Error:   "La cámara no está disponible en este dispositivo",
		}, nil
	}
	s.mu.Lock()
	granted := s.granted
	s.mu.Unlock()
	if !granted {
		return ports.CaptureResult{
			Success: false,
			Error:   "Sin permiso de cámara. Revisa los ajustes de la aplicación.",
		}, nil
	}

	payload := strings.TrimSpace(req.ImageBase64)
	if payload == "" {
		return ports.CaptureResult{Success: false, Error: "Captura cancelada"}, nil
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		s.log.Warn().Err(err).Msg("imagen capturada ilegible")
		return ports.CaptureResult{Success: false, Error: "No se pudo cargar la imagen"}, nil
	}

	mime := req.MimeType
	if mime == "" {
		mime = "image/jpeg"
	}
	return ports.CaptureResult{
		Success:   true,
		ImagePath: "data:" + mime + ";base64," + payload,
	}, nil
}

// Scan simula el escáner: normaliza a mayúsculas el código digitado;
// una entrada vacía equivale a cancelar el diálogo.
func (s *Simulated) Scan(ctx context.Context, input string) (ports.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ScanResult{}, err
	}
	code := strings.TrimSpace(input)
	if code == "" {
		return ports.ScanResult{Success: false, Error: "Escaneo cancelado"}, nil
	}
	return ports.ScanResult{
		Success: true,
		Code:    strings.ToUpper(code),
		Format:  "QR_CODE",
	}, nil
}
