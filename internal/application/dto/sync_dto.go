package dto

import "time"

// SyncStatusResponse estado de sincronización y conectividad.
type SyncStatusResponse struct {
	LastSync  *time.Time `json:"lastSync"`
	Connected bool       `json:"connected"`
	HasData   bool       `json:"hasData"`
}

// ScanRequest entrada del escaneo simulado: el código que el usuario
// digita en el diálogo de simulación.
type ScanRequest struct {
	Code string `json:"code"`
}

// CaptureRequest entrada de la captura simulada de cámara/galería.
type CaptureRequest struct {
	// ImageBase64 contenido de la imagen codificado en base64 (sin prefijo data URL).
	ImageBase64 string `json:"imageBase64" validate:"required"`
	MimeType    string `json:"mimeType"`
}
