package entity

// AppSettings ajustes planos de la aplicación. Siempre se entrega completo:
// cualquier registro parcial persistido se combina sobre DefaultSettings.
type AppSettings struct {
	OfflineMode      bool   `json:"offlineMode"`
	DarkMode         bool   `json:"darkMode"`
	AutoSync         bool   `json:"autoSync"`
	Language         string `json:"language"`
	ScanSoundEnabled bool   `json:"scanSoundEnabled"`
	VibrationEnabled bool   `json:"vibrationEnabled"`
}

// DefaultSettings valores por defecto de los ajustes.
func DefaultSettings() AppSettings {
	return AppSettings{
		OfflineMode:      false,
		DarkMode:         false,
		AutoSync:         true,
		Language:         "pl",
		ScanSoundEnabled: true,
		VibrationEnabled: true,
	}
}
