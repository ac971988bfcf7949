package types

// Setting is a named configuration value stored in MySQL. Environment
// variables override these at load time.
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"type:text;not null"`
}
