package domain

// Language is per-tenant reference data seeded at provisioning time.
type Language struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:16;not null" json:"slug"`
}

func (Language) TableName() string { return "languages" }

// Config is a per-tenant key/value setting.
type Config struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Key   string `gorm:"uniqueIndex;size:191;not null" json:"key"`
	Value string `gorm:"size:512" json:"value"`
}

func (Config) TableName() string { return "configs" }
