package models

// SchemaVersion is a single-row counter recording the last applied
// migration step.
type SchemaVersion struct {
    Version int `gorm:"not null"`
}

func (SchemaVersion) TableName() string { return "schema_version" }
