package models

// AllModels returns every model that takes part in schema migration.
func AllModels() []any {
	return []any{
		&ArtistProfile{},
		&LabelProfile{},
		&Submission{},
		&Rating{},
		&PlayEvent{},
		&Notification{},
	}
}
