package repositories

import "belanja/internal/models"

// DocumentRepository defines the interface for document data access.
type DocumentRepository interface {
	GetAll() ([]models.Document, error)
	GetByID(id string) (*models.Document, error)
	Create(document *models.Document) error
	Update(document *models.Document) error
	Delete(id string) error
}

// NoteRepository defines the interface for note data access.
type NoteRepository interface {
	GetAll() ([]models.Note, error)
	GetByID(id string) (*models.Note, error)
	Create(note *models.Note) error
	Update(note *models.Note) error
	Delete(id string) error
}
