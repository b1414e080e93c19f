package repositories

import (
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMDocumentRepository is a GORM implementation of DocumentRepository.
type GORMDocumentRepository struct {
	db *gorm.DB
}

// NewGORMDocumentRepository creates a new instance of GORMDocumentRepository.
func NewGORMDocumentRepository(db *gorm.DB) *GORMDocumentRepository {
	return &GORMDocumentRepository{db: db}
}

func (r *GORMDocumentRepository) GetAll() ([]models.Document, error) {
	var documents []models.Document
	if err := r.db.Order("created_at DESC").Find(&documents).Error; err != nil {
		return nil, fmt.Errorf("failed to get all documents: %w", err)
	}
	return documents, nil
}

func (r *GORMDocumentRepository) GetByID(id string) (*models.Document, error) {
	var document models.Document
	if err := r.db.First(&document, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("document with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get document by ID %s: %w", id, err)
	}
	return &document, nil
}

func (r *GORMDocumentRepository) Create(document *models.Document) error {
	if document.ID == "" {
		document.ID = uuid.New().String()
	}
	if err := r.db.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *GORMDocumentRepository) Update(document *models.Document) error {
	res := r.db.Save(document)
	if res.Error != nil {
		return fmt.Errorf("failed to update document: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("document with ID %s %w for update", document.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMDocumentRepository) Delete(id string) error {
	res := r.db.Delete(&models.Document{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete document: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("document with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// GORMNoteRepository is a GORM implementation of NoteRepository.
type GORMNoteRepository struct {
	db *gorm.DB
}

// NewGORMNoteRepository creates a new instance of GORMNoteRepository.
func NewGORMNoteRepository(db *gorm.DB) *GORMNoteRepository {
	return &GORMNoteRepository{db: db}
}

func (r *GORMNoteRepository) GetAll() ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all notes: %w", err)
	}
	return notes, nil
}

func (r *GORMNoteRepository) GetByID(id string) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("note with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get note by ID %s: %w", id, err)
	}
	return &note, nil
}

func (r *GORMNoteRepository) Create(note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	if err := r.db.Create(note).Error; err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *GORMNoteRepository) Update(note *models.Note) error {
	res := r.db.Save(note)
	if res.Error != nil {
		return fmt.Errorf("failed to update note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("note with ID %s %w for update", note.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMNoteRepository) Delete(id string) error {
	res := r.db.Delete(&models.Note{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete note: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("note with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}
