package services

import (
	"belanja/internal/models"
	"belanja/internal/repositories"
)

// DocumentService handles back-office documents and notes.
type DocumentService struct {
	documentRepo repositories.DocumentRepository
	noteRepo     repositories.NoteRepository
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo repositories.DocumentRepository, noteRepo repositories.NoteRepository) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		noteRepo:     noteRepo,
	}
}

func (s *DocumentService) GetDocuments() ([]models.Document, error) {
	return s.documentRepo.GetAll()
}

func (s *DocumentService) GetDocumentByID(id string) (*models.Document, error) {
	return s.documentRepo.GetByID(id)
}

func (s *DocumentService) CreateDocument(document *models.Document) error {
	return s.documentRepo.Create(document)
}

func (s *DocumentService) UpdateDocument(document *models.Document) error {
	return s.documentRepo.Update(document)
}

func (s *DocumentService) DeleteDocument(id string) error {
	return s.documentRepo.Delete(id)
}

func (s *DocumentService) GetNotes() ([]models.Note, error) {
	return s.noteRepo.GetAll()
}

func (s *DocumentService) GetNoteByID(id string) (*models.Note, error) {
	return s.noteRepo.GetByID(id)
}

func (s *DocumentService) CreateNote(note *models.Note) error {
	return s.noteRepo.Create(note)
}

func (s *DocumentService) UpdateNote(note *models.Note) error {
	return s.noteRepo.Update(note)
}

func (s *DocumentService) DeleteNote(id string) error {
	return s.noteRepo.Delete(id)
}
