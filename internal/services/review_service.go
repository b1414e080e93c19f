package services

import (
	"fmt"

	"belanja/internal/models"
	"belanja/internal/repositories"
)

// ReviewService handles business logic for product reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// GetProductReviews retrieves all reviews for a product with the reviewer
// preloaded.
func (s *ReviewService) GetProductReviews(productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProduct(productID)
}

// CreateReview creates a review, enforcing one review per user per product
// and that the product exists.
func (s *ReviewService) CreateReview(userID string, review *models.Review) error {
	if _, err := s.productRepo.GetByID(review.ProductID); err != nil {
		return err
	}
	if existing, err := s.reviewRepo.GetByUserAndProduct(userID, review.ProductID); err == nil && existing != nil {
		return fmt.Errorf("%w: user %s already reviewed product %s", ErrAlreadyExists, userID, review.ProductID)
	}

	review.UserID = userID
	return s.reviewRepo.Create(review)
}

// UpdateReview updates the rating and comment of the user's own review.
func (s *ReviewService) UpdateReview(userID, reviewID string, rating int, comment string) (*models.Review, error) {
	review, err := s.ownedReview(userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview deletes the user's own review.
func (s *ReviewService) DeleteReview(userID, reviewID string) error {
	if _, err := s.ownedReview(userID, reviewID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(reviewID)
}

func (s *ReviewService) ownedReview(userID, reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, fmt.Errorf("%w: review %s", ErrReviewOwnership, reviewID)
	}
	return review, nil
}
