package book

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Astemirdum/library-desk/desk/internal/gateway/rest"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"go.uber.org/zap"
)

const path = "/book"

type Service struct {
	log  *zap.Logger
	rest *rest.Client
}

func NewService(log *zap.Logger, rc *rest.Client) *Service {
	return &Service{
		log:  log.Named("book"),
		rest: rc,
	}
}

func (s *Service) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := s.rest.Do(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (s *Service) Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	var book model.Book
	if err := s.rest.Do(ctx, http.MethodPost, path, req, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.rest.Do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, nil)
}
