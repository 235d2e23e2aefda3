package loan

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Astemirdum/library-desk/desk/internal/gateway/rest"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"go.uber.org/zap"
)

const path = "/loan"

type Service struct {
	log  *zap.Logger
	rest *rest.Client
}

func NewService(log *zap.Logger, rc *rest.Client) *Service {
	return &Service{
		log:  log.Named("loan"),
		rest: rc,
	}
}

func (s *Service) List(ctx context.Context) ([]model.Loan, error) {
	return s.list(ctx, path)
}

func (s *Service) ListByClient(ctx context.Context, clientID int) ([]model.Loan, error) {
	return s.list(ctx, fmt.Sprintf("%s/client/%d", path, clientID))
}

func (s *Service) list(ctx context.Context, p string) ([]model.Loan, error) {
	var loans []model.Loan
	if err := s.rest.Do(ctx, http.MethodGet, p, nil, &loans); err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []model.Loan{}
	}
	return loans, nil
}

func (s *Service) Create(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	var loan model.Loan
	if err := s.rest.Do(ctx, http.MethodPost, path, req, &loan); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}
