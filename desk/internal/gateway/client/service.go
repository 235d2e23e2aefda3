package client

import (
	"context"
	"net/http"

	"github.com/Astemirdum/library-desk/desk/internal/gateway/rest"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"go.uber.org/zap"
)

const path = "/client"

type Service struct {
	log  *zap.Logger
	rest *rest.Client
}

func NewService(log *zap.Logger, rc *rest.Client) *Service {
	return &Service{
		log:  log.Named("client"),
		rest: rc,
	}
}

func (s *Service) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := s.rest.Do(ctx, http.MethodGet, path, nil, &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []model.Client{}
	}
	return clients, nil
}

func (s *Service) Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	var client model.Client
	if err := s.rest.Do(ctx, http.MethodPost, path, req, &client); err != nil {
		return model.Client{}, err
	}
	return client, nil
}
