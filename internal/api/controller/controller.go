package controller

import (
	"github.com/ougirez/constituency/internal/service/complaint"
)

type Controller struct {
	service *complaint.Service
}

func NewController(service *complaint.Service) *Controller {
	return &Controller{service: service}
}
