package http

import (
	"github.com/gin-gonic/gin"

	"case-assistant/internal/inquiry"
	pkgLog "case-assistant/pkg/log"
)

// Handler exposes the inquiry domain over HTTP.
type Handler interface {
	ProcessInquiry(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc inquiry.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new inquiry HTTP handler.
func New(l pkgLog.Logger, uc inquiry.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
