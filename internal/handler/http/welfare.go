package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
	"github.com/cmlabs-hris/payroll-engine/internal/handler/http/response"
)

type WelfareHandler interface {
	ListProviders(w http.ResponseWriter, r *http.Request)
}

type welfareHandlerImpl struct {
	welfareService welfare.WelfareService
}

func NewWelfareHandler(welfareService welfare.WelfareService) WelfareHandler {
	return &welfareHandlerImpl{welfareService: welfareService}
}

func (h *welfareHandlerImpl) ListProviders(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.welfareService.Providers())
}
