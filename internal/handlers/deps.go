package handlers

import (
	"log/slog"

	"github.com/paydeck/transactions-console/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
	SchoolSvc       SchoolService
	LookupSvc       LookupService
}
