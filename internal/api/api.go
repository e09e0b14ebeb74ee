package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/constituency/internal/api/controller"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
	"github.com/ougirez/constituency/internal/service/complaint"
)

type APIService struct {
	router           *echo.Echo
	complaintService *complaint.Service
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	logger.Infof(context.Background(), "listening on %s", addr)
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(complaintService *complaint.Service, corsOrigins []string) *APIService {
	svc := &APIService{router: echo.New(), complaintService: complaintService}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.ERROR)

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(requestIDMiddleware())
	svc.router.Use(requestLoggerMiddleware())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  corsOrigins,
		AllowMethods:  []string{echo.GET, echo.POST},
		AllowHeaders:  []string{echo.HeaderContentType, constants.HeaderRequestID},
		ExposeHeaders: []string{constants.HeaderRequestID},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.complaintService)

	api.GET("/health", cntrl.Health)

	api.GET("/search", cntrl.Search)
	api.POST("/search", cntrl.Search)

	pincodes := api.Group("/pincodes")
	pincodes.GET("/:pincode/options", cntrl.GetSeatOptions)

	complaints := api.Group("/complaints")
	complaints.POST("", cntrl.FileComplaint)
	complaints.GET("/:id", cntrl.GetComplaintStatus)

	api.GET("/stats", cntrl.GetStats)

	return svc
}
