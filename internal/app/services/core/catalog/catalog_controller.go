package catalog

import (
	"context"
	"net/http"
	"time"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CatalogController struct {
	CatalogUsecase    CatalogUsecase
	Log               *zap.Logger
	MaxUploadSizeInMB int
}

func NewCatalogController(catalogUsecase CatalogUsecase, logger *zap.Logger, maxUploadSizeInMB int) *CatalogController {
	return &CatalogController{
		CatalogUsecase:    catalogUsecase,
		Log:               logger,
		MaxUploadSizeInMB: maxUploadSizeInMB,
	}
}

func (ctrl *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, err := ctrl.CatalogUsecase.ListServices(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServicesFetchSuccessMessage, services)
}

func (ctrl *CatalogController) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "service_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	service, err := ctrl.CatalogUsecase.GetServiceByID(ctx, serviceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServicesFetchSuccessMessage, service)
}

func (ctrl *CatalogController) CreateService(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateService)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateServiceRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	service, err := ctrl.CatalogUsecase.CreateService(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ServiceCreateSuccessMessage, service)
}

func (ctrl *CatalogController) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "service_id")

	request := new(requests.UpdateService)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpdateServiceRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	service, err := ctrl.CatalogUsecase.UpdateService(ctx, serviceID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceUpdateSuccessMessage, service)
}

func (ctrl *CatalogController) UploadServiceImage(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "service_id")

	maxUploadSize := int64(ctrl.MaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	service, err := ctrl.CatalogUsecase.UploadServiceImage(
		ctx,
		serviceID,
		header.Filename,
		header.Header.Get(constvars.HeaderContentType),
		file,
		header.Size,
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceImageSuccessMessage, service)
}
