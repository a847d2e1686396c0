package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/medicine"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/order"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	search     *medicine.SearchMedicines
	create     *order.CreateOrders
	list       *order.ListOrders
	pharmacies directory.Pharmacies
}

func NewOrderHandler(
	search *medicine.SearchMedicines,
	create *order.CreateOrders,
	list *order.ListOrders,
	pharmacies directory.Pharmacies,
) *OrderHandler {
	return &OrderHandler{
		search:     search,
		create:     create,
		list:       list,
		pharmacies: pharmacies,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderMedicineRequest struct {
	MedID    string         `json:"med_id" binding:"required"`
	Quantity int            `json:"quantity" binding:"required,gte=1"`
	Price    *float64       `json:"price" binding:"required,gte=0"`
	Timings  models.Timings `json:"timings"`
}

type CreateOrderRequest struct {
	AppointmentID string                 `json:"appointment_id" binding:"required"`
	PatientID     string                 `json:"patient_id" binding:"required"`
	DoctorID      string                 `json:"doctor_id" binding:"required"`
	PharmaID      string                 `json:"pharma_id" binding:"required"`
	Medicines     []OrderMedicineRequest `json:"medicines" binding:"required,min=1,dive"`
}

type GetOrdersRequest struct {
	DoctorID      string `form:"doctor_id"`
	PatientID     string `form:"patient_id"`
	PharmaID      string `form:"pharma_id"`
	Type          string `form:"type" binding:"omitempty,oneof=doctor patient pharma"`
	PatientSearch string `form:"patientSearch"`
}

type PharmacySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ======================================================
// MEDICINES / PHARMACIES
// ======================================================

func (h *OrderHandler) SearchMedicines(c *gin.Context) {
	meds, err := h.search.Execute(c.Request.Context(), c.Query("name"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Medicines fetched", meds)
}

func (h *OrderHandler) GetPharmacy(c *gin.Context) {
	list, err := h.pharmacies.ListPharmacies(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]PharmacySummary, 0, len(list))
	for _, ph := range list {
		out = append(out, PharmacySummary{ID: ph.ID, Name: ph.Name})
	}

	httpresp.OK(c, "All Pharmacy fetched", out)
}

// ======================================================
// ORDERS
// ======================================================

func (h *OrderHandler) CreateNewOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	lines := make([]order.MedicineLine, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		lines = append(lines, order.MedicineLine{
			MedID:    m.MedID,
			Quantity: m.Quantity,
			Price:    *m.Price,
			Timings:  m.Timings,
		})
	}

	orderIDs, err := h.create.Execute(c.Request.Context(), order.CreateOrdersInput{
		AppointmentID: req.AppointmentID,
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		PharmaID:      req.PharmaID,
		Medicines:     lines,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":   "Order(s) created successfully",
		"order_ids": orderIDs,
	})
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	var req GetOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	page, limit := pagination(c)

	res, err := h.list.Execute(c.Request.Context(), order.ListOrdersInput{
		DoctorID:      req.DoctorID,
		PatientID:     req.PatientID,
		PharmaID:      req.PharmaID,
		Type:          req.Type,
		PatientSearch: req.PatientSearch,
		Limit:         limit,
		Page:          page,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       res.Message,
		"currentPageNo": res.Page,
		"limit":         res.Limit,
		"totalOrders":   res.Total,
		"data":          res.Orders,
	})
}
