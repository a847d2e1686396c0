package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/medicine"
)

type MedicineHandler struct {
	search *medicine.SearchMedicines
}

func NewMedicineHandler(search *medicine.SearchMedicines) *MedicineHandler {
	return &MedicineHandler{search: search}
}

type MedicineSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// GetMedsByName is the short listing used by the prescription form.
func (h *MedicineHandler) GetMedsByName(c *gin.Context) {
	meds, err := h.search.Execute(c.Request.Context(), c.Query("name"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]MedicineSummary, 0, len(meds))
	for _, m := range meds {
		out = append(out, MedicineSummary{ID: m.ID, Name: m.Name, Price: m.Price})
	}

	httpresp.OK(c, "Medicines fetched", out)
}
