package get_appointments_report

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AgendaService/internal/service/reports/models"
)

// ToServiceRequest создает запрос отчёта из query параметров
func ToServiceRequest(query url.Values) (*models.ReportRequest, error) {
	req := &models.ReportRequest{}

	var err error
	if req.ProfessionalID, err = optionalID(query, "professionalId"); err != nil {
		return nil, err
	}
	if req.ClientID, err = optionalID(query, "clientId"); err != nil {
		return nil, err
	}

	if v := query.Get("from"); v != "" {
		req.From = &v
	}
	if v := query.Get("to"); v != "" {
		req.To = &v
	}

	if v := query.Get("includeCancelled"); v != "" {
		req.IncludeCancelled, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("includeCancelled: %v", err)
		}
	}

	return req, nil
}

func optionalID(query url.Values, key string) (*int64, error) {
	v := query.Get(key)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%s: must be a positive integer", key)
	}
	return &id, nil
}
