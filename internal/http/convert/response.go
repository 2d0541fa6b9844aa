package convert

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
	"github.com/MrJamesThe3rd/gst2tally/internal/gstr2b"
)

type convertResponse struct {
	Success     bool             `json:"success"`
	ID          uuid.UUID        `json:"id"`
	Company     string           `json:"company"`
	CleanedData []gstr2b.Invoice `json:"cleaned_data"`
	MastersXML  string           `json:"masters_xml"`
	VouchersXML string           `json:"vouchers_xml"`
	Warnings    []string         `json:"warnings,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

func toResponse(res *convert.Result) convertResponse {
	resp := convertResponse{
		Success:     true,
		ID:          res.ID,
		Company:     res.Company,
		CleanedData: res.Invoices,
		MastersXML:  string(res.MastersXML),
		VouchersXML: string(res.VouchersXML),
	}

	for _, name := range res.Unplanned {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("ledger %q is used by vouchers but missing from masters", name))
	}

	return resp
}
