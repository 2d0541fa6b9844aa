// Package tally renders ledger masters and vouchers as Tally XML import
// documents.
package tally

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

const (
	requestImport  = "Import Data"
	reportMasters  = "All Masters"
	reportVouchers = "Vouchers"
	udfNamespace   = "TallyUDF"
	indent         = "    "
)

type envelope struct {
	XMLName xml.Name `xml:"ENVELOPE"`
	Version string   `xml:"VERSION,attr,omitempty"`
	Header  header   `xml:"HEADER"`
	Body    body     `xml:"BODY"`
}

type header struct {
	TallyRequest string `xml:"TALLYREQUEST"`
}

type body struct {
	ImportData importData `xml:"IMPORTDATA"`
}

type importData struct {
	RequestDesc requestDesc `xml:"REQUESTDESC"`
	RequestData requestData `xml:"REQUESTDATA"`
}

type requestDesc struct {
	ReportName      string          `xml:"REPORTNAME"`
	StaticVariables staticVariables `xml:"STATICVARIABLES"`
}

type staticVariables struct {
	CurrentCompany string `xml:"SVCURRENTCOMPANY"`
}

type requestData struct {
	Messages []message `xml:"TALLYMESSAGE"`
}

// message carries exactly one of Ledger or Voucher.
type message struct {
	UDF     string        `xml:"xmlns:UDF,attr"`
	Ledger  *ledgerMaster `xml:"LEDGER,omitempty"`
	Voucher *voucherEntry `xml:"VOUCHER,omitempty"`
}

// yesNo is a Tally logical field.
type yesNo bool

func (b yesNo) MarshalText() ([]byte, error) {
	if b {
		return []byte("Yes"), nil
	}

	return []byte("No"), nil
}

func newEnvelope(version, report, company string, messages []message) envelope {
	return envelope{
		Version: version,
		Header:  header{TallyRequest: requestImport},
		Body: body{ImportData: importData{
			RequestDesc: requestDesc{
				ReportName:      report,
				StaticVariables: staticVariables{CurrentCompany: company},
			},
			RequestData: requestData{Messages: messages},
		}},
	}
}

func render(env envelope) ([]byte, error) {
	out, err := xml.MarshalIndent(env, "", indent)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s envelope: %w", env.Body.ImportData.RequestDesc.ReportName, err)
	}

	var buf bytes.Buffer

	buf.Grow(len(xml.Header) + len(out) + 1)
	buf.WriteString(xml.Header)
	buf.Write(out)
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
